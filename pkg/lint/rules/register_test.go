package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gramlint/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	RegisterAll(registry)

	assert.Equal(t, []string{"GR001", "GR002", "GR003", "GR004", "GR005"}, registry.IDs())

	names := map[string]string{
		"GR001": "repeated-word",
		"GR002": "capitalization",
		"GR003": "terminal-punctuation",
		"GR004": "double-space",
		"GR005": "run-on-sentence",
	}
	for id, name := range names {
		rule, ok := registry.Get(id)
		require.True(t, ok, "%s should be registered", id)
		assert.Equal(t, name, rule.Name())
		assert.NotEmpty(t, rule.Description())
		assert.True(t, rule.DefaultEnabled())
	}
}

func TestRegisterLegacyAliases(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	RegisterAll(registry)
	RegisterLegacyAliases(registry)

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"punctuation", "GR003", true},
		{"Punctuation", "GR003", true},
		{"long-sentence", "GR005", true},
		{"run-on-sentence", "GR005", true},
		{"GR001", "GR001", true},
		{"verb-tense", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			id, _, ok := registry.Resolve(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestDefaultRegistryPopulated(t *testing.T) {
	t.Parallel()

	assert.Len(t, lint.DefaultRegistry.Rules(), 5)

	infos := lint.DefaultRegistry.RuleInfos()
	require.Len(t, infos, 5)
	assert.Equal(t, "GR001", infos[0].ID)
	assert.Contains(t, infos[0].Options, "ignore")
	assert.Contains(t, infos[4].Options, "max_words")
}
