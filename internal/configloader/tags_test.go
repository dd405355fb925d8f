package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gramlint/pkg/lint"
)

func TestNormalizeRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{key: "GR001", want: "GR001"},
		{key: "gr001", want: "GR001"},
		{key: "repeated-word", want: "GR001"},
		{key: "punctuation", want: "GR003"},
		{key: "LONG-SENTENCE", want: "GR005"},
		{key: "spelling", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeRuleID(lint.DefaultRegistry, tt.key))
		})
	}
}

func TestExpandRuleKeys(t *testing.T) {
	t.Parallel()

	ids, unknown := ExpandRuleKeys(lint.DefaultRegistry, []string{"sentences", "GR002", "nope"})

	assert.Equal(t, []string{"GR002", "GR003", "GR005"}, ids)
	assert.Equal(t, []string{"nope"}, unknown)

	ids, unknown = ExpandRuleKeys(lint.DefaultRegistry, nil)
	assert.Nil(t, ids)
	assert.Nil(t, unknown)
}

func TestTagRules(t *testing.T) {
	t.Parallel()

	tags := TagRules(lint.DefaultRegistry)

	assert.Equal(t, []string{"GR004"}, tags["whitespace"])
	assert.True(t, IsTag(lint.DefaultRegistry, "Whitespace"))
	assert.False(t, IsTag(lint.DefaultRegistry, "GR001"))
}

func TestGetAliasesForRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"long-sentence"}, GetAliasesForRule(lint.DefaultRegistry, "GR005"))
	assert.Empty(t, GetAliasesForRule(lint.DefaultRegistry, "GR004"))
}
