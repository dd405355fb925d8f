package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
	"github.com/yaklabco/gramlint/pkg/prose"
)

func ruleContext(options map[string]any) *lint.RuleContext {
	return lint.NewRuleContext(context.Background(), nil, nil, &config.RuleConfig{Options: options})
}

func TestRuleContext_OptionInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "int", value: 12, want: 12},
		{name: "int64", value: int64(13), want: 13},
		{name: "uint64", value: uint64(14), want: 14},
		{name: "float64 from JSON", value: float64(15), want: 15},
		{name: "string from env", value: "16", want: 16},
		{name: "bad string", value: "many", want: 30},
		{name: "wrong type", value: true, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rc := ruleContext(map[string]any{"max_words": tt.value})
			assert.Equal(t, tt.want, rc.OptionInt("max_words", 30))
		})
	}

	assert.Equal(t, 30, ruleContext(nil).OptionInt("max_words", 30))
	assert.Equal(t, 30, lint.NewRuleContext(context.Background(), nil, nil, nil).OptionInt("max_words", 30))
}

func TestRuleContext_OptionStringSlice(t *testing.T) {
	t.Parallel()

	defaults := []string{"a", "b"}

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "string slice", value: []string{"x"}, want: []string{"x"}},
		{name: "yaml list", value: []any{"x", 3, "y"}, want: []string{"x", "y"}},
		{name: "explicitly empty", value: []any{}, want: []string{}},
		{name: "wrong type", value: "x", want: defaults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rc := ruleContext(map[string]any{"ignore": tt.value})
			assert.Equal(t, tt.want, rc.OptionStringSlice("ignore", defaults))
		})
	}

	assert.Equal(t, defaults, ruleContext(nil).OptionStringSlice("ignore", defaults))
}

func TestRuleContext_OptionIntFallbacks(t *testing.T) {
	t.Parallel()

	rc := ruleContext(map[string]any{"text": "12", "bad": "nope", "flag": true})
	assert.Equal(t, 12, rc.OptionInt("text", 30))
	assert.Equal(t, 30, rc.OptionInt("bad", 30))
	assert.Equal(t, 30, rc.OptionInt("flag", 30))
	assert.Equal(t, 30, rc.OptionInt("missing", 30))
}

func TestRuleContext_Accessors(t *testing.T) {
	t.Parallel()

	var empty lint.RuleContext
	assert.False(t, empty.Cancelled())
	assert.Nil(t, empty.Sentences())
	assert.Empty(t, empty.Content())

	doc := prose.Segment("One. Two.")
	ctx, cancel := context.WithCancel(context.Background())
	rc := lint.NewRuleContext(ctx, doc, nil, nil)

	assert.Len(t, rc.Sentences(), 2)
	assert.Equal(t, "One. Two.", rc.Content())
	assert.False(t, rc.Cancelled())
	cancel()
	assert.True(t, rc.Cancelled())
}
