package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
	"github.com/yaklabco/gramlint/pkg/prose"
)

// applyRule segments text and runs rule over it with the given options.
func applyRule(t *testing.T, rule lint.Rule, text string, options map[string]any) []lint.Issue {
	t.Helper()

	var ruleCfg *config.RuleConfig
	if options != nil {
		ruleCfg = &config.RuleConfig{Options: options}
	}

	ruleCtx := lint.NewRuleContext(context.Background(), prose.Segment(text), config.NewConfig(), ruleCfg)
	issues, err := rule.Apply(ruleCtx)
	require.NoError(t, err)

	for _, issue := range issues {
		require.Equal(t, rule.ID(), issue.RuleID)
		require.Equal(t, rule.Name(), issue.Kind)
		require.LessOrEqual(t, 0, issue.StartOffset)
		require.LessOrEqual(t, issue.StartOffset, issue.EndOffset)
		require.LessOrEqual(t, issue.EndOffset, len(text))
	}

	return issues
}

// spanTexts returns the text covered by each issue.
func spanTexts(text string, issues []lint.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, text[issue.StartOffset:issue.EndOffset])
	}
	return out
}

// degenerateInputs are texts every rule must accept without issues or errors.
func degenerateInputs() []string {
	return []string{"", "   ", "\n\n\t\n", "...", "?!", "— –"}
}
