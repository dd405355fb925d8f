package rules

import (
	"fmt"

	"github.com/yaklabco/gramlint/pkg/lint"
)

// RepeatedWordRule flags the same word written twice or more in a row.
type RepeatedWordRule struct {
	lint.BaseRule
}

// NewRepeatedWordRule creates a new repeated word rule.
func NewRepeatedWordRule() *RepeatedWordRule {
	return &RepeatedWordRule{
		BaseRule: lint.NewBaseRule(
			"GR001",
			"repeated-word",
			"The same word should not appear twice in a row",
			[]string{"words"},
		),
	}
}

// DefaultOptions returns the options read by the rule.
func (r *RepeatedWordRule) DefaultOptions() map[string]any {
	return map[string]any{
		"ignore": []string{},
	}
}

// Apply reports one issue per maximal run of identical adjacent words.
//
// Words are compared case-insensitively and only when separated by
// whitespace, so "Yes, yes" is left alone. Runs never cross sentences.
func (r *RepeatedWordRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	folder := newWordFolder()
	ignore := folder.set(ctx.OptionStringSlice("ignore", nil))
	text := ctx.Content()

	var issues []lint.Issue

	for _, sentence := range ctx.Sentences() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		tokens := sentence.Tokens
		for i := 0; i < len(tokens); {
			key := folder.fold(tokens[i].Text)

			j := i + 1
			for j < len(tokens) && onlySpaceBetween(text, tokens[j-1], tokens[j]) && folder.fold(tokens[j].Text) == key {
				j++
			}

			if j-i >= 2 && key != "" && !ignore[key] {
				issues = append(issues, r.NewIssue(
					tokens[i].StartOffset,
					tokens[j-1].EndOffset,
					fmt.Sprintf("Repeated word '%s'.", tokens[i].Text),
				).Build())
			}

			i = j
		}
	}

	return issues, nil
}
