package rules

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gramlint/pkg/lint"
)

// CapitalizationRule flags sentences that start with a lowercase letter.
type CapitalizationRule struct {
	lint.BaseRule
}

// NewCapitalizationRule creates a new sentence capitalization rule.
func NewCapitalizationRule() *CapitalizationRule {
	return &CapitalizationRule{
		BaseRule: lint.NewBaseRule(
			"GR002",
			"capitalization",
			"Sentences should start with a capital letter",
			[]string{"sentences"},
		),
	}
}

// defaultCapitalizationExceptions are brand names written in lowercase on purpose.
func defaultCapitalizationExceptions() []string {
	return []string{"iOS", "iPhone", "iPad", "eBay", "macOS"}
}

// DefaultOptions returns the options read by the rule.
func (r *CapitalizationRule) DefaultOptions() map[string]any {
	return map[string]any{
		"exceptions": defaultCapitalizationExceptions(),
	}
}

// Apply reports the first word of every sentence that begins with a lowercase letter.
//
// Sentences starting with anything other than a letter (digits, quotes,
// symbols) are exempt, as are first words listed in the exceptions option.
func (r *CapitalizationRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	exceptions := ctx.OptionStringSlice("exceptions", defaultCapitalizationExceptions())
	text := ctx.Content()

	var issues []lint.Issue

	for _, sentence := range ctx.Sentences() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		first, ok := sentence.FirstToken()
		if !ok || first.StartOffset != sentence.StartOffset {
			continue
		}

		lead, _ := utf8.DecodeRuneInString(text[first.StartOffset:])
		if !unicode.IsLower(lead) || slices.Contains(exceptions, first.Text) {
			continue
		}

		issues = append(issues, r.NewIssue(
			first.StartOffset,
			first.EndOffset,
			"Sentence should start with a capital letter.",
		).Build())
	}

	return issues, nil
}
