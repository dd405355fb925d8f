package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gramlint/pkg/lint"
)

// DoubleSpaceRule flags runs of two or more spaces.
type DoubleSpaceRule struct {
	lint.BaseRule
}

// NewDoubleSpaceRule creates a new double space rule.
func NewDoubleSpaceRule() *DoubleSpaceRule {
	return &DoubleSpaceRule{
		BaseRule: lint.NewBaseRule(
			"GR004",
			"double-space",
			"Words and sentences should be separated by a single space",
			[]string{"whitespace"},
		),
	}
}

// Apply scans the raw text, ignoring sentences, and reports each maximal
// run of U+0020 characters longer than one. Tabs are not spaces here.
func (r *DoubleSpaceRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	text := ctx.Content()

	var issues []lint.Issue

	for pos := 0; pos < len(text); {
		idx := strings.Index(text[pos:], "  ")
		if idx < 0 {
			break
		}
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		start := pos + idx
		end := start + 2
		for end < len(text) && text[end] == ' ' {
			end++
		}

		issues = append(issues, r.NewIssue(start, end, "Multiple consecutive spaces detected.").Build())
		pos = end
	}

	return issues, nil
}
