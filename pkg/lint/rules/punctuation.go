package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gramlint/pkg/lint"
	"github.com/yaklabco/gramlint/pkg/prose"
)

// TerminalPunctuationRule flags sentences that do not end with '.', '!' or '?'.
type TerminalPunctuationRule struct {
	lint.BaseRule
}

// NewTerminalPunctuationRule creates a new terminal punctuation rule.
func NewTerminalPunctuationRule() *TerminalPunctuationRule {
	return &TerminalPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"GR003",
			"terminal-punctuation",
			"Sentences should end with '.', '!' or '?'",
			[]string{"sentences", "punctuation"},
		),
	}
}

// Apply reports every sentence with words whose tail lacks terminal punctuation.
//
// The tail is the text after the last word; closing quotes and brackets are
// ignored, so `He said "stop."` passes. Only prose.IsCloser characters may
// follow the terminal mark, so "Hello world.*" is flagged.
func (r *TerminalPunctuationRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	var issues []lint.Issue

	for _, sentence := range ctx.Sentences() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		last, ok := sentence.LastToken()
		if !ok {
			continue
		}

		tail := strings.TrimRightFunc(ctx.Doc.Slice(last.EndOffset, sentence.EndOffset), func(c rune) bool {
			return unicode.IsSpace(c) || prose.IsCloser(c)
		})
		if end, _ := utf8.DecodeLastRuneInString(tail); prose.IsTerminal(end) {
			continue
		}

		issues = append(issues, r.NewIssue(
			sentence.StartOffset,
			sentence.EndOffset,
			"Sentence should end with terminal punctuation.",
		).Build())
	}

	return issues, nil
}
