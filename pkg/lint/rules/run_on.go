package rules

import (
	"fmt"

	"github.com/yaklabco/gramlint/pkg/lint"
)

// defaultMaxWords is the word count a sentence may reach before it is suspect.
const defaultMaxWords = 30

// defaultConjunctions are the joining words that mark a long sentence as a likely run-on.
func defaultConjunctions() []string {
	return []string{"and", "but", "or", "so", "because", "although"}
}

// RunOnSentenceRule flags long sentences that keep going after a conjunction.
type RunOnSentenceRule struct {
	lint.BaseRule
}

// NewRunOnSentenceRule creates a new run-on sentence rule.
func NewRunOnSentenceRule() *RunOnSentenceRule {
	return &RunOnSentenceRule{
		BaseRule: lint.NewBaseRule(
			"GR005",
			"run-on-sentence",
			"Long sentences joined by a conjunction may be run-ons",
			[]string{"sentences", "style"},
		),
	}
}

// DefaultOptions returns the options read by the rule.
func (r *RunOnSentenceRule) DefaultOptions() map[string]any {
	return map[string]any{
		"max_words":    defaultMaxWords,
		"conjunctions": defaultConjunctions(),
	}
}

// Apply reports sentences with more than max_words words that contain a
// conjunction in their second half. This is a heuristic, not a parse.
func (r *RunOnSentenceRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	maxWords := ctx.OptionInt("max_words", defaultMaxWords)
	folder := newWordFolder()
	conjunctions := folder.set(ctx.OptionStringSlice("conjunctions", defaultConjunctions()))

	var issues []lint.Issue

	for _, sentence := range ctx.Sentences() {
		if ctx.Cancelled() {
			return issues, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !sentence.HasTokens() {
			continue
		}

		count := len(sentence.Tokens)
		if count <= maxWords {
			continue
		}

		joined := false
		for _, tok := range sentence.Tokens[count/2:] {
			if conjunctions[folder.fold(tok.Text)] {
				joined = true
				break
			}
		}
		if !joined {
			continue
		}

		issues = append(issues, r.NewIssue(
			sentence.StartOffset,
			sentence.EndOffset,
			fmt.Sprintf("Sentence has %d words and may be a run-on.", count),
		).Build())
	}

	return issues, nil
}
