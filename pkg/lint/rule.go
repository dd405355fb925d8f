// Package lint provides the rule engine, issues, and registry for gramlint.
package lint

import "github.com/yaklabco/gramlint/pkg/config"

// Rule defines the interface that all grammar rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "GR001").
	ID() string

	// Name returns the human-readable name of the rule. It doubles as the
	// issue kind reported for every finding of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["sentences"]).
	Tags() []string

	// Apply executes the rule against the given context and returns issues.
	//
	// Rules must:
	//   - Treat the document as read-only.
	//   - Keep no state between calls.
	//   - Return no issues, not an error, for empty documents, sentences and token lists.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Issue, error)
}

// Configurable is implemented by rules that read options from their RuleConfig.
type Configurable interface {
	// DefaultOptions returns the default value of every option the rule reads.
	DefaultOptions() map[string]any
}
