package rules

import (
	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Word rules
	registry.Register(NewRepeatedWordRule()) // GR001

	// Sentence rules
	registry.Register(NewCapitalizationRule())      // GR002
	registry.Register(NewTerminalPunctuationRule()) // GR003
	registry.Register(NewRunOnSentenceRule())       // GR005

	// Whitespace rules
	registry.Register(NewDoubleSpaceRule()) // GR004
}

// RegisterLegacyAliases registers the rule names used by earlier releases
// where they differ from the canonical Name(), so old configuration files
// keep working:
//   - "punctuation" -> GR003 (canonical: "terminal-punctuation")
//   - "long-sentence" -> GR005 (canonical: "run-on-sentence").
func RegisterLegacyAliases(registry *lint.Registry) {
	registry.RegisterAlias("punctuation", "GR003")
	registry.RegisterAlias("long-sentence", "GR005")
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterLegacyAliases(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = lint.DefaultRegistry.RuleInfos
}
