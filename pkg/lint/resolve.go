package lint

import "github.com/yaklabco/gramlint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for issues from this rule.
	Severity config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, sorted by ID, with their resolved configuration.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
//
// Precedence, lowest first: rule defaults, severity_default, the rules section
// of the configuration, then the --enable and --disable lists.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}

	if cfg == nil {
		return rr
	}

	if sev := config.Severity(cfg.SeverityDefault); sev.IsValid() {
		rr.Severity = sev
	}

	for key, ruleCfg := range cfg.Rules {
		id, _, ok := registry.Resolve(key)
		if !ok || id != rule.ID() {
			continue
		}

		rr.Config = &ruleCfg
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if sev := config.Severity(*ruleCfg.Severity); sev.IsValid() {
				rr.Severity = sev
			}
		}
	}

	if matchesRule(registry, rule, cfg.EnableRules) {
		rr.Enabled = true
	}
	if matchesRule(registry, rule, cfg.DisableRules) {
		rr.Enabled = false
	}

	return rr
}

// matchesRule reports whether any key in keys refers to rule.
func matchesRule(registry *Registry, rule Rule, keys []string) bool {
	for _, key := range keys {
		if id, _, ok := registry.Resolve(key); ok && id == rule.ID() {
			return true
		}
	}
	return false
}
