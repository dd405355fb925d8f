package configloader

import (
	"slices"
	"strings"

	"github.com/yaklabco/gramlint/pkg/lint"
)

// TagRules maps each rule tag to the IDs of the rules carrying it.
// Tags can be used in --enable and --disable to select groups of rules at once.
func TagRules(registry *lint.Registry) map[string][]string {
	tags := make(map[string][]string)
	for _, rule := range registry.Rules() {
		for _, tag := range rule.Tags() {
			tag = strings.ToLower(tag)
			tags[tag] = append(tags[tag], rule.ID())
		}
	}
	return tags
}

// IsTag returns true if key names a tag used by at least one registered rule.
func IsTag(registry *lint.Registry, key string) bool {
	_, ok := TagRules(registry)[strings.ToLower(key)]
	return ok
}

// NormalizeRuleID converts a rule ID, name or alias to its canonical rule ID.
// Returns empty string if the key is not recognized.
func NormalizeRuleID(registry *lint.Registry, key string) string {
	if id, _, ok := registry.Resolve(key); ok {
		return id
	}
	if id, _, ok := registry.Resolve(strings.ToUpper(key)); ok {
		return id
	}
	return ""
}

// ExpandRuleKeys resolves rule keys and tags to canonical rule IDs.
// Rule keys win over tags of the same name. Unknown keys are returned
// separately and left out of ids.
func ExpandRuleKeys(registry *lint.Registry, keys []string) (ids, unknown []string) {
	if len(keys) == 0 {
		return nil, nil
	}

	tags := TagRules(registry)
	for _, key := range keys {
		if id := NormalizeRuleID(registry, key); id != "" {
			ids = append(ids, id)
			continue
		}
		if tagged, ok := tags[strings.ToLower(key)]; ok {
			ids = append(ids, tagged...)
			continue
		}
		unknown = append(unknown, key)
	}

	slices.Sort(ids)
	return slices.Compact(ids), unknown
}

// GetAliasesForRule returns the sorted aliases registered for a rule ID.
func GetAliasesForRule(registry *lint.Registry, ruleID string) []string {
	var aliases []string
	for alias, id := range registry.Aliases() {
		if id == ruleID {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	return aliases
}
