package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string

	// Options holds the default value of every option the rule reads.
	Options map[string]any
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON(opts)
	}
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# How files are read: auto, text or markdown
input_format: auto

# Default severity for all rules: error, warning, or info
# severity_default: warning

# Lowest severity that makes the check fail
# fail_on: warning

# End sentences at blank lines in plain text, not only at . ! ?
# paragraph_breaks: false

# Show a snippet of surrounding text with every issue
# show_context: false
# context_radius: 30

# File extensions checked when walking directories
# extensions: [".txt", ".text", ".md", ".markdown"]

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "CHANGELOG.md"

# Rule-specific configuration (keys may be IDs, names or aliases)
# rules:
#   GR001:
#     options:
#       ignore: ["had", "that"]
#   run-on-sentence:
#     severity: info
#     options:
#       max_words: 40
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(` - Full Template
#
# This template includes all available rules with their default settings.
# Uncomment and modify settings as needed.

# How files are read: auto, text or markdown
input_format: auto

# Default severity for all rules: error, warning, or info
severity_default: warning

# Lowest severity that makes the check fail
fail_on: warning

# End sentences at blank lines in plain text, not only at . ! ?
paragraph_breaks: false

# Show a snippet of surrounding text with every issue
show_context: false
context_radius: 30

# File extensions checked when walking directories
extensions: [".txt", ".text", ".md", ".markdown"]

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"

# Rule-specific configuration
rules:
`)

	for _, rule := range selectRules(opts.IncludeRules) {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)

		if len(rule.Options) == 0 {
			continue
		}

		optionsYAML, err := yaml.Marshal(map[string]any{"options": rule.Options})
		if err != nil {
			return nil, fmt.Errorf("encode options for %s: %w", rule.ID, err)
		}
		for _, line := range strings.Split(strings.TrimRight(string(optionsYAML), "\n"), "\n") {
			fmt.Fprintf(&buf, "    %s\n", line)
		}
	}

	return buf.Bytes(), nil
}

// selectRules returns rule information sorted by ID, filtered by include.
func selectRules(include []string) []RuleInfo {
	rules := getRuleInfos()

	if len(include) > 0 {
		filtered := make([]RuleInfo, 0, len(include))
		for _, r := range rules {
			if slices.Contains(include, r.ID) {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	return rules
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}

	// Fallback to a static list of known rules
	return []RuleInfo{
		{
			ID: "GR001", Name: "repeated-word", Enabled: true, Severity: SeverityWarning,
			Description: "The same word appears twice in a row",
			Tags:        []string{"words"},
		},
		{
			ID: "GR002", Name: "capitalization", Enabled: true, Severity: SeverityWarning,
			Description: "Sentences should start with a capital letter",
			Tags:        []string{"sentences"},
		},
		{
			ID: "GR003", Name: "terminal-punctuation", Enabled: true, Severity: SeverityWarning,
			Description: "Sentences should end with '.', '!' or '?'",
			Tags:        []string{"sentences", "punctuation"},
		},
		{
			ID: "GR004", Name: "double-space", Enabled: true, Severity: SeverityWarning,
			Description: "Two or more consecutive spaces",
			Tags:        []string{"whitespace"},
		},
		{
			ID: "GR005", Name: "run-on-sentence", Enabled: true, Severity: SeverityWarning,
			Description: "Long sentences joined by a conjunction may be run-ons",
			Tags:        []string{"sentences", "style"},
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON renders the default configuration plus rule defaults as JSON.
func templateToJSON(opts TemplateOptions) ([]byte, error) {
	cfg := map[string]any{
		"input_format":     string(InputFormatAuto),
		"severity_default": string(SeverityWarning),
		"fail_on":          string(SeverityWarning),
		"paragraph_breaks": false,
		"show_context":     false,
		"context_radius":   DefaultContextRadius,
		"extensions":       DefaultExtensions(),
		"ignore":           []string{},
	}

	rulesMap := make(map[string]any)
	for _, r := range selectRules(opts.IncludeRules) {
		entry := map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
		if opts.Full && len(r.Options) > 0 {
			entry["options"] = r.Options
		}
		rulesMap[r.ID] = entry
	}
	cfg["rules"] = rulesMap

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gramlint configuration
# See: https://github.com/yaklabco/gramlint`
}
