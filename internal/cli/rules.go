package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gramlint/internal/configloader"
	"github.com/yaklabco/gramlint/internal/logging"
	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Severity    string         `json:"severity"`
	Enabled     bool           `json:"enabled"`
	Tags        []string       `json:"tags"`
	Aliases     []string       `json:"aliases"`
	Options     map[string]any `json:"options,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available grammar rules",
		Long: `List all available grammar rules with their IDs, names, default
severity, tags and aliases. Any ID, name, alias or tag can be passed to
'gramlint check --enable' or '--disable'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch flags.format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), lint.DefaultRegistry)
			case "text":
			default:
				return usageError(fmt.Errorf("invalid format %q: must be text or json", flags.format))
			}

			if !config.RuleFormat(flags.ruleFormat).IsValid() {
				return usageError(fmt.Errorf("invalid rule format %q: must be name, id, or combined", flags.ruleFormat))
			}

			outputRulesText(cmd.OutOrStdout(), lint.DefaultRegistry, config.RuleFormat(flags.ruleFormat))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func outputRulesText(w io.Writer, registry *lint.Registry, ruleFormat config.RuleFormat) {
	logger := logging.NewWithWriter(w, "info")

	rules := registry.Rules()
	if len(rules) == 0 {
		logger.Info("no rules registered")
		return
	}

	logger.Info("available rules")

	for _, rule := range rules {
		aliases := configloader.GetAliasesForRule(registry, rule.ID())
		aliasText := "-"
		if len(aliases) > 0 {
			aliasText = strings.Join(aliases, ",")
		}

		logger.Info(config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
			logging.FieldSeverity, rule.DefaultSeverity(),
			logging.FieldTags, strings.Join(rule.Tags(), ","),
			logging.FieldAliases, aliasText,
			logging.FieldDescription, rule.Description(),
		)
	}
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, registry *lint.Registry) error {
	infos := registry.RuleInfos()
	out := make([]ruleInfo, 0, len(infos))
	for _, info := range infos {
		tags := info.Tags
		if tags == nil {
			tags = []string{}
		}
		aliases := configloader.GetAliasesForRule(registry, info.ID)
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, ruleInfo{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Severity:    string(info.Severity),
			Enabled:     info.Enabled,
			Tags:        tags,
			Aliases:     aliases,
			Options:     info.Options,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
