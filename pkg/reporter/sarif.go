package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/yaklabco/gramlint/pkg/analysis"
	"github.com/yaklabco/gramlint/pkg/config"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool              SARIFTool              `json:"tool"`
	AutomationDetails SARIFAutomationDetails `json:"automationDetails"`
	ColumnKind        string                 `json:"columnKind"`
	Results           []SARIFResult          `json:"results"`
}

// SARIFAutomationDetails identifies the run.
type SARIFAutomationDetails struct {
	GUID string `json:"guid"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a rule (grammar check).
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any       `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level"`
}

// SARIFResult represents a single issue.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a text location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
// Columns count runes; byte offsets index the raw input.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
	ByteOffset  int `json:"byteOffset"`
	ByteLength  int `json:"byteLength"`
}

// SARIFRenderer formats results as SARIF 2.1.0.
type SARIFRenderer struct {
	opts Options
	out  io.Writer

	// newGUID generates the run identifier.
	newGUID func() string
}

// NewSARIFRenderer creates a new SARIF renderer.
func NewSARIFRenderer(opts Options) *SARIFRenderer {
	return &SARIFRenderer{
		opts:    opts,
		out:     opts.Writer,
		newGUID: func() string { return uuid.NewString() },
	}
}

// Render implements Renderer.
func (r *SARIFRenderer) Render(_ context.Context, report *analysis.Report) error {
	output := r.buildOutput(report)

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}

	return nil
}

func (r *SARIFRenderer) buildOutput(report *analysis.Report) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = "dev"
	}

	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           "gramlint",
				Version:        version,
				InformationURI: "https://github.com/yaklabco/gramlint",
				Rules:          make([]SARIFRule, 0, len(r.opts.Rules)),
			},
		},
		AutomationDetails: SARIFAutomationDetails{GUID: r.newGUID()},
		ColumnKind:        "unicodeCodePoints",
		Results:           make([]SARIFResult, 0, len(report.Issues)),
	}

	ruleIndex := make(map[string]int)
	addRule := func(rule SARIFRule) {
		if _, ok := ruleIndex[rule.ID]; ok {
			return
		}
		ruleIndex[rule.ID] = len(run.Tool.Driver.Rules)
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, rule)
	}

	for _, info := range r.opts.Rules {
		addRule(SARIFRule{
			ID:               info.ID,
			Name:             info.Name,
			ShortDescription: SARIFMultiformatText{Text: info.Description},
			DefaultConfig: &SARIFRuleConfig{
				Enabled: info.Enabled,
				Level:   severityToSARIFLevel(info.Severity),
			},
			Properties: map[string]any{"tags": info.Tags},
		})
	}

	for _, entry := range report.Issues {
		addRule(SARIFRule{
			ID:               entry.RuleID,
			Name:             entry.Kind,
			ShortDescription: SARIFMultiformatText{Text: entry.Kind},
		})

		region := SARIFRegion{
			StartLine:   entry.StartLine,
			StartColumn: entry.StartColumn,
			EndLine:     entry.EndLine,
			EndColumn:   entry.EndColumn,
			ByteOffset:  entry.StartOffset,
			ByteLength:  entry.EndOffset - entry.StartOffset,
		}

		run.Results = append(run.Results, SARIFResult{
			RuleID:    entry.RuleID,
			RuleIndex: ruleIndex[entry.RuleID],
			Level:     severityToSARIFLevel(config.Severity(entry.Severity)),
			Message:   SARIFMessage{Text: entry.Message},
			Locations: []SARIFLocation{{
				PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: SARIFArtifactLocation{URI: filepath.ToSlash(entry.FilePath)},
					Region:           region,
				},
			}},
		})
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

// severityToSARIFLevel converts a gramlint severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
