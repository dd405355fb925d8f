// Package config defines core configuration types for gramlint.
// These types are pure data structures; loading and layering lives in internal/configloader.
package config

// Severity represents the severity level of a grammar issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// Rank orders severities: info < warning < error. Unknown severities rank lowest.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is as severe as threshold or more.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Rank() >= threshold.Rank()
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled"`
	Severity *string        `mapstructure:"severity" yaml:"severity"`
	Options  map[string]any `mapstructure:"options" yaml:"options"`
}

// OutputFormat specifies the output format for issues.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "repeated-word"
	RuleFormatID       RuleFormat = "id"       // "GR001"
	RuleFormatCombined RuleFormat = "combined" // "GR001/repeated-word"
)

// IsValid returns true if the rule format is valid.
func (f RuleFormat) IsValid() bool {
	switch f {
	case RuleFormatName, RuleFormatID, RuleFormatCombined:
		return true
	default:
		return false
	}
}

// InputFormat selects how input files are interpreted.
type InputFormat string

const (
	// InputFormatAuto detects the format from the file name and content.
	InputFormatAuto InputFormat = "auto"
	// InputFormatText checks the whole input as prose.
	InputFormatText InputFormat = "text"
	// InputFormatMarkdown checks only the paragraphs of a Markdown document.
	InputFormatMarkdown InputFormat = "markdown"
)

// IsValid returns true if the input format is valid.
func (f InputFormat) IsValid() bool {
	switch f {
	case InputFormatAuto, InputFormatText, InputFormatMarkdown:
		return true
	default:
		return false
	}
}

// DefaultContextRadius is the number of bytes of text shown on each side of an issue.
const DefaultContextRadius = 30

// DefaultExtensions lists the file extensions checked when walking directories.
func DefaultExtensions() []string {
	return []string{".txt", ".text", ".md", ".markdown"}
}

// Config is the root configuration structure for gramlint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `mapstructure:"severity_default" yaml:"severity_default"`

	// InputFormat selects plain text, Markdown or detection per file.
	InputFormat InputFormat `mapstructure:"input_format" yaml:"input_format"`

	// ParagraphBreaks also ends a sentence at a blank line in plain text input.
	ParagraphBreaks bool `mapstructure:"paragraph_breaks" yaml:"paragraph_breaks"`

	// ShowContext attaches a snippet of surrounding text to every issue.
	ShowContext bool `mapstructure:"show_context" yaml:"show_context"`

	// ContextRadius is the number of bytes shown on each side of an issue.
	ContextRadius int `mapstructure:"context_radius" yaml:"context_radius" validate:"gte=0,lte=1000"`

	// FailOn is the lowest severity that makes the check fail.
	FailOn Severity `mapstructure:"fail_on" yaml:"fail_on"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Extensions lists file extensions checked when walking directories.
	Extensions []string `mapstructure:"extensions" yaml:"extensions" validate:"dive,startswith=."`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-" validate:"gte=0"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-"`

	// NoSummary suppresses the trailing summary line of text output.
	NoSummary bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		InputFormat:     InputFormatAuto,
		ShowContext:     false,
		ContextRadius:   DefaultContextRadius,
		FailOn:          SeverityWarning,
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Extensions:      DefaultExtensions(),
		Format:          FormatText,
		RuleFormat:      RuleFormatName,
		Jobs:            0, // 0 means use GOMAXPROCS
	}
}
