package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gramlint/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleID   string
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, "GR001", "repeated-word", "repeated-word"},
		{"id format", config.RuleFormatID, "GR001", "repeated-word", "GR001"},
		{"combined format", config.RuleFormatCombined, "GR001", "repeated-word", "GR001/repeated-word"},
		{"name format empty name", config.RuleFormatName, "GR001", "", "GR001"},
		{"default to name", config.RuleFormat(""), "GR004", "double-space", "double-space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := config.FormatRuleID(tt.format, tt.ruleID, tt.ruleName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_AtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity  config.Severity
		threshold config.Severity
		want      bool
	}{
		{config.SeverityError, config.SeverityWarning, true},
		{config.SeverityWarning, config.SeverityWarning, true},
		{config.SeverityInfo, config.SeverityWarning, false},
		{config.SeverityInfo, config.SeverityInfo, true},
		{config.SeverityWarning, config.SeverityError, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.AtLeast(tt.threshold), "%s >= %s", tt.severity, tt.threshold)
	}
}

func TestSeverity_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SeverityError.IsValid())
	assert.True(t, config.SeverityInfo.IsValid())
	assert.False(t, config.Severity("fatal").IsValid())
	assert.False(t, config.Severity("").IsValid())
}

func TestInputFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.InputFormatAuto.IsValid())
	assert.True(t, config.InputFormatText.IsValid())
	assert.True(t, config.InputFormatMarkdown.IsValid())
	assert.False(t, config.InputFormat("html").IsValid())
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.RuleFormatName, cfg.RuleFormat)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.InputFormatAuto, cfg.InputFormat)
	assert.Equal(t, config.SeverityWarning, cfg.FailOn)
	assert.Equal(t, config.DefaultContextRadius, cfg.ContextRadius)
	assert.Equal(t, []string{".txt", ".text", ".md", ".markdown"}, cfg.Extensions)
	assert.NotNil(t, cfg.Rules)
}
