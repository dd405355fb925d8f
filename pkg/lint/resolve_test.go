package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
)

func ptr[T any](v T) *T {
	return &v
}

func resolvedIDs(resolved []lint.ResolvedRule) []string {
	ids := make([]string, 0, len(resolved))
	for _, rr := range resolved {
		ids = append(ids, rr.Rule.ID())
	}
	return ids
}

func TestResolveRules(t *testing.T) {
	t.Parallel()

	all := []string{"GR001", "GR002", "GR003", "GR004", "GR005"}

	tests := []struct {
		name     string
		mutate   func(cfg *config.Config)
		wantIDs  []string
		severity map[string]config.Severity
	}{
		{
			name:    "defaults",
			mutate:  func(*config.Config) {},
			wantIDs: all,
		},
		{
			name: "disabled by config key alias",
			mutate: func(cfg *config.Config) {
				cfg.Rules["long-sentence"] = config.RuleConfig{Enabled: ptr(false)}
			},
			wantIDs: []string{"GR001", "GR002", "GR003", "GR004"},
		},
		{
			name: "severity default applies to every rule",
			mutate: func(cfg *config.Config) {
				cfg.SeverityDefault = "info"
			},
			wantIDs:  all,
			severity: map[string]config.Severity{"GR001": config.SeverityInfo, "GR005": config.SeverityInfo},
		},
		{
			name: "rule severity beats severity default",
			mutate: func(cfg *config.Config) {
				cfg.SeverityDefault = "info"
				cfg.Rules["repeated-word"] = config.RuleConfig{Severity: ptr("error")}
			},
			wantIDs:  all,
			severity: map[string]config.Severity{"GR001": config.SeverityError, "GR002": config.SeverityInfo},
		},
		{
			name: "invalid severity is ignored",
			mutate: func(cfg *config.Config) {
				cfg.SeverityDefault = "fatal"
				cfg.Rules["GR004"] = config.RuleConfig{Severity: ptr("loud")}
			},
			wantIDs:  all,
			severity: map[string]config.Severity{"GR004": config.SeverityWarning},
		},
		{
			name: "enable list overrides config",
			mutate: func(cfg *config.Config) {
				cfg.Rules["GR002"] = config.RuleConfig{Enabled: ptr(false)}
				cfg.EnableRules = []string{"capitalization"}
			},
			wantIDs: all,
		},
		{
			name: "disable list wins over enable list",
			mutate: func(cfg *config.Config) {
				cfg.EnableRules = []string{"GR004"}
				cfg.DisableRules = []string{"double-space", "punctuation"}
			},
			wantIDs: []string{"GR001", "GR002", "GR005"},
		},
		{
			name: "unknown keys are ignored",
			mutate: func(cfg *config.Config) {
				cfg.Rules["no-such-rule"] = config.RuleConfig{Enabled: ptr(false)}
				cfg.DisableRules = []string{"GR999"}
			},
			wantIDs: all,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			resolved := lint.ResolveRules(lint.DefaultRegistry, cfg)
			assert.Equal(t, tt.wantIDs, resolvedIDs(resolved))

			for _, rr := range resolved {
				require.True(t, rr.Enabled)
				if want, ok := tt.severity[rr.Rule.ID()]; ok {
					assert.Equal(t, want, rr.Severity, rr.Rule.ID())
				}
			}
		})
	}
}

func TestResolveRules_NilConfig(t *testing.T) {
	t.Parallel()

	resolved := lint.ResolveRules(lint.DefaultRegistry, nil)
	require.Len(t, resolved, 5)
	for _, rr := range resolved {
		assert.Nil(t, rr.Config)
		assert.Equal(t, rr.Rule.DefaultSeverity(), rr.Severity)
	}
}

func TestResolveRules_AttachesRuleConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Rules["run-on-sentence"] = config.RuleConfig{Options: map[string]any{"max_words": 10}}

	for _, rr := range lint.ResolveRules(lint.DefaultRegistry, cfg) {
		if rr.Rule.ID() != "GR005" {
			assert.Nil(t, rr.Config, rr.Rule.ID())
			continue
		}
		require.NotNil(t, rr.Config)
		assert.Equal(t, 10, rr.Config.Options["max_words"])
	}
}
