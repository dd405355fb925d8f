package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gramlint/internal/configloader"
	"github.com/yaklabco/gramlint/internal/logging"
	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
	_ "github.com/yaklabco/gramlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gramlint/pkg/reporter"
	"github.com/yaklabco/gramlint/pkg/runner"
)

type checkFlags struct {
	format          string
	ruleFormat      string
	inputFormat     string
	failOn          string
	ignore          []string
	extensions      []string
	enable          []string
	disable         []string
	showContext     bool
	contextRadius   int
	paragraphBreaks bool
	jobs            int
	noSummary       bool
	compact         bool
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check text and Markdown files for grammar issues",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check prose for repeated words, missing capitalization, missing
terminal punctuation, double spaces and run-on sentences.

Paths may be files or directories. Directories are walked for .txt, .text,
.md and .markdown files. With no path, or with "-", standard input is read.
Markdown input is checked paragraph by paragraph; code, headings and other
markup are skipped.

Examples:
  gramlint check notes.txt               # Check one file
  gramlint check docs/                   # Check every text file under docs/
  echo "the the cat" | gramlint check    # Check standard input
  gramlint check --show-context draft.md # Show where each issue is
  gramlint check --format sarif docs/    # SARIF for code scanning
  gramlint check --disable run-on-sentence --fail-on error .`

// cliConfig builds the configuration layer for flags that were set explicitly.
func (f *checkFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(f.ruleFormat)
	}
	if changed("input-format") {
		cfg.InputFormat = config.InputFormat(f.inputFormat)
	}
	if changed("fail-on") {
		cfg.FailOn = config.Severity(f.failOn)
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("extensions") {
		cfg.Extensions = f.extensions
	}
	if changed("enable") {
		cfg.EnableRules = f.enable
	}
	if changed("disable") {
		cfg.DisableRules = f.disable
	}
	if changed("context-radius") {
		cfg.ContextRadius = f.contextRadius
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	cfg.ShowContext = f.showContext
	cfg.ParagraphBreaks = f.paragraphBreaks
	cfg.NoSummary = f.noSummary

	return cfg
}

// applyExplicitZeroes sets flags whose explicit value is the zero value,
// which a configuration merge cannot express.
func (f *checkFlags) applyExplicitZeroes(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("show-context") && !f.showContext {
		cfg.ShowContext = false
	}
	if changed("paragraph-breaks") && !f.paragraphBreaks {
		cfg.ParagraphBreaks = false
	}
	if changed("context-radius") && f.contextRadius == 0 {
		cfg.ContextRadius = 0
	}
	if changed("jobs") && f.jobs == 0 {
		cfg.Jobs = 0
	}
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateCheckFlags(cmd, flags); err != nil {
		return err
	}

	stdin := cmd.InOrStdin()
	if readsStdin(args) && isTerminal(stdin) {
		return usageError(errors.New("no input: pass file or directory paths, or pipe text to standard input"))
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    flags.cliConfig(cmd),
	})
	if err != nil {
		return errors.Join(errConfig, err)
	}

	cfg := loadResult.Config
	flags.applyExplicitZeroes(cmd, cfg)

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldConfig, configPath,
		logging.FieldInputFormat, cfg.InputFormat,
		logging.FieldParagraphBreaks, cfg.ParagraphBreaks,
		logging.FieldFailOn, cfg.FailOn,
		logging.FieldJobs, cfg.Jobs,
	)
	for _, rr := range lint.ResolveRules(lint.DefaultRegistry, cfg) {
		logger.Debug("rule enabled",
			logging.FieldRule, rr.Rule.ID(),
			logging.FieldSeverity, rr.Severity,
		)
	}

	ctx = logging.WithLogger(ctx, logger)

	engine := lint.NewEngine(lint.SegmenterFromConfig(cfg), lint.DefaultRegistry, cfg)
	pipeline := lint.NewPipeline(engine, lint.PipelineOptionsFromConfig(cfg))
	checkRunner := runner.New(pipeline)

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir
	runOpts.Stdin = stdin

	logger.Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := checkRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldIssuesTotal, result.Stats.IssuesTotal,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      reporter.Format(cfg.Format),
		Color:       colorMode,
		ShowContext: cfg.ShowContext,
		ShowSummary: !cfg.NoSummary,
		GroupByFile: true,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
		Rules:       enabledRuleInfos(cfg),
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, cfg.FailOn) {
	case ExitIssuesFound:
		return ErrIssuesFound
	case ExitIOError:
		return ErrInputsUnreadable
	default:
		return nil
	}
}

// validateCheckFlags rejects flag values that are not worth a config round trip.
func validateCheckFlags(cmd *cobra.Command, flags *checkFlags) error {
	if cmd.Flags().Changed("format") {
		if _, err := reporter.ParseFormat(flags.format); err != nil {
			return usageError(err)
		}
	}
	if flags.contextRadius < 0 {
		return usageError(fmt.Errorf("--context-radius must be >= 0, got %d", flags.contextRadius))
	}
	if flags.jobs < 0 {
		return usageError(fmt.Errorf("--jobs must be >= 0, got %d", flags.jobs))
	}
	return nil
}

// enabledRuleInfos describes the rules that run under cfg.
func enabledRuleInfos(cfg *config.Config) []config.RuleInfo {
	resolved := lint.ResolveRules(lint.DefaultRegistry, cfg)
	ids := make([]string, 0, len(resolved))
	for _, rr := range resolved {
		ids = append(ids, rr.Rule.ID())
	}

	var infos []config.RuleInfo
	for _, info := range lint.DefaultRegistry.RuleInfos() {
		if slices.Contains(ids, info.ID) {
			info.Enabled = true
			infos = append(infos, info)
		}
	}
	return infos
}

// readsStdin reports whether args select standard input.
func readsStdin(args []string) bool {
	return len(args) == 0 || slices.Contains(args, runner.StdinPath)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.inputFormat, "input-format", "auto", "input format: auto, text, markdown")
	cmd.Flags().StringVar(&flags.failOn, "fail-on", "warning",
		"lowest severity that fails the check: error, warning, info")
	cmd.Flags().BoolVar(&flags.showContext, "show-context", false, "show the text around each issue")
	cmd.Flags().BoolVar(&flags.paragraphBreaks, "paragraph-breaks", false,
		"also end sentences at blank lines in plain text")
	cmd.Flags().IntVar(&flags.contextRadius, "context-radius", config.DefaultContextRadius,
		"bytes of context on each side of an issue")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions checked when walking directories (default .txt,.text,.md,.markdown)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs, names or tags to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs, names or tags to disable")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary line from text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON and SARIF output")
}
