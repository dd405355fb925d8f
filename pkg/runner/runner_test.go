package runner_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gramlint/internal/logging"
	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
	_ "github.com/yaklabco/gramlint/pkg/lint/rules"
	"github.com/yaklabco/gramlint/pkg/prose"
	"github.com/yaklabco/gramlint/pkg/runner"
)

func newRunner(cfg *config.Config) *runner.Runner {
	engine := lint.NewEngine(prose.NewSegmenter(), lint.DefaultRegistry, cfg)
	return runner.New(lint.NewPipeline(engine, lint.PipelineOptionsFromConfig(cfg)))
}

func TestNew(t *testing.T) {
	t.Parallel()

	pipeline := lint.NewPipeline(lint.NewEngine(prose.NewSegmenter(), lint.NewRegistry(), nil), lint.DefaultPipelineOptions())
	if got := runner.New(pipeline); got.Pipeline != pipeline {
		t.Error("Pipeline not set correctly")
	}
}

func TestRunner_Run_EmptyDirectory(t *testing.T) {
	t.Parallel()

	result, err := newRunner(nil).Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesDiscovered != 0 || len(result.Files) != 0 {
		t.Errorf("expected no files, got %+v", result.Stats)
	}
	if result.HasIssues() {
		t.Error("HasIssues() = true, want false")
	}
}

func TestRunner_Run_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"clean.txt":   "Everything here is fine.\n",
		"repeat.txt":  "The the cat sat.\n",
		"spaces.md":   "# Heading\n\nTwo  spaces here.\n",
		"nested/a.md": "lowercase start.\n",
	})

	result, err := newRunner(config.NewConfig()).Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       2,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 4 || result.Stats.FilesProcessed != 4 {
		t.Errorf("Stats = %+v, want 4 discovered and processed", result.Stats)
	}
	if result.Stats.FilesWithIssues != 3 {
		t.Errorf("FilesWithIssues = %d, want 3", result.Stats.FilesWithIssues)
	}
	if result.Stats.IssuesTotal != 3 {
		t.Errorf("IssuesTotal = %d, want 3", result.Stats.IssuesTotal)
	}

	for kind, want := range map[string]int{"repeated-word": 1, "double-space": 1, "capitalization": 1} {
		if got := result.Stats.IssuesByKind[kind]; got != want {
			t.Errorf("IssuesByKind[%s] = %d, want %d", kind, got, want)
		}
	}
	if got := result.Stats.IssuesBySeverity[config.SeverityWarning]; got != 3 {
		t.Errorf("IssuesBySeverity[warning] = %d, want 3", got)
	}

	wantOrder := []string{"clean.txt", "nested/a.md", "repeat.txt", "spaces.md"}
	for i, name := range wantOrder {
		if got := result.Files[i].Path; got != filepath.Join(dir, name) {
			t.Errorf("Files[%d] = %s, want %s", i, got, name)
		}
	}

	if !result.HasFailures(config.SeverityWarning) {
		t.Error("HasFailures(warning) = false, want true")
	}
	if result.HasFailures(config.SeverityError) {
		t.Error("HasFailures(error) = true, want false")
	}
}

func TestRunner_Run_Stdin(t *testing.T) {
	t.Parallel()

	result, err := newRunner(nil).Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Stdin:      strings.NewReader("hello  world"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Files) != 1 || result.Files[0].Path != runner.StdinPath {
		t.Fatalf("Files = %+v, want one stdin outcome", result.Files)
	}

	fr := result.Files[0].Result
	if fr == nil {
		t.Fatalf("stdin error = %v", result.Files[0].Error)
	}
	if fr.Format != config.InputFormatText {
		t.Errorf("Format = %s, want text", fr.Format)
	}

	var kinds []string
	for _, issue := range fr.Issues {
		kinds = append(kinds, issue.Kind)
	}
	want := "capitalization,terminal-punctuation,double-space"
	if got := strings.Join(kinds, ","); got != want {
		t.Errorf("kinds = %s, want %s", got, want)
	}
}

func TestRunner_Run_MissingFileDoesNotAbort(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"ok.txt": "Fine.\n"})

	result, err := newRunner(nil).Run(context.Background(), runner.Options{
		Paths:      []string{"missing.txt", "ok.txt"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesErrored != 1 || result.Stats.FilesProcessed != 1 {
		t.Errorf("Stats = %+v, want 1 errored and 1 processed", result.Stats)
	}
	if !result.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}

	errs := result.Errors()
	if len(errs) != 1 || !errors.Is(errs[0], lint.ErrFileNotFound) {
		t.Errorf("Errors() = %v, want one ErrFileNotFound", errs)
	}
}

func TestRunner_Run_LogsInputsThroughContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"ok.txt": "Fine.\n"})

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "debug"))

	_, err := newRunner(nil).Run(ctx, runner.Options{
		Paths:      []string{"missing.txt", "ok.txt"},
		WorkingDir: dir,
		Jobs:       1,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"input not checked", "missing.txt", "input checked", "ok.txt"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(nil).Run(ctx, runner.Options{Paths: []string{"."}, WorkingDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"drafts/**"}
	cfg.Jobs = 3

	opts := runner.OptionsFromConfig(cfg, []string{"a.txt"})
	if opts.Jobs != 3 || len(opts.ExcludeGlobs) != 1 || len(opts.Extensions) != 4 {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}

	if opts := runner.OptionsFromConfig(nil, nil); opts.Jobs != 0 || opts.Paths != nil {
		t.Errorf("OptionsFromConfig(nil) = %+v", opts)
	}
}
