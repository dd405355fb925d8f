//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/gramlint"

var Default = Build

var Aliases = map[string]any{
	"b":     Build,
	"t":     Test.Default,
	"r":     Test.Rules,
	"l":     Lint.Default,
	"c":     Check,
	"prose": Prose.Docs,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	Prose st.Namespace
	CI    st.Namespace
)

// Build compiles bin/gramlint when any Go source or module file changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/gramlint")
}

// Check formats, lints and tests.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

func Clean() error {
	for _, path := range []string{"bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/gramlint")
}

// Default runs every package under the race detector with coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails", "-race", "./...",
		"-coverprofile=coverage.out", "-covermode=atomic")
}

// Rules runs only the segmenter and grammar rule tests.
func (Test) Rules() error {
	return gotestsum("testname", "./pkg/prose/...", "./pkg/lint/...")
}

func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when any file needs gofmt.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// Docs checks the repository's own Markdown with the freshly built binary.
func (Prose) Docs() error {
	st.Deps(Build)
	return sh.RunV(binary, "check", "--fail-on", "error", "--no-summary", "--extensions", ".md", ".")
}

// Sample pipes a short paragraph through the checker to show each rule firing.
func (Prose) Sample() error {
	st.Deps(Build)
	sample := "the the cat sat  on the mat\n\nit was happy"
	return sh.RunV("sh", "-c",
		fmt.Sprintf("printf %q | %s check --paragraph-breaks --fail-on error -", sample, binary))
}

// Gate runs the checks CI enforces, in order.
func (CI) Gate() {
	st.SerialDeps(Lint.FmtCheck, Build, Test.Default, CI.ModTidy)
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	return sh.RunV("git", "diff", "--exit-code", "go.mod", "go.sum")
}

func gotestsum(format string, args ...string) error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	cmd := append([]string{"tool", "gotestsum", "-f", format, "--", "-p", procs}, args...)
	return sh.RunV("go", cmd...)
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags injects version, commit and build date into main.
func ldflags() string {
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}
