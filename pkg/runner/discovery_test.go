package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/gramlint/pkg/runner"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"readme.md":          "Readme.",
		"notes.txt":          "Notes.",
		"docs/guide.md":      "Guide.",
		"docs/api.markdown":  "Api.",
		"docs/CHAPTER.TXT":   "Chapter.",
		"src/main.go":        "package main",
		".hidden/secret.txt": "Hidden.",
		".draft.md":          "Draft.",
		"vendor/lib/doc.md":  "Vendored.",
		"node_modules/x.txt": "Module.",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "docs/CHAPTER.TXT"),
		filepath.Join(dir, "docs/api.markdown"),
		filepath.Join(dir, "docs/guide.md"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(dir, "readme.md"),
	}

	if !slices.Equal(files, expected) {
		t.Errorf("Discover() = %v, want %v", files, expected)
	}
}

func TestDiscover_DefaultsToStdin(t *testing.T) {
	t.Parallel()

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if !slices.Equal(files, []string{runner.StdinPath}) {
		t.Errorf("Discover() = %v, want [-]", files)
	}
}

func TestDiscover_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.txt":     "B.",
		"a.txt":     "A.",
		"dir/c.txt": "C.",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"b.txt", "-", "dir", "a.txt", "b.txt", "dir/c.txt"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "b.txt"),
		runner.StdinPath,
		filepath.Join(dir, "dir/c.txt"),
		filepath.Join(dir, "a.txt"),
	}
	if !slices.Equal(files, expected) {
		t.Errorf("Discover() = %v, want %v", files, expected)
	}
}

func TestDiscover_ExplicitFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"letter.rst": "Dear reader."})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"letter.rst", "missing.txt"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "letter.rst"),
		filepath.Join(dir, "missing.txt"),
	}
	if !slices.Equal(files, expected) {
		t.Errorf("Discover() = %v, want %v", files, expected)
	}
}

func TestDiscover_Excludes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"keep.md":           "Keep.",
		"CHANGELOG.md":      "Changes.",
		"drafts/one.md":     "One.",
		"book/ch1/notes.md": "Notes.",
		"book/ch1/text.md":  "Text.",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"CHANGELOG.md", "drafts/**", "**/notes.md"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "book/ch1/text.md"),
		filepath.Join(dir, "keep.md"),
	}
	if !slices.Equal(files, expected) {
		t.Errorf("Discover() = %v, want %v", files, expected)
	}
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.adoc": "A.",
		"b.md":   "B.",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Extensions: []string{".adoc"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if !slices.Equal(files, []string{filepath.Join(dir, "a.adoc")}) {
		t.Errorf("Discover() = %v", files)
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Discover(ctx, runner.Options{Paths: []string{"."}, WorkingDir: t.TempDir()}); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}
