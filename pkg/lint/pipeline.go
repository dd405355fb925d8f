package lint

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/fsutil"
	"github.com/yaklabco/gramlint/pkg/prose"
	"github.com/yaklabco/gramlint/pkg/source"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotText indicates the input is binary or otherwise unreadable as text.
	ErrNotText = errors.New("not a text file")

	// ErrCheckFailure indicates the check itself failed (e.g., cancellation).
	ErrCheckFailure = errors.New("check failure")
)

// FileResult contains the issues found in one input.
type FileResult struct {
	// Path is the input path ("-" for standard input).
	Path string

	// Format is the resolved input format.
	Format config.InputFormat

	// Content is the full input text.
	Content string

	// Lines maps issue offsets to line and column positions.
	Lines *prose.LineIndex

	// Issues are sorted by offset into Content.
	Issues []Issue

	// Regions is the number of prose regions checked.
	Regions int

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any issues were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Issues) > 0
}

// IssueCount returns the total number of issues.
func (fr *FileResult) IssueCount() int {
	return len(fr.Issues)
}

// Position returns the line and column of an offset into Content.
func (fr *FileResult) Position(offset int) prose.Position {
	if fr.Lines == nil {
		return prose.Position{}
	}
	return fr.Lines.Position(offset)
}

// PipelineOptions controls how inputs are read and checked.
type PipelineOptions struct {
	// Check holds the context snippet options.
	Check Options

	// InputFormat forces text or Markdown handling; auto detects per input.
	InputFormat config.InputFormat
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Check:       DefaultOptions(),
		InputFormat: config.InputFormatAuto,
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}

	format := cfg.InputFormat
	if !format.IsValid() {
		format = config.InputFormatAuto
	}

	return PipelineOptions{
		Check:       OptionsFromConfig(cfg),
		InputFormat: format,
	}
}

// Pipeline reads one input, finds its prose and checks it.
type Pipeline struct {
	// Engine checks each prose region.
	Engine *Engine

	// Options controls input handling.
	Options PipelineOptions
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine, opts PipelineOptions) *Pipeline {
	return &Pipeline{Engine: engine, Options: opts}
}

// ProcessFile reads path from disk and checks it.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	return p.ProcessContent(ctx, path, content)
}

// ProcessContent checks in-memory content.
//
// The steps are:
//  1. Reject binary content.
//  2. Resolve the input format.
//  3. Split the content into prose regions (the whole text, or Markdown paragraphs).
//  4. Check every region and map issue offsets back onto the content.
//  5. Sort and de-duplicate across regions.
//  6. Attach context snippets taken from the whole content, if requested.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte) (*FileResult, error) {
	if err := source.CheckText(content); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotText, path, err)
	}

	text := string(content)
	result := &FileResult{
		Path:       path,
		Format:     source.Resolve(p.Options.InputFormat, path, content),
		Content:    text,
		Lines:      prose.NewLineIndex(text),
		RuleErrors: make(map[string]error),
	}

	regions := source.Regions(result.Format, content)
	result.Regions = len(regions)

	for i := range regions {
		region := &regions[i]

		checked, err := p.Engine.CheckContext(ctx, region.Text, Options{})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCheckFailure, path, err)
		}

		for _, issue := range checked.Issues {
			issue.StartOffset, issue.EndOffset = region.StartOffset(issue.StartOffset), region.EndOffset(issue.EndOffset)
			result.Issues = append(result.Issues, issue)
		}
		maps.Copy(result.RuleErrors, checked.RuleErrors)
	}

	result.Issues = SortIssues(result.Issues)

	if p.Options.Check.IncludeContext {
		AttachContext(text, result.Issues, p.Options.Check.ContextRadius)
	}

	return result, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrNotText) ||
		errors.Is(err, ErrCheckFailure)
}
