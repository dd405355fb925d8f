package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/prose"
)

// Segmenter turns raw text into a segmented Document.
//
// Implementations must be deterministic and side-effect free, and the
// returned Document must not be modified afterwards.
type Segmenter interface {
	Segment(text string) *prose.Document
}

// Options controls a single check.
type Options struct {
	// IncludeContext attaches a snippet of surrounding text to every issue.
	IncludeContext bool

	// ContextRadius is the number of bytes of text included on each side of an issue.
	ContextRadius int
}

// DefaultOptions returns Options without context and with the default radius.
func DefaultOptions() Options {
	return Options{
		IncludeContext: false,
		ContextRadius:  config.DefaultContextRadius,
	}
}

// OptionsFromConfig creates Options from config.Config.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		IncludeContext: cfg.ShowContext,
		ContextRadius:  cfg.ContextRadius,
	}
}

// SegmenterFromConfig returns the segmenter selected by cfg.
func SegmenterFromConfig(cfg *config.Config) prose.Segmenter {
	if cfg == nil {
		return prose.NewSegmenter()
	}
	return prose.NewSegmenterWithOptions(prose.Options{ParagraphBreaks: cfg.ParagraphBreaks})
}

// Result contains the outcome of checking one text.
type Result struct {
	// Document is the segmented text.
	Document *prose.Document

	// Issues are sorted by start offset, end offset and kind, without duplicates.
	Issues []Issue

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any issues were found.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// IssueCount returns the total number of issues.
func (r *Result) IssueCount() int {
	return len(r.Issues)
}

// Engine coordinates segmentation and rule execution.
type Engine struct {
	// Segmenter splits text into sentences and tokens.
	Segmenter Segmenter

	// Registry holds all available rules.
	Registry *Registry

	// Config selects and configures rules. A nil Config runs every
	// default-enabled rule with its defaults.
	Config *config.Config
}

// NewEngine creates a new Engine with the given segmenter, registry and configuration.
func NewEngine(segmenter Segmenter, registry *Registry, cfg *config.Config) *Engine {
	return &Engine{
		Segmenter: segmenter,
		Registry:  registry,
		Config:    cfg,
	}
}

// CheckContext segments text once, runs every resolved rule once over the
// resulting document and returns the sorted, de-duplicated issues.
//
// Rules run in ID order, each on the same immutable Document; no rule sees
// another rule's output. A rule that fails is recorded in RuleErrors and its
// issues are dropped. Cancellation is checked between rules.
func (e *Engine) CheckContext(ctx context.Context, text string, opts Options) (*Result, error) {
	doc := e.Segmenter.Segment(text)

	result := &Result{
		Document:   doc,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range ResolveRules(e.Registry, e.Config) {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("check cancelled: %w", ctx.Err())
		default:
		}

		issues, err := rr.Rule.Apply(NewRuleContext(ctx, doc, e.Config, rr.Config))
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range issues {
			issues[i].Severity = rr.Severity
			if issues[i].RuleID == "" {
				issues[i].RuleID = rr.Rule.ID()
			}
			if issues[i].Kind == "" {
				issues[i].Kind = rr.Rule.Name()
			}
		}

		result.Issues = append(result.Issues, issues...)
	}

	result.Issues = SortIssues(result.Issues)

	if opts.IncludeContext {
		AttachContext(text, result.Issues, opts.ContextRadius)
	}

	return result, nil
}

// Check returns the ordered issues found in text.
// Rule errors are dropped; use CheckContext to inspect them.
func (e *Engine) Check(text string, opts Options) []Issue {
	result, _ := e.CheckContext(context.Background(), text, opts)
	return result.Issues
}

// Check runs the default rules over text.
// Rules must be registered in DefaultRegistry first, usually by importing
// the rules package.
func Check(text string, opts Options) []Issue {
	return NewEngine(prose.NewSegmenter(), DefaultRegistry, nil).Check(text, opts)
}
