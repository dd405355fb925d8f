package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/gramlint/pkg/analysis"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string                `json:"version"`
	Issues  []analysis.IssueEntry `json:"issues"`
	Errors  []analysis.ErrorEntry `json:"errors"`
	Summary analysis.Totals       `json:"summary"`
}

// JSONRenderer formats results as JSON.
type JSONRenderer struct {
	opts Options
	out  io.Writer
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts, out: opts.Writer}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.out, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := JSONOutput{
		Version: report.Version,
		Issues:  report.Issues,
		Errors:  report.Errors,
		Summary: report.Totals,
	}
	// Empty lists are written as [] rather than null.
	if output.Issues == nil {
		output.Issues = []analysis.IssueEntry{}
	}
	if output.Errors == nil {
		output.Errors = []analysis.ErrorEntry{}
	}

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}
