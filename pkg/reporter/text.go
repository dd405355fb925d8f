package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/gramlint/internal/ui/pretty"
	"github.com/yaklabco/gramlint/pkg/analysis"
)

// TextRenderer formats results as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.out, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if r.opts.GroupByFile {
		r.renderGrouped(bw, report.Issues)
	} else {
		for i := range report.Issues {
			fmt.Fprint(bw, r.styles.FormatIssue(&report.Issues[i], r.opts.ShowContext))
		}
	}

	for _, entry := range report.Errors {
		fmt.Fprintf(bw, "%s: %s\n",
			r.styles.FilePath.Render(entry.FilePath),
			r.styles.Error.Render("error: "+entry.Message),
		)
	}

	switch {
	case r.opts.ShowSummary:
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
	case !report.Totals.HasIssues() && len(report.Errors) == 0:
		fmt.Fprintln(bw, r.styles.Success.Render(pretty.NoIssuesMessage))
	}

	return nil
}

// renderGrouped writes issues under a header per file.
// Issues arrive in input order, so each file's issues are contiguous.
func (r *TextRenderer) renderGrouped(w io.Writer, issues []analysis.IssueEntry) {
	counts := make(map[string]int)
	for i := range issues {
		counts[issues[i].FilePath]++
	}

	for i := range issues {
		entry := &issues[i]
		if i == 0 || issues[i-1].FilePath != entry.FilePath {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, r.styles.FormatFileHeader(entry.FilePath, counts[entry.FilePath]))
		}
		fmt.Fprint(w, r.styles.FormatIssue(entry, r.opts.ShowContext))
	}

	if len(issues) > 0 {
		fmt.Fprintln(w)
	}
}
