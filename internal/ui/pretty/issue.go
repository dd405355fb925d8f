package pretty

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/yaklabco/gramlint/pkg/analysis"
	"github.com/yaklabco/gramlint/pkg/config"
)

// contextIndent aligns context snippets under the issue line.
const contextIndent = "        "

// FormatIssue formats a single issue for terminal output:
//
//	  path:line:col  severity  message  (rule)
//	        ...snippet of the surrounding text...
//	               ^^^^^^^
//
// The context lines are written only when showContext is set and the issue
// carries a snippet.
func (s *Styles) FormatIssue(entry *analysis.IssueEntry, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(entry.FilePath),
		entry.StartLine,
		entry.StartColumn,
	)

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(config.Severity(entry.Severity)),
		s.Message.Render(entry.Message),
		s.RuleID.Render("("+entry.Rule+")"),
	)

	if showContext && entry.Context != "" {
		builder.WriteString(s.FormatContext(entry.Context, entry.ContextStart, entry.ContextEnd))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatContext formats a context snippet with a marker under the bytes
// [markStart, markEnd). Marker positions are measured in terminal cells so
// wide characters keep the marker aligned.
func (s *Styles) FormatContext(snippet string, markStart, markEnd int) string {
	var builder strings.Builder

	builder.WriteString(contextIndent + s.Context.Render(snippet) + "\n")

	markStart = min(max(markStart, 0), len(snippet))
	markEnd = min(max(markEnd, markStart), len(snippet))

	padding := uniseg.StringWidth(snippet[:markStart])
	width := max(uniseg.StringWidth(snippet[markStart:markEnd]), 1)

	builder.WriteString(contextIndent + strings.Repeat(" ", padding) + s.Caret.Render(strings.Repeat("^", width)) + "\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch issueCount {
	case 0:
	case 1:
		header += s.Dim.Render(" (1 issue)")
	default:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
