package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gramlint/pkg/analysis"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// NoIssuesMessage is printed when a run finds nothing to report.
const NoIssuesMessage = "No grammar issues found."

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run totals as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 1 file could not be read".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	var parts []string

	if totals.Issues == 0 {
		checked := totals.Files - totals.FilesErrored
		parts = append(parts, s.Success.Render(NoIssuesMessage)+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", checked, plural(checked, wordFile, wordFiles))))
	} else {
		issueWord := plural(totals.Issues, "issue", "issues")

		var severityParts []string
		if totals.Errors > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", totals.Errors, plural(totals.Errors, "error", "errors"))))
		}
		if totals.Warnings > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", totals.Warnings, plural(totals.Warnings, "warning", "warnings"))))
		}
		if totals.Infos > 0 {
			severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
		}

		main := fmt.Sprintf("%d %s", totals.Issues, issueWord)
		if len(severityParts) > 0 {
			main += " (" + strings.Join(severityParts, ", ") + ")"
		}
		parts = append(parts, fmt.Sprintf("%s in %d %s", main,
			totals.FilesWithIssues, plural(totals.FilesWithIssues, wordFile, wordFiles)))
	}

	if totals.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s could not be read",
			totals.FilesErrored, plural(totals.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(totals.Files)) + "\n")

	if totals.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(totals.FilesWithIssues)) + "\n")
	}

	if totals.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:  " +
			s.Failure.Render(strconv.Itoa(totals.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(totals.Issues)) + "\n")

	if totals.Errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(totals.Errors)) + "\n")
	}
	if totals.Warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(totals.Warnings)) + "\n")
	}
	if totals.Infos > 0 {
		builder.WriteString("    Info:            " +
			s.Info.Render(strconv.Itoa(totals.Infos)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case totals.Errors > 0:
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case totals.Warnings > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	case totals.Infos > 0:
		builder.WriteString(s.Info.Render("Check completed with notes"))
	default:
		builder.WriteString(s.Success.Render(NoIssuesMessage))
	}
	builder.WriteString("\n")

	return builder.String()
}
