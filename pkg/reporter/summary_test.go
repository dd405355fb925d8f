package reporter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gramlint/pkg/analysis"
	"github.com/yaklabco/gramlint/pkg/config"
)

func TestSummaryRenderer_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewSummaryRenderer(Options{Writer: &buf, Color: "never"})

	err := renderer.Render(context.Background(), &analysis.Report{Totals: analysis.Totals{Files: 2}})
	require.NoError(t, err)

	assert.Equal(t, "No grammar issues found. (2 files checked)\n", buf.String())
}

func TestSummaryRenderer_Tables(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewSummaryRenderer(Options{Writer: &buf, Color: "never"})

	report := &analysis.Report{
		ByRule: []analysis.RuleAnalysis{
			{RuleID: "GR001", Rule: "repeated-word", Issues: 5, Errors: 3, Warnings: 2},
			{RuleID: "GR005", Issues: 1, Infos: 1},
		},
		ByFile: []analysis.FileAnalysis{
			{Path: "docs/guide.md", Issues: 6, Errors: 3, Warnings: 2, Infos: 1},
		},
		Totals: analysis.Totals{Files: 1, FilesWithIssues: 1, Issues: 6, Errors: 3, Warnings: 2, Infos: 1},
	}

	require.NoError(t, renderer.Render(context.Background(), report))
	out := buf.String()

	rulesAt := strings.Index(out, "Rules Summary")
	filesAt := strings.Index(out, "Files Summary")
	require.GreaterOrEqual(t, rulesAt, 0)
	require.Greater(t, filesAt, rulesAt, "rules table comes first")

	assert.Contains(t, out, padRight("repeated-word", ruleColWidth)+" "+padLeft("5", numColWidth))
	assert.Contains(t, out, padRight("GR005", ruleColWidth), "rule ID is used when the name is empty")
	assert.Contains(t, out, "Info")
	assert.NotContains(t, out, "Fixable")
	assert.Contains(t, out, "docs/guide.md")
	assert.Contains(t, out, "Total: 6 issues (3 errors, 2 warnings, 1 info) in 1 file")
}

func TestSummaryRenderer_TruncatesLongNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewSummaryRenderer(Options{Writer: &buf, Color: "never"})

	longPath := strings.Repeat("d/", 40) + "file.txt"
	report := &analysis.Report{
		ByRule: []analysis.RuleAnalysis{{RuleID: "GR001", Rule: strings.Repeat("x", 40), Issues: 1, Warnings: 1}},
		ByFile: []analysis.FileAnalysis{{Path: longPath, Issues: 1, Warnings: 1}},
		Totals: analysis.Totals{Files: 1, FilesWithIssues: 1, Issues: 1, Warnings: 1},
	}

	require.NoError(t, renderer.Render(context.Background(), report))
	out := buf.String()

	assert.Contains(t, out, strings.Repeat("x", maxRuleNameLength)+"…")
	assert.NotContains(t, out, longPath)
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "file.txt")
	assert.Contains(t, out, "Total: 1 issue (1 warning) in 1 file")
}

func TestPadding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "   ab", padLeft("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "abcdef", padLeft("abcdef", 3))
}

func TestSARIFRenderer_FixedGUID(t *testing.T) {
	t.Parallel()

	renderer := NewSARIFRenderer(Options{})
	renderer.newGUID = func() string { return "00000000-0000-0000-0000-000000000001" }

	output := renderer.buildOutput(&analysis.Report{})

	require.Len(t, output.Runs, 1)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", output.Runs[0].AutomationDetails.GUID)
	assert.Equal(t, "dev", output.Runs[0].Tool.Driver.Version)
	assert.Empty(t, output.Runs[0].Results)
	assert.NotNil(t, output.Runs[0].Results)
}

func TestSeverityToSARIFLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", severityToSARIFLevel(config.SeverityError))
	assert.Equal(t, "warning", severityToSARIFLevel(config.SeverityWarning))
	assert.Equal(t, "note", severityToSARIFLevel(config.SeverityInfo))
	assert.Equal(t, "warning", severityToSARIFLevel(""))
}
