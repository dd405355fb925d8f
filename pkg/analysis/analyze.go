package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
	"github.com/yaklabco/gramlint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// Relative paths, such as "-" for standard input, are returned unchanged.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" || !filepath.IsAbs(absPath) {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

// severityCounts is implemented by every aggregate with per-severity counters.
type severityCounts interface {
	counters() (errors, warnings, infos *int)
}

func (t *Totals) counters() (*int, *int, *int)       { return &t.Errors, &t.Warnings, &t.Infos }
func (f *FileAnalysis) counters() (*int, *int, *int) { return &f.Errors, &f.Warnings, &f.Infos }
func (r *RuleAnalysis) counters() (*int, *int, *int) { return &r.Errors, &r.Warnings, &r.Infos }

// countSeverity increments the counter matching severity on every target.
func countSeverity(severity config.Severity, targets ...severityCounts) {
	for _, target := range targets {
		errs, warnings, infos := target.counters()
		switch severity {
		case config.SeverityError:
			*errs++
		case config.SeverityInfo:
			*infos++
		default:
			*warnings++
		}
	}
}

func normalizeSeverity(sev config.Severity) config.Severity {
	if sev == "" {
		return config.SeverityWarning
	}
	return sev
}

func (ctx *analysisContext) file(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileRules[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) rule(issue *lint.Issue, format config.RuleFormat) *RuleAnalysis {
	if _, ok := ctx.ruleMap[issue.RuleID]; !ok {
		ctx.ruleMap[issue.RuleID] = &RuleAnalysis{
			RuleID: issue.RuleID,
			Kind:   issue.Kind,
			Rule:   config.FormatRuleID(format, issue.RuleID, issue.Kind),
		}
		ctx.ruleFiles[issue.RuleID] = make(map[string]bool)
	}
	return ctx.ruleMap[issue.RuleID]
}

// newIssueEntry builds an IssueEntry with line and column positions.
func newIssueEntry(path string, fr *lint.FileResult, issue *lint.Issue, opts Options) IssueEntry {
	start := fr.Position(issue.StartOffset)
	end := fr.Position(issue.EndOffset)

	entry := IssueEntry{
		FilePath:    path,
		RuleID:      issue.RuleID,
		Kind:        issue.Kind,
		Rule:        config.FormatRuleID(opts.RuleFormat, issue.RuleID, issue.Kind),
		Severity:    string(normalizeSeverity(issue.Severity)),
		Message:     issue.Message,
		StartOffset: issue.StartOffset,
		EndOffset:   issue.EndOffset,
		StartLine:   start.Line,
		StartColumn: start.Column,
		EndLine:     end.Line,
		EndColumn:   end.Column,
	}
	if issue.HasContext() {
		entry.Context = issue.Context
		entry.ContextStart = issue.ContextStart
		entry.ContextEnd = issue.ContextEnd
	}

	return entry
}

func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for ruleID, ra := range ctx.ruleMap {
		for f := range ctx.ruleFiles[ruleID] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	sortAnalysis(result, opts, func(r RuleAnalysis) (string, int, int, int) {
		return r.RuleID, r.Issues, r.Errors, r.Warnings
	})
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Issues == 0 {
			continue
		}
		for r := range ctx.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		result = append(result, *fa)
	}
	sortAnalysis(result, opts, func(f FileAnalysis) (string, int, int, int) {
		return f.Path, f.Issues, f.Errors, f.Warnings
	})
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through the issues to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		if file.Error != nil {
			report.Totals.FilesErrored++
			report.Errors = append(report.Errors, ErrorEntry{FilePath: displayPath, Message: file.Error.Error()})
			continue
		}
		if file.Result == nil {
			continue
		}

		if file.Result.HasIssues() {
			report.Totals.FilesWithIssues++
		}

		fa := ctx.file(displayPath)

		for i := range file.Result.Issues {
			issue := &file.Result.Issues[i]
			severity := normalizeSeverity(issue.Severity)

			ra := ctx.rule(issue, opts.RuleFormat)
			report.Totals.Issues++
			fa.Issues++
			ra.Issues++
			countSeverity(severity, &report.Totals, fa, ra)

			ctx.fileRules[displayPath][ra.Rule] = true
			ctx.ruleFiles[issue.RuleID][displayPath] = true

			if opts.IncludeIssues {
				report.Issues = append(report.Issues, newIssueEntry(displayPath, file.Result, issue, opts))
			}
		}
	}

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

// sortAnalysis sorts rows by opts.SortBy. Ties are broken by name so the
// order never depends on map iteration.
func sortAnalysis[T any](rows []T, opts Options, key func(T) (name string, issues, errs, warnings int)) {
	slices.SortFunc(rows, func(left, right T) int {
		lName, lIssues, lErrors, lWarnings := key(left)
		rName, rIssues, rErrors, rWarnings := key(right)

		var result int
		switch opts.SortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
		case SortBySeverity:
			// Errors first, then warnings, then total (always descending)
			result = cmp.Or(
				cmp.Compare(rErrors, lErrors),
				cmp.Compare(rWarnings, lWarnings),
				cmp.Compare(rIssues, lIssues),
			)
		default: // SortByCount
			result = cmp.Compare(lIssues, rIssues)
			if opts.SortDesc {
				result = -result
			}
		}

		return cmp.Or(result, cmp.Compare(lName, rName))
	})
}
