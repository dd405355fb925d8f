package runner

import (
	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/lint"
)

// FileOutcome is the outcome of checking one input.
type FileOutcome struct {
	// Path is the input that was processed, StdinPath for standard input.
	Path string

	// Result contains the issues for this input.
	// It is nil if the input could not be processed.
	Result *lint.FileResult

	// Error is set if the input could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of inputs found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of inputs successfully checked.
	FilesProcessed int

	// FilesErrored is the number of inputs that could not be checked.
	FilesErrored int

	// FilesWithIssues is the number of inputs with at least one issue.
	FilesWithIssues int

	// IssuesTotal is the total number of issues across all inputs.
	IssuesTotal int

	// IssuesBySeverity maps severity levels to counts.
	IssuesBySeverity map[config.Severity]int

	// IssuesByKind maps issue kinds to counts.
	IssuesByKind map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each input, in discovery order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any issues were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// HasErrors reports whether any input could not be checked.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasFailures reports whether any issue is at least as severe as threshold.
func (r *Result) HasFailures(threshold config.Severity) bool {
	if r == nil {
		return false
	}
	for severity, count := range r.Stats.IssuesBySeverity {
		if count > 0 && severity.AtLeast(threshold) {
			return true
		}
	}
	return false
}

// Errors returns the processing error of every failed input, in order.
func (r *Result) Errors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, f.Error)
		}
	}
	return errs
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		IssuesBySeverity: make(map[config.Severity]int),
		IssuesByKind:     make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	count := outcome.Result.IssueCount()
	r.Stats.IssuesTotal += count
	if count > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, issue := range outcome.Result.Issues {
		severity := issue.Severity
		if severity == "" {
			severity = config.SeverityWarning
		}
		r.Stats.IssuesBySeverity[severity]++
		r.Stats.IssuesByKind[issue.Kind]++
	}
}
