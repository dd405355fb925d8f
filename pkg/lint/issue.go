package lint

import (
	"cmp"
	"slices"

	"github.com/yaklabco/gramlint/pkg/config"
)

// Issue is one detected problem in a text.
type Issue struct {
	// RuleID is the identifier of the rule that produced this issue.
	RuleID string

	// Kind is the name of the rule that produced this issue (e.g., "repeated-word").
	Kind string

	// Message is the human-readable description of the issue.
	Message string

	// Severity is the resolved severity of the issue.
	Severity config.Severity

	// StartOffset is the byte index where the issue begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the issue ends (exclusive).
	EndOffset int

	// Context is a snippet of surrounding text, set only when requested.
	Context string

	// ContextStart and ContextEnd are the byte range of the issue within Context.
	ContextStart int
	ContextEnd   int
}

// HasContext returns true if a context snippet was attached.
func (i *Issue) HasContext() bool {
	return i.Context != ""
}

// CompareIssues orders issues by start offset, then end offset, then kind.
func CompareIssues(a, b Issue) int {
	if c := cmp.Compare(a.StartOffset, b.StartOffset); c != 0 {
		return c
	}
	if c := cmp.Compare(a.EndOffset, b.EndOffset); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

// SameIssue reports whether two issues have the same kind and span.
func SameIssue(a, b Issue) bool {
	return a.Kind == b.Kind && a.StartOffset == b.StartOffset && a.EndOffset == b.EndOffset
}

// SortIssues sorts issues with CompareIssues and collapses exact duplicates.
// The first of a set of duplicates is kept. The input slice is reused.
func SortIssues(issues []Issue) []Issue {
	slices.SortStableFunc(issues, CompareIssues)
	return slices.CompactFunc(issues, SameIssue)
}

// IssueBuilder helps construct Issue values.
type IssueBuilder struct {
	issue Issue
}

// NewIssueAt starts building an issue for the given rule over [start, end).
func NewIssueAt(ruleID, kind string, start, end int, message string) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			RuleID:      ruleID,
			Kind:        kind,
			Message:     message,
			StartOffset: start,
			EndOffset:   end,
		},
	}
}

// Build returns the constructed Issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
