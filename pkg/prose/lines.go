package prose

import (
	"sort"
	"unicode/utf8"
)

// LineInfo describes one line of the content.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of content).
	EndOffset int
}

// Position is a 1-based line and column. Columns count runes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// LineIndex maps byte offsets to line and column positions.
type LineIndex struct {
	content string
	lines   []LineInfo
}

// NewLineIndex builds the line index for content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func NewLineIndex(content string) *LineIndex {
	return &LineIndex{
		content: content,
		lines:   BuildLines(content),
	}
}

// BuildLines constructs line metadata from content.
func BuildLines(content string) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(content); idx++ {
		if content[idx] != '\n' {
			continue
		}

		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// Last line (may not have trailing newline).
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// Position converts a byte offset to a 1-based line and rune column.
// Offsets past the end map to the end of the last line.
// Returns the zero Position for negative offsets or empty content.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 || len(li.lines) == 0 {
		return Position{}
	}
	if offset > len(li.content) {
		offset = len(li.content)
	}

	lineIdx := sort.Search(len(li.lines), func(i int) bool {
		return li.lines[i].EndOffset > offset
	})
	if lineIdx >= len(li.lines) {
		lineIdx = len(li.lines) - 1
	}

	line := li.lines[lineIdx]
	column := utf8.RuneCountInString(li.content[line.StartOffset:offset]) + 1

	return Position{Line: lineIdx + 1, Column: column}
}

// Line returns the content of a 1-based line number, excluding the newline.
// Returns "" if the line number is out of range.
func (li *LineIndex) Line(n int) string {
	if n < 1 || n > len(li.lines) {
		return ""
	}
	line := li.lines[n-1]
	return li.content[line.StartOffset:line.NewlineStart]
}
