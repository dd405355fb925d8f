package lint

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis marks text cut from either side of a snippet.
const Ellipsis = "..."

//nolint:gochecknoglobals // Immutable replacer shared by all snippets.
var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Snippet returns text[start-radius : end+radius], clamped to the text.
//
// The result is prefixed with Ellipsis when text exists before it and
// suffixed with Ellipsis when text exists after it. Bounds are moved inward
// to UTF-8 rune boundaries so the snippet never splits a character, and line
// breaks are rendered as spaces. Out-of-range offsets and negative radii are
// clamped, never rejected.
func Snippet(text string, start, end, radius int) string {
	snippet, _, _ := MarkedSnippet(text, start, end, radius)
	return snippet
}

// MarkedSnippet returns the Snippet of [start, end) together with the byte
// range the issue itself occupies within it.
func MarkedSnippet(text string, start, end, radius int) (snippet string, markStart, markEnd int) {
	start = clampInt(start, 0, len(text))
	end = clampInt(end, start, len(text))
	radius = max(radius, 0)

	left := max(start-radius, 0)
	for left < start && !utf8.RuneStart(text[left]) {
		left++
	}

	right := min(end+radius, len(text))
	for right > end && right < len(text) && !utf8.RuneStart(text[right]) {
		right--
	}

	body := newlineFlattener.Replace(text[left:right])

	var b strings.Builder
	b.Grow(len(body) + 2*len(Ellipsis))

	if left > 0 {
		b.WriteString(Ellipsis)
	}
	offset := b.Len()
	b.WriteString(body)
	if right < len(text) {
		b.WriteString(Ellipsis)
	}

	// A CRLF split by an issue bound flattens differently in the prefix, so clamp.
	markStart = offset + min(len(newlineFlattener.Replace(text[left:start])), len(body))
	markEnd = offset + min(len(newlineFlattener.Replace(text[left:end])), len(body))

	return b.String(), markStart, max(markStart, markEnd)
}

// AttachContext sets the Context of every issue to its snippet of text.
func AttachContext(text string, issues []Issue, radius int) {
	for i := range issues {
		issue := &issues[i]
		issue.Context, issue.ContextStart, issue.ContextEnd = MarkedSnippet(text, issue.StartOffset, issue.EndOffset, radius)
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
