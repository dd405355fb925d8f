package rules

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/yaklabco/gramlint/pkg/prose"
)

// wordFolder folds words for case-insensitive comparison.
// A cases.Caser keeps state, so each rule invocation builds its own.
type wordFolder struct {
	caser cases.Caser
}

func newWordFolder() *wordFolder {
	return &wordFolder{caser: cases.Fold()}
}

// fold returns the comparison key of a word: edge apostrophes removed, case folded.
func (f *wordFolder) fold(word string) string {
	return f.caser.String(strings.Trim(word, "'’"))
}

// set folds every word into a lookup set.
func (f *wordFolder) set(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if key := f.fold(w); key != "" {
			set[key] = true
		}
	}
	return set
}

// onlySpaceBetween reports whether text between two tokens is whitespace only.
func onlySpaceBetween(text string, a, b prose.Token) bool {
	if b.StartOffset < a.EndOffset {
		return false
	}
	return strings.TrimSpace(text[a.EndOffset:b.StartOffset]) == ""
}
