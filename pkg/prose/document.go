// Package prose segments plain text into sentences and word tokens.
//
// All offsets are 0-based byte offsets into the original text. A Document is
// built once by Segment and never modified afterwards, so every rule that
// inspects it refers to the same positions.
package prose

// Token is a maximal run of word characters.
type Token struct {
	// Text is the token text exactly as it appears in the source.
	Text string

	// StartOffset is the byte index where the token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the token ends (exclusive).
	EndOffset int
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// Sentence is a contiguous span of the document plus its word tokens.
type Sentence struct {
	// StartOffset is the byte index of the first non-space character.
	StartOffset int

	// EndOffset is the byte index just past the last non-space character.
	EndOffset int

	// Tokens holds the words of the sentence in source order.
	Tokens []Token

	// Terminated is true when the sentence was closed by terminal
	// punctuation rather than by a paragraph break or the end of text.
	Terminated bool
}

// HasTokens reports whether the sentence contains at least one word.
func (s *Sentence) HasTokens() bool {
	return len(s.Tokens) > 0
}

// FirstToken returns the first word of the sentence.
func (s *Sentence) FirstToken() (Token, bool) {
	if len(s.Tokens) == 0 {
		return Token{}, false
	}
	return s.Tokens[0], true
}

// LastToken returns the last word of the sentence.
func (s *Sentence) LastToken() (Token, bool) {
	if len(s.Tokens) == 0 {
		return Token{}, false
	}
	return s.Tokens[len(s.Tokens)-1], true
}

// Document is the immutable, segmented view of one input text.
type Document struct {
	// Path identifies where the text came from (may be empty or "-" for stdin).
	Path string

	// Content is the original text.
	Content string

	// Sentences are ordered by StartOffset and never overlap.
	Sentences []Sentence

	// Lines converts offsets to line and column positions.
	Lines *LineIndex
}

// Slice returns Content[start:end] with both offsets clamped to the content.
func (d *Document) Slice(start, end int) string {
	start = clamp(start, 0, len(d.Content))
	end = clamp(end, start, len(d.Content))
	return d.Content[start:end]
}

// Position returns the 1-based line and column of a byte offset.
func (d *Document) Position(offset int) Position {
	if d.Lines == nil {
		return Position{}
	}
	return d.Lines.Position(offset)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
