package prose

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options controls segmentation.
type Options struct {
	// ParagraphBreaks ends a sentence at a blank line even when no terminal
	// punctuation was seen. Such sentences are reported as not Terminated.
	// Off by default: only terminal punctuation delimits sentences.
	ParagraphBreaks bool
}

// DefaultOptions returns the segmentation options used by Segment.
func DefaultOptions() Options {
	return Options{}
}

// Segment splits text into sentences and tokens using DefaultOptions.
func Segment(text string) *Document {
	return SegmentWithOptions(text, DefaultOptions())
}

// SegmentWithOptions splits text into sentences and tokens.
//
// A sentence ends at a run of terminal punctuation ('.', '!', '?'), optionally
// followed by closing quotes or brackets, when the run is followed by
// whitespace or the end of text. "..." and "?!" count as one boundary. Text
// left over at the end becomes a final, unterminated sentence.
func SegmentWithOptions(text string, opts Options) *Document {
	doc := &Document{
		Content: text,
		Lines:   NewLineIndex(text),
	}

	pos := 0
	for {
		start := skipSpace(text, pos)
		if start >= len(text) {
			break
		}

		end, next, terminated := scanSentence(text, start, opts)
		doc.Sentences = append(doc.Sentences, Sentence{
			StartOffset: start,
			EndOffset:   end,
			Tokens:      Tokenize(text, start, end),
			Terminated:  terminated,
		})
		pos = next
	}

	return doc
}

// scanSentence finds the end of the sentence starting at start.
// It returns the sentence end, the offset to resume scanning from and
// whether a terminal delimiter closed the sentence.
func scanSentence(text string, start int, opts Options) (int, int, bool) {
	for idx := start; idx < len(text); {
		char, size := utf8.DecodeRuneInString(text[idx:])

		if IsTerminal(char) {
			end := skipClosers(text, skipTerminals(text, idx))
			if end >= len(text) {
				return end, end, true
			}
			if next, _ := utf8.DecodeRuneInString(text[end:]); unicode.IsSpace(next) {
				return end, end, true
			}
			idx = end
			continue
		}

		if opts.ParagraphBreaks && char == '\n' {
			if next, ok := blankLineAfter(text, idx+size); ok {
				return trimRight(text, start, idx), next, false
			}
		}

		idx += size
	}

	return trimRight(text, start, len(text)), len(text), false
}

// blankLineAfter reports whether the line starting at offset is blank.
// It returns the offset of that line's newline.
func blankLineAfter(text string, offset int) (int, bool) {
	for idx := offset; idx < len(text); idx++ {
		switch text[idx] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return idx, true
		default:
			return 0, false
		}
	}
	return 0, false
}

func skipTerminals(text string, offset int) int {
	for offset < len(text) {
		char, size := utf8.DecodeRuneInString(text[offset:])
		if !IsTerminal(char) {
			break
		}
		offset += size
	}
	return offset
}

func skipClosers(text string, offset int) int {
	for offset < len(text) {
		char, size := utf8.DecodeRuneInString(text[offset:])
		if !IsCloser(char) {
			break
		}
		offset += size
	}
	return offset
}

func skipSpace(text string, offset int) int {
	for offset < len(text) {
		char, size := utf8.DecodeRuneInString(text[offset:])
		if !unicode.IsSpace(char) {
			break
		}
		offset += size
	}
	return offset
}

func trimRight(text string, start, end int) int {
	return start + len(strings.TrimRightFunc(text[start:end], unicode.IsSpace))
}

// Tokenize returns the word tokens of text[start:end].
// An apostrophe joining two letters ("don't") stays inside the token.
func Tokenize(text string, start, end int) []Token {
	start = clamp(start, 0, len(text))
	end = clamp(end, start, len(text))

	var tokens []Token
	tokStart := -1

	for idx := start; idx < end; {
		char, size := utf8.DecodeRuneInString(text[idx:end])

		inWord := IsWordRune(char)
		if !inWord && tokStart >= 0 && IsApostrophe(char) {
			next, _ := utf8.DecodeRuneInString(text[idx+size : end])
			inWord = unicode.IsLetter(next)
		}

		switch {
		case inWord && tokStart < 0:
			tokStart = idx
		case !inWord && tokStart >= 0:
			tokens = append(tokens, Token{Text: text[tokStart:idx], StartOffset: tokStart, EndOffset: idx})
			tokStart = -1
		}

		idx += size
	}

	if tokStart >= 0 {
		tokens = append(tokens, Token{Text: text[tokStart:end], StartOffset: tokStart, EndOffset: end})
	}

	return tokens
}

// IsTerminal reports whether r ends a sentence.
func IsTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// IsCloser reports whether r may trail terminal punctuation inside a sentence.
func IsCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	default:
		return false
	}
}

// IsWordRune reports whether r can be part of a token.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// IsApostrophe reports whether r is an ASCII or typographic apostrophe.
func IsApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// Segmenter segments text with fixed Options.
type Segmenter struct {
	Options Options
}

// NewSegmenter returns a Segmenter using DefaultOptions.
func NewSegmenter() Segmenter {
	return Segmenter{Options: DefaultOptions()}
}

// NewSegmenterWithOptions returns a Segmenter using opts.
func NewSegmenterWithOptions(opts Options) Segmenter {
	return Segmenter{Options: opts}
}

// Segment splits text into sentences and tokens.
func (s Segmenter) Segment(text string) *Document {
	return SegmentWithOptions(text, s.Options)
}
