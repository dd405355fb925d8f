package source

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gramlint/pkg/config"
)

// Span is a [Start, End) byte range of the original input.
type Span struct {
	Start int
	End   int
}

// Region is a stretch of prose checked as one text.
//
// Text is the concatenation of Spans of the original input. Offsets into Text
// are mapped back to the input with Offset.
type Region struct {
	Text  string
	Spans []Span

	// starts[i] is the offset in Text where Spans[i] begins.
	starts []int
}

func newRegion(content []byte, spans []Span) Region {
	var b strings.Builder
	starts := make([]int, 0, len(spans))
	for _, sp := range spans {
		starts = append(starts, b.Len())
		b.Write(content[sp.Start:sp.End])
	}
	return Region{Text: b.String(), Spans: spans, starts: starts}
}

// StartOffset maps the start of a span of Text to the original input.
// An offset on the boundary between two spans maps to the start of the later one.
func (r *Region) StartOffset(offset int) int {
	owner := sort.Search(len(r.starts), func(i int) bool {
		return r.starts[i] > offset
	}) - 1
	return r.mapOffset(owner, offset)
}

// EndOffset maps the exclusive end of a span of Text to the original input.
// An offset on the boundary between two spans maps to the end of the earlier one.
func (r *Region) EndOffset(offset int) int {
	owner := sort.Search(len(r.starts), func(i int) bool {
		return r.starts[i] >= offset
	}) - 1
	return r.mapOffset(owner, offset)
}

func (r *Region) mapOffset(owner, offset int) int {
	if len(r.Spans) == 0 {
		return offset
	}
	owner = max(owner, 0)
	span := r.Spans[owner]
	return span.Start + min(max(offset-r.starts[owner], 0), span.End-span.Start)
}

// Regions returns the prose regions of content for the given format.
// Text inputs are a single region covering everything.
func Regions(format config.InputFormat, content []byte) []Region {
	if format != config.InputFormatMarkdown {
		if len(content) == 0 {
			return nil
		}
		return []Region{newRegion(content, []Span{{Start: 0, End: len(content)}})}
	}
	return markdownRegions(content)
}

// markdownRegions returns one region per paragraph or list item text, in document order.
// Each paragraph line is one span, so container markers such as "> " in
// block quotes stay out of the checked text.
func markdownRegions(content []byte) []Region {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote))
	doc := md.Parser().Parse(text.NewReader(content))

	var regions []Region
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		// Tight list items hold their text in TextBlock nodes instead of paragraphs.
		if node.Kind() != ast.KindParagraph && node.Kind() != ast.KindTextBlock {
			return ast.WalkContinue, nil
		}

		lines := node.Lines()
		spans := make([]Span, 0, lines.Len())
		for i := range lines.Len() {
			seg := lines.At(i)
			if seg.Stop > seg.Start {
				spans = append(spans, Span{Start: seg.Start, End: seg.Stop})
			}
		}
		if len(spans) > 0 {
			regions = append(regions, newRegion(content, spans))
		}

		return ast.WalkSkipChildren, nil
	})

	return regions
}
