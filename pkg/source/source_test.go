package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/source"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    config.InputFormat
	}{
		{"markdown extension", "README.md", "plain words", config.InputFormatMarkdown},
		{"markdown long extension", "notes.markdown", "plain words", config.InputFormatMarkdown},
		{"text extension", "notes.txt", "# not a heading here", config.InputFormatText},
		{"stdin plain", "", "Just some words. Nothing else.", config.InputFormatText},
		{"stdin heading", "", "# Title\n\nSome words.", config.InputFormatMarkdown},
		{"stdin fence", "-", "Text\n```\ncode\n```\n", config.InputFormatMarkdown},
		{"stdin link", "", "See [the docs](https://example.com) first.", config.InputFormatMarkdown},
		{"hash without space", "", "#hashtag is not a heading", config.InputFormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, source.Detect(tt.path, []byte(tt.content)))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	content := []byte("# Title")
	assert.Equal(t, config.InputFormatText, source.Resolve(config.InputFormatText, "a.md", content))
	assert.Equal(t, config.InputFormatMarkdown, source.Resolve(config.InputFormatMarkdown, "a.txt", nil))
	assert.Equal(t, config.InputFormatMarkdown, source.Resolve(config.InputFormatAuto, "", content))
}

func TestCheckText(t *testing.T) {
	t.Parallel()

	require.NoError(t, source.CheckText([]byte("hello world")))
	require.ErrorIs(t, source.CheckText([]byte{0x00, 0x01, 0x02, 0x00, 'a'}), source.ErrBinary)
}

func TestSkip(t *testing.T) {
	t.Parallel()

	assert.True(t, source.Skip("vendor/github.com/pkg/README.md"))
	assert.True(t, source.Skip("node_modules/lib/README.md"))
	assert.False(t, source.Skip("docs/guide.md"))
}

func regionTexts(regions []source.Region) []string {
	texts := make([]string, 0, len(regions))
	for _, r := range regions {
		texts = append(texts, r.Text)
	}
	return texts
}

func TestRegions_Text(t *testing.T) {
	t.Parallel()

	content := []byte("# Not a heading in text mode\nsecond line")
	regions := source.Regions(config.InputFormatText, content)
	require.Len(t, regions, 1)
	assert.Equal(t, string(content), regions[0].Text)
	assert.Equal(t, 5, regions[0].StartOffset(5))

	assert.Empty(t, source.Regions(config.InputFormatText, nil))
}

func TestRegions_Markdown(t *testing.T) {
	t.Parallel()

	content := []byte("# the Title\n\n" +
		"First paragraph here.\n\n" +
		"```\nthe the code\n```\n\n" +
		"| a | b |\n|---|---|\n| x | y |\n\n" +
		"- item one is here.\n\n" +
		"Last one\n")

	regions := source.Regions(config.InputFormatMarkdown, content)
	assert.Equal(t, []string{"First paragraph here.", "item one is here.", "Last one"}, regionTexts(regions))

	for _, r := range regions {
		start := r.StartOffset(0)
		end := r.EndOffset(len(r.Text))
		assert.Equal(t, r.Text, string(content[start:end]))
	}
}

func TestRegions_BlockquoteSpans(t *testing.T) {
	t.Parallel()

	content := []byte("> quoted line one\n> and line two.\n")
	regions := source.Regions(config.InputFormatMarkdown, content)
	require.Len(t, regions, 1)

	r := regions[0]
	assert.Equal(t, "quoted line one\nand line two.", r.Text)
	require.Len(t, r.Spans, 2)

	// "and" starts the second span: offset 16 in Text, byte 20 in the input.
	textOffset := len("quoted line one\n")
	assert.Equal(t, 20, r.StartOffset(textOffset))
	assert.Equal(t, "and", string(content[r.StartOffset(textOffset):r.EndOffset(textOffset+3)]))

	// The boundary maps to the end of the first span when used as an end offset.
	assert.Equal(t, 18, r.EndOffset(textOffset))
}
