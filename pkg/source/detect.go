// Package source decides how an input is read and which parts of it are prose.
//
// Plain text inputs are checked whole. For Markdown inputs only paragraph text
// is checked, so code blocks, headings, tables and front matter never produce
// grammar issues.
package source

import (
	"errors"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gramlint/pkg/config"
)

// ErrBinary is returned for inputs that are not text.
var ErrBinary = errors.New("input is not text")

// Language names as reported by go-enry.
const (
	langMarkdown = "Markdown"
	langText     = "Text"
)

//nolint:gochecknoglobals // Compiled once; read-only.
var markdownHint = regexp.MustCompile("(?m)^(#{1,6}[ \t]|```|~~~|>[ \t]|\\s*[-*+][ \t]+\\[[ xX]\\])|\\[[^\\]\\n]+\\]\\([^)\\n]+\\)")

// Detect resolves the input format of one input.
//
// The file extension decides when it is known to go-enry. Inputs without a
// usable name, such as standard input, are treated as Markdown when they
// contain headings, fences, block quotes, task items or inline links.
func Detect(path string, content []byte) config.InputFormat {
	if ext := filepath.Ext(path); ext != "" {
		langs := enry.GetLanguagesByExtension(path, content, nil)
		switch {
		case slices.Contains(langs, langMarkdown):
			return config.InputFormatMarkdown
		case slices.Contains(langs, langText):
			return config.InputFormatText
		}
	}

	if markdownHint.Match(content) {
		return config.InputFormatMarkdown
	}
	return config.InputFormatText
}

// Resolve returns format unless it is auto, in which case it detects one.
func Resolve(format config.InputFormat, path string, content []byte) config.InputFormat {
	if format == config.InputFormatText || format == config.InputFormatMarkdown {
		return format
	}
	return Detect(path, content)
}

// CheckText returns ErrBinary when content looks like binary data.
func CheckText(content []byte) error {
	if enry.IsBinary(content) {
		return ErrBinary
	}
	return nil
}

// Skip reports whether a discovered path should not be checked because it
// belongs to vendored or generated third-party code.
func Skip(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}
