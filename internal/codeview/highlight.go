// Package codeview shows the construction code of a preset: highlighted
// in the terminal or encoded as a QR code for copying to a phone.
package codeview

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	DefaultStyle = "catppuccin-mocha"
	// NoStyle disables highlighting.
	NoStyle = "none"
)

// chromaStyle resolves a style name, falling back to the default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyle
	}
	return styles.Get(name)
}

// Highlight writes code to w with Swift syntax colors for a 24-bit
// terminal. With NoStyle the code is written as is.
func Highlight(w io.Writer, code, style string) error {
	if style == NoStyle {
		_, err := io.WriteString(w, code)
		return err
	}

	lexer := lexers.Get("swift")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return err
	}
	return formatters.TTY16m.Format(w, chromaStyle(style), it)
}
