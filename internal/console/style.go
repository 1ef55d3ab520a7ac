// Package console renders styled terminal output: banners, messages and
// tables.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// StylePrinter defines an interface for printing styled text
type StylePrinter interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})
	Sprint(a ...interface{}) string
}

// Style represents a named color style
type Style struct {
	printer *color.Color
	writer  io.Writer
}

var _ StylePrinter = (*Style)(nil)

// NewStyle creates a new style with foreground, background and attributes
func NewStyle(fg, bg color.Attribute, attrs ...color.Attribute) *Style {
	c := color.New(fg)

	if bg != 0 {
		c.Add(bg)
	}

	if len(attrs) > 0 {
		c.Add(attrs...)
	}

	return &Style{printer: c}
}

// WithWriter sets a custom writer for the style
func (s *Style) WithWriter(w io.Writer) *Style {
	s.writer = w
	return s
}

func (s *Style) out() io.Writer {
	if s.writer == nil {
		return color.Output
	}
	return s.writer
}

// Print prints text using the style
func (s *Style) Print(a ...interface{}) {
	fmt.Fprint(s.out(), s.printer.Sprint(a...))
}

// Printf prints formatted text using the style
func (s *Style) Printf(format string, a ...interface{}) {
	fmt.Fprint(s.out(), s.printer.Sprintf(format, a...))
}

// Println prints text using the style followed by a newline
func (s *Style) Println(a ...interface{}) {
	fmt.Fprintln(s.out(), s.printer.Sprint(a...))
}

// Sprint returns styled text as string
func (s *Style) Sprint(a ...interface{}) string {
	return s.printer.Sprint(a...)
}
