package tui

import (
	"fmt"
	"io"
)

// Printer writes the converter's user-facing console lines.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: NewStyles(w)}
}

// Step prints a progress line.
func (p *Printer) Step(msg string) {
	p.line(p.styles.Step.Render(msg))
}

// Title prints a section heading.
func (p *Printer) Title(msg string) {
	p.line(p.styles.Title.Render(msg))
}

// Success prints a completion line.
func (p *Printer) Success(msg string) {
	p.line(p.styles.Success.Render(msg))
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	p.line(p.styles.Error.Render(msg))
}

// Item prints an indented "key = value" line.
func (p *Printer) Item(key, value string) {
	p.line(fmt.Sprintf("  %s = %s", p.styles.Key.Render(key), value))
}

// Field prints an indented "label: value" line.
func (p *Printer) Field(label, value string) {
	p.line(fmt.Sprintf("  %s: %s", p.styles.Key.Render(label), value))
}

// Plain prints msg unstyled.
func (p *Printer) Plain(msg string) {
	p.line(msg)
}

// Subtle prints a de-emphasized line.
func (p *Printer) Subtle(msg string) {
	p.line(p.styles.Subtle.Render(msg))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.line("")
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}
