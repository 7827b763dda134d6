package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the console styles bound to one output renderer.
type Styles struct {
	// Title styling
	Title lipgloss.Style

	// Progress step of the project parser
	Step lipgloss.Style

	// Key of a key/value line (settings, summary)
	Key lipgloss.Style

	// Success styling
	Success lipgloss.Style

	// Error styling
	Error lipgloss.Style

	// Subtle text styling
	Subtle lipgloss.Style
}

// NewStyles creates the styles for w. Color is only emitted when w is a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		Step: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		Key: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),
		Subtle: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
	}
}
