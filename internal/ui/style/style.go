// Package style defines the color palette and glyphs shared by the CLI's
// terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#2DD4BF")
	Slate  = lipgloss.Color("#64748B")
	Red    = lipgloss.Color("#D64541")
	Yellow = lipgloss.Color("#D97706")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
