package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.

// Semantic colors for machine state indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Unicode symbols for status indicators.
const (
	SymbolFail    = "✗"
	SymbolPending = "○"
	SymbolActive  = "●"
)

// DisableColors switches all lipgloss rendering to monochrome output,
// for the --no-color flag.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
