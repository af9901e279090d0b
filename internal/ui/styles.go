package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)

	// Header used above the menu and task list
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)
)

// DisableStyles strips all colors, for --no-color or non-TTY output.
func DisableStyles() {
	plain := lipgloss.NewStyle()
	StyleTitle = plain
	StyleSubtle = plain
	StylePrimary = plain
	StyleSuccess = plain
	StyleError = plain
	StyleHeader = plain
}

// Success formats a confirmation line with a leading check mark.
func Success(msg string) string {
	return StyleSuccess.Render("✓ " + msg)
}

// Error formats an error line.
func Error(msg string) string {
	return StyleError.Render("Error: " + msg)
}
