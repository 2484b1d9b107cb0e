// Package style holds the lipgloss styles for the CLI's own chrome:
// warnings, errors and informational messages on the diagnostic stream.
//
// Tree output never goes through lipgloss; the rendering engine emits raw
// validated SGR sequences so stripped output is byte-exact.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Warning formats a diagnostic warning line.
func Warning(msg string) string {
	return WarningStyle.Render("WARNING:") + " " + msg
}

// Error formats an error line.
func Error(msg string) string {
	return ErrorStyle.Render("Error:") + " " + msg
}
