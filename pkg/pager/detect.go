package pager

import (
	"os"

	"github.com/muesli/termenv"
)

// DetectColor determines whether colored output is appropriate for stdout:
// NO_COLOR unset, stdout a terminal, and the terminal reporting a color
// profile beyond plain ASCII.
func DetectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !stdoutIsTTY() {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
