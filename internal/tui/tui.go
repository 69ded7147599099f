package tui

import (
	"os"

	"golang.org/x/term"
)

// New creates a UI instance based on terminal capabilities. An interactive
// terminal gets the huh form, anything else the stdin fallback.
//
//nolint:ireturn // factory intentionally returns the UI interface
func New() UI {
	if IsTerminal() {
		return NewHuhUI()
	}

	return NewFallbackUI()
}

// IsTerminal checks if stdin and stdout are connected to a terminal.
func IsTerminal() bool {
	//nolint:gosec // G115: file descriptors are small positive integers
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
