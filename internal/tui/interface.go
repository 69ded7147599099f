// Package tui renders the interactive install form, with a plain stdin
// fallback for non-interactive environments.
package tui

import "github.com/chime-cli/chime/pkg/hook"

// InstallFormOptions parameterizes the install preference form.
type InstallFormOptions struct {
	// Defaults pre-selects the form answers.
	Defaults hook.Preference

	// SoundSupported shows the per-event sound questions.
	SoundSupported bool

	// SoundName is the sound played on supporting platforms, shown in the
	// question description.
	SoundName string
}

// UI collects the user's install preference.
type UI interface {
	// IsInteractive reports whether the UI renders an interactive form.
	IsInteractive() bool

	// RunInstallForm collects the install preference from the user.
	RunInstallForm(opts InstallFormOptions) (hook.Preference, error)
}
