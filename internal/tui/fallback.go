package tui

import (
	"github.com/chime-cli/chime/internal/prompt"
	"github.com/chime-cli/chime/pkg/hook"
)

// FallbackUI implements UI using simple stdin/stdout prompts. It is used
// when the terminal is not interactive (CI, piped input, etc.).
type FallbackUI struct {
	prompter prompt.Prompter
}

// NewFallbackUI creates a new FallbackUI instance.
func NewFallbackUI() *FallbackUI {
	return &FallbackUI{
		prompter: prompt.NewStdPrompter(),
	}
}

// NewFallbackUIWithPrompter creates a FallbackUI with a custom prompter.
func NewFallbackUIWithPrompter(p prompt.Prompter) *FallbackUI {
	return &FallbackUI{
		prompter: p,
	}
}

// IsInteractive returns false as FallbackUI is for non-interactive terminals.
func (*FallbackUI) IsInteractive() bool {
	return false
}

// RunInstallForm collects the install preference with line prompts.
func (f *FallbackUI) RunInstallForm(opts InstallFormOptions) (hook.Preference, error) {
	pref := opts.Defaults

	var err error

	pref.NotifyOnCompletion, err = f.prompter.Confirm(
		"Notify when a task completes?", opts.Defaults.NotifyOnCompletion)
	if err != nil {
		return hook.Preference{}, err
	}

	if opts.SoundSupported && pref.NotifyOnCompletion {
		pref.CompletionSound, err = f.prompter.Confirm(
			"Play a sound with the completion notification?", opts.Defaults.CompletionSound)
		if err != nil {
			return hook.Preference{}, err
		}
	} else {
		pref.CompletionSound = false
	}

	pref.NotifyOnStop, err = f.prompter.Confirm(
		"Notify when a task stops?", opts.Defaults.NotifyOnStop)
	if err != nil {
		return hook.Preference{}, err
	}

	if opts.SoundSupported && pref.NotifyOnStop {
		pref.StopSound, err = f.prompter.Confirm(
			"Play a sound with the stop notification?", opts.Defaults.StopSound)
		if err != nil {
			return hook.Preference{}, err
		}
	} else {
		pref.StopSound = false
	}

	return pref, nil
}

var _ UI = (*FallbackUI)(nil)
