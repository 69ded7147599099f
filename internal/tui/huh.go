package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/chime-cli/chime/pkg/hook"
)

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct{}

// NewHuhUI creates a new HuhUI instance.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// IsInteractive returns true as HuhUI is for interactive terminals.
func (*HuhUI) IsInteractive() bool {
	return true
}

// RunInstallForm collects the install preference with a huh form.
func (*HuhUI) RunInstallForm(opts InstallFormOptions) (hook.Preference, error) {
	pref := opts.Defaults

	form := buildInstallForm(opts, &pref)

	if err := form.Run(); err != nil {
		return hook.Preference{}, err
	}

	if !opts.SoundSupported {
		pref.CompletionSound = false
		pref.StopSound = false
	}

	return pref, nil
}

// buildInstallForm creates the huh form for the install preference.
func buildInstallForm(opts InstallFormOptions, pref *hook.Preference) *huh.Form {
	fields := []huh.Field{
		huh.NewConfirm().
			Title("Notify when a task completes").
			Description("Shows a desktop notification for the Notification event.").
			Affirmative("Yes").
			Negative("No").
			Value(&pref.NotifyOnCompletion),
	}

	if opts.SoundSupported {
		fields = append(fields, huh.NewConfirm().
			Title("Play a sound with the completion notification").
			Description(fmt.Sprintf("Uses the %q system sound.", opts.SoundName)).
			Affirmative("Yes").
			Negative("No").
			Value(&pref.CompletionSound))
	}

	fields = append(fields, huh.NewConfirm().
		Title("Notify when a task stops").
		Description("Shows a desktop notification for the Stop event.").
		Affirmative("Yes").
		Negative("No").
		Value(&pref.NotifyOnStop))

	if opts.SoundSupported {
		fields = append(fields, huh.NewConfirm().
			Title("Play a sound with the stop notification").
			Description(fmt.Sprintf("Uses the %q system sound.", opts.SoundName)).
			Affirmative("Yes").
			Negative("No").
			Value(&pref.StopSound))
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

var _ UI = (*HuhUI)(nil)
