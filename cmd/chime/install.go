package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/chime-cli/chime/internal/tui"
	"github.com/chime-cli/chime/pkg/hook"
)

var (
	installNoInput    bool
	installCompletion bool
	installStop       bool
	installSound      bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install notification hooks into the Claude settings file",
	Long: `Install desktop notification hooks for the Notification and Stop events.

By default an interactive form asks which events to enable and whether to
play a sound. Use --no-input with the event flags to skip the form.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().BoolVar(
		&installNoInput,
		"no-input",
		false,
		"Skip the interactive form and use flags and config defaults",
	)
	installCmd.Flags().BoolVar(
		&installCompletion,
		"completion",
		true,
		"Notify when a task completes",
	)
	installCmd.Flags().BoolVar(
		&installStop,
		"stop",
		true,
		"Notify when a task stops",
	)
	installCmd.Flags().BoolVar(
		&installSound,
		"sound",
		true,
		"Play a sound where the platform supports one",
	)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	store, err := newStore(log)
	if err != nil {
		return err
	}

	strategy, err := newRegistry(cfg).Resolve()
	if err != nil {
		return err
	}

	defaults := hook.Preference{
		NotifyOnCompletion: cfg.Events.Completion,
		CompletionSound:    cfg.Events.Sound && strategy.SupportsSound(),
		NotifyOnStop:       cfg.Events.Stop,
		StopSound:          cfg.Events.Sound && strategy.SupportsSound(),
	}

	if cmd.Flags().Changed("completion") {
		defaults.NotifyOnCompletion = installCompletion
	}

	if cmd.Flags().Changed("stop") {
		defaults.NotifyOnStop = installStop
	}

	if cmd.Flags().Changed("sound") {
		withSound := installSound && strategy.SupportsSound()
		defaults.CompletionSound = withSound
		defaults.StopSound = withSound
	}

	pref := defaults

	if !installNoInput {
		pref, err = tui.New().RunInstallForm(tui.InstallFormOptions{
			Defaults:       defaults,
			SoundSupported: strategy.SupportsSound(),
			SoundName:      cfg.Notification.Sound,
		})
		if err != nil {
			return errors.Wrap(err, "install form failed")
		}
	}

	log.Info("installing hooks",
		"platform", strategy.ID(),
		"completion", pref.NotifyOnCompletion,
		"stop", pref.NotifyOnStop,
	)

	groups := make(map[string][]hook.Group)

	var removals []string

	for _, event := range hook.ManagedEvents() {
		if !pref.Enabled(event) {
			removals = append(removals, event.String())

			continue
		}

		command, buildErr := strategy.CreateCommand(event.Action(), pref.Sound(event))
		if buildErr != nil {
			return errors.Wrapf(buildErr, "failed to build %s command", event)
		}

		groups[event.String()] = []hook.Group{hook.NewCommandGroup(command)}
	}

	if err := store.MergeHooks(groups); err != nil {
		return errors.Wrap(err, "failed to merge hooks")
	}

	if len(removals) > 0 {
		if err := store.RemoveHooks(removals...); err != nil {
			return errors.Wrap(err, "failed to remove disabled hooks")
		}
	}

	if err := store.Save(); err != nil {
		return errors.Wrap(err, "failed to save settings")
	}

	printInstallSummary(store.Path(), strategy.ID(), pref)

	return nil
}

// printInstallSummary reports what was installed and where.
func printInstallSummary(path, platformID string, pref hook.Preference) {
	header := lipgloss.NewStyle().Bold(true)

	fmt.Println(header.Render("chime: notification hooks updated"))
	fmt.Printf("  settings: %s\n", path)
	fmt.Printf("  platform: %s\n", platformID)

	for _, event := range hook.ManagedEvents() {
		switch {
		case pref.Enabled(event) && pref.Sound(event):
			fmt.Printf("  %s: on (with sound)\n", event)
		case pref.Enabled(event):
			fmt.Printf("  %s: on\n", event)
		default:
			fmt.Printf("  %s: off\n", event)
		}
	}
}
