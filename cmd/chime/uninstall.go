package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/chime-cli/chime/pkg/hook"
)

var uninstallAll bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove notification hooks from the Claude settings file",
	Long: `Remove the Notification and Stop hooks chime manages. Other hooks and
settings are left untouched. With --all, the entire hooks section is removed.`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)

	uninstallCmd.Flags().BoolVar(
		&uninstallAll,
		"all",
		false,
		"Remove the entire hooks section, not just chime's events",
	)
}

func runUninstall(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	store, err := newStore(log)
	if err != nil {
		return err
	}

	if uninstallAll {
		if err := store.RemoveAllHooks(); err != nil {
			return errors.Wrap(err, "failed to remove hooks")
		}
	} else {
		names := make([]string, 0, len(hook.ManagedEvents()))
		for _, event := range hook.ManagedEvents() {
			names = append(names, event.String())
		}

		if err := store.RemoveHooks(names...); err != nil {
			return errors.Wrap(err, "failed to remove hooks")
		}
	}

	if err := store.Save(); err != nil {
		return errors.Wrap(err, "failed to save settings")
	}

	fmt.Printf("chime: notification hooks removed from %s\n", store.Path())

	return nil
}
