package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/chime-cli/chime/internal/config"
	"github.com/chime-cli/chime/internal/xdg"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default chime configuration file",
	Long: `Write chime's default configuration to ~/.config/chime/config.toml so the
notification title, sound and event defaults can be edited.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(
		&initForce,
		"force",
		"f",
		false,
		"Overwrite an existing configuration file",
	)
}

func runInit(_ *cobra.Command, _ []string) error {
	path := xdg.ConfigFile()
	if configPathFlag != "" {
		path = configPathFlag
	}

	if err := config.WriteFile(path, config.Default(), initForce); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return errors.Newf("%s already exists, use --force to overwrite", path)
		}

		return err
	}

	fmt.Printf("chime: wrote default configuration to %s\n", path)

	return nil
}
