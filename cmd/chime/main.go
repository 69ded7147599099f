// Package main provides the CLI entry point for chime.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/chime-cli/chime/internal/config"
	"github.com/chime-cli/chime/internal/platform"
	"github.com/chime-cli/chime/internal/settings"
	"github.com/chime-cli/chime/internal/xdg"
	"github.com/chime-cli/chime/pkg/logger"
)

var (
	debugMode        bool
	traceMode        bool
	configPathFlag   string
	settingsPathFlag string
)

var rootCmd = &cobra.Command{
	Use:   "chime",
	Short: "Desktop notifications for Claude Code",
	Long: `chime configures OS-level desktop notifications for Claude Code by
installing command hooks into the Claude settings file. Hooks are generated
per platform: osascript on macOS, notify-send on Linux, powershell on Windows.`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().StringVarP(
		&configPathFlag,
		"config",
		"c",
		"",
		"Path to chime configuration file (default: ~/.config/chime/config.toml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&settingsPathFlag,
		"settings",
		"",
		"Path to the Claude settings file (default: ~/.claude/settings.json)",
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAppConfig loads chime's own configuration, honoring --config.
func loadAppConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if configPathFlag != "" {
		loader = config.NewLoaderWithPath(configPathFlag)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	return cfg, nil
}

// newLogger opens the file logger. Logging is ancillary here, so a logger
// that cannot be opened degrades to a no-op instead of failing the command.
//
//nolint:ireturn // logger.Logger is the package-wide logging seam
func newLogger(cfg *config.Config) logger.Logger {
	log, err := logger.NewFileLogger(
		xdg.LogFile(),
		debugMode || cfg.Debug,
		traceMode || cfg.Trace,
	)
	if err != nil {
		return logger.NewNoOpLogger()
	}

	return log
}

// newStore creates the settings store, honoring --settings.
func newStore(log logger.Logger) (*settings.Store, error) {
	path := settingsPathFlag

	if path == "" {
		var err error

		path, err = settings.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	return settings.NewStore(path, log), nil
}

// newRegistry builds the platform registry with appearance options applied.
func newRegistry(cfg *config.Config) *platform.Registry {
	goos := runtime.GOOS
	title := cfg.Notification.Title
	sound := cfg.Notification.Sound

	return platform.NewRegistry(
		platform.NewDarwinStrategyWithOptions(goos, title, sound),
		platform.NewLinuxStrategyWithOptions(goos, title),
		platform.NewWindowsStrategyWithOptions(goos, title),
	)
}
