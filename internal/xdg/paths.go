// Package xdg provides centralized path management following XDG Base Directory
// conventions. All of chime's own on-disk paths are defined here; the Claude
// Code settings document lives outside XDG and is resolved in internal/settings.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "chime"

func userHome() (string, error) {
	return os.UserHomeDir()
}

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	home, err := userHome()
	if err != nil {
		return filepath.Join("~", ".config")
	}

	return filepath.Join(home, ".config")
}

// StateHome returns $XDG_STATE_HOME or ~/.local/state.
func StateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}

	home, err := userHome()
	if err != nil {
		return filepath.Join("~", ".local", "state")
	}

	return filepath.Join(home, ".local", "state")
}

// ConfigDir returns ConfigHome()/chime.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appName)
}

// StateDir returns StateHome()/chime.
func StateDir() string {
	return filepath.Join(StateHome(), appName)
}

// ConfigFile returns ConfigDir()/config.toml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LogFile returns StateDir()/chime.log.
func LogFile() string {
	return filepath.Join(StateDir(), "chime.log")
}
