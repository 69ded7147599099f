package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// ConfigFileMode is the file mode for configuration files.
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories.
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when writing would clobber an existing file.
var ErrConfigExists = errors.New("config file already exists")

// WriteFile marshals the configuration as TOML to the given path, creating
// parent directories as needed. An existing file is only replaced when force
// is set.
func WriteFile(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Wrap(ErrConfigExists, path)
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), ConfigDirMode); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := os.WriteFile(path, data, ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}
