package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/chime-cli/chime/internal/xdg"
)

// ErrInvalidTOML is returned when the config file cannot be parsed.
var ErrInvalidTOML = errors.New("invalid TOML")

// envPrefix is the prefix for configuration environment variables.
const envPrefix = "CHIME_"

// Loader loads configuration from all sources with precedence, highest last:
// defaults, global TOML file, CHIME_* environment variables.
type Loader struct {
	k          *koanf.Koanf
	configPath string
}

// NewLoader creates a Loader reading the default config file location.
func NewLoader() *Loader {
	return NewLoaderWithPath(xdg.ConfigFile())
}

// NewLoaderWithPath creates a Loader reading an explicit config file (for
// tests and the --config flag).
func NewLoaderWithPath(path string) *Loader {
	return &Loader{
		k:          koanf.New("."),
		configPath: path,
	}
}

// Load merges all sources and unmarshals the result.
func (l *Loader) Load() (*Config, error) {
	// Fresh koanf instance so Load can be called repeatedly.
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadTOMLFile(l.configPath); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "failed to load config file")
	}

	envOpt := env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var cfg Config
	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// ConfigPath returns the config file path the loader reads.
func (l *Loader) ConfigPath() string {
	return l.configPath
}

// loadTOMLFile loads one TOML file into the koanf state.
func (l *Loader) loadTOMLFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(ErrInvalidTOML, "%s: %v", path, err)
	}

	return nil
}

// envTransform transforms environment variable names to config paths.
// CHIME_NOTIFICATION_TITLE -> notification.title
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}

// defaultsToMap flattens the built-in defaults for the confmap provider.
func defaultsToMap() map[string]any {
	defaults := Default()

	return map[string]any{
		"notification.title": defaults.Notification.Title,
		"notification.sound": defaults.Notification.Sound,
		"events.completion":  defaults.Events.Completion,
		"events.stop":        defaults.Events.Stop,
		"events.sound":       defaults.Events.Sound,
		"debug":              defaults.Debug,
		"trace":              defaults.Trace,
	}
}
