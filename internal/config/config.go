// Package config loads chime's own configuration: notification appearance
// and per-event defaults. This is distinct from the Claude Code settings
// document, which is owned by internal/settings.
package config

// Config is the root configuration structure.
type Config struct {
	// Notification controls the appearance of generated notifications.
	Notification NotificationConfig `json:"notification,omitempty" koanf:"notification" toml:"notification"`

	// Events selects which hook events are enabled by default.
	Events EventsConfig `json:"events,omitempty" koanf:"events" toml:"events"`

	// Debug enables info-level logging.
	Debug bool `json:"debug,omitempty" koanf:"debug" toml:"debug,omitempty"`

	// Trace enables debug-level logging.
	Trace bool `json:"trace,omitempty" koanf:"trace" toml:"trace,omitempty"`
}

// NotificationConfig controls the generated notification commands.
type NotificationConfig struct {
	// Title is the notification title shown by every generated command.
	Title string `json:"title,omitempty" koanf:"title" toml:"title"`

	// Sound is the system sound name used on platforms that support sound.
	Sound string `json:"sound,omitempty" koanf:"sound" toml:"sound"`
}

// EventsConfig holds the default install preference per event.
type EventsConfig struct {
	// Completion installs the task-completed notification hook.
	Completion bool `json:"completion" koanf:"completion" toml:"completion"`

	// Stop installs the task-stopped notification hook.
	Stop bool `json:"stop" koanf:"stop" toml:"stop"`

	// Sound requests a notification sound where the platform supports one.
	Sound bool `json:"sound" koanf:"sound" toml:"sound"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Notification: NotificationConfig{
			Title: "Claude Code",
			Sound: "Glass",
		},
		Events: EventsConfig{
			Completion: true,
			Stop:       true,
			Sound:      true,
		},
	}
}
