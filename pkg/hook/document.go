package hook

// HooksKey is the settings document key that holds hook configuration.
const HooksKey = "hooks"

// CommandType is the only hook entry type chime produces.
const CommandType = "command"

// Document is the parsed content of a Claude Code settings file. It is an
// open-ended key/value map: top-level keys chime does not recognize are
// preserved verbatim across load and save.
type Document map[string]any

// Hooks returns the hooks map of the document, if present.
func (d Document) Hooks() (map[string]any, bool) {
	hooks, ok := d[HooksKey].(map[string]any)

	return hooks, ok
}

// Entry is a single command hook as persisted under an event key.
type Entry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// Group wraps the entries installed for one event. A group's entries are
// immutable once built by a platform strategy.
type Group struct {
	Hooks []Entry `json:"hooks"`
}

// NewCommandGroup builds a group holding a single command entry.
func NewCommandGroup(command string) Group {
	return Group{
		Hooks: []Entry{
			{Type: CommandType, Command: command},
		},
	}
}

// Raw converts the group to the generic map shape used inside a Document.
// Documents hold only raw values so that merged groups and keys loaded from
// disk validate and serialize identically.
func (g Group) Raw() map[string]any {
	hooks := make([]any, 0, len(g.Hooks))

	for _, entry := range g.Hooks {
		hooks = append(hooks, map[string]any{
			"type":    entry.Type,
			"command": entry.Command,
		})
	}

	return map[string]any{HooksKey: hooks}
}

// Preference captures the user's notification choices for one install run.
// It is derived from the interactive form or CLI flags and consumed once to
// produce hook groups; it is never persisted.
type Preference struct {
	// NotifyOnCompletion installs a hook for the Notification event.
	NotifyOnCompletion bool

	// CompletionSound plays a sound with the completion notification.
	CompletionSound bool

	// NotifyOnStop installs a hook for the Stop event.
	NotifyOnStop bool

	// StopSound plays a sound with the stop notification.
	StopSound bool
}

// Enabled reports whether the preference enables the given event.
func (p Preference) Enabled(event EventType) bool {
	switch event {
	case EventTypeNotification:
		return p.NotifyOnCompletion
	case EventTypeStop:
		return p.NotifyOnStop
	default:
		return false
	}
}

// Sound reports whether the preference requests a sound for the given event.
func (p Preference) Sound(event EventType) bool {
	switch event {
	case EventTypeNotification:
		return p.CompletionSound
	case EventTypeStop:
		return p.StopSound
	default:
		return false
	}
}
