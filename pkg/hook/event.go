// Package hook provides the value types chime writes into the Claude Code
// settings document: hook entries, hook groups, and the events they attach to.
package hook

//go:generate enumer -type=EventType -trimprefix=EventType -json -text

// EventType represents a Claude Code hook event chime manages.
type EventType int

const (
	// EventTypeUnknown represents an unknown event type.
	EventTypeUnknown EventType = iota

	// EventTypeNotification is triggered when a task completes and needs attention.
	EventTypeNotification

	// EventTypeStop is triggered when a task stops.
	EventTypeStop
)

// ManagedEvents returns the events chime installs hooks for, in display order.
func ManagedEvents() []EventType {
	return []EventType{EventTypeNotification, EventTypeStop}
}

// Action returns the human-readable event label embedded in the generated
// notification command.
func (i EventType) Action() string {
	switch i {
	case EventTypeNotification:
		return "Task completed"
	case EventTypeStop:
		return "Task stopped"
	default:
		return ""
	}
}
