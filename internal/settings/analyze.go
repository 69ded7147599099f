package settings

import (
	"strings"

	"github.com/chime-cli/chime/pkg/hook"
)

// PlatformInfo reports the active platform for Analyze. It is satisfied by
// platform.Strategy; a nil value means no platform could be resolved.
type PlatformInfo interface {
	ID() string
	SupportsSound() bool
}

// EventStatus describes the installed state of one managed event.
type EventStatus struct {
	Event     hook.EventType
	Installed bool
	Sound     bool
}

// Report summarizes the installed notification hooks alongside the current
// platform's capabilities.
type Report struct {
	Platform      string
	SupportsSound bool
	Events        []EventStatus
}

// soundMarkers are substrings indicating a sound clause inside a generated
// command. Text matching is a heuristic: the hook entry schema is consumed by
// Claude Code itself, so an entry cannot carry a structural sound flag.
var soundMarkers = []string{"sound name", "SystemSounds"}

// Analyze reports, for each managed event, whether it is installed and
// whether its command carries a sound clause. Loads the document if needed.
func (s *Store) Analyze(info PlatformInfo) (*Report, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	report := &Report{}

	if info != nil {
		report.Platform = info.ID()
		report.SupportsSound = info.SupportsSound()
	}

	hooksMap, _ := s.doc.Hooks()

	for _, event := range hook.ManagedEvents() {
		status := EventStatus{Event: event}

		if raw, ok := hooksMap[event.String()]; ok {
			status.Installed = true
			status.Sound = containsSoundMarker(raw)
		}

		report.Events = append(report.Events, status)
	}

	return report, nil
}

// containsSoundMarker scans every command string under an event value for a
// sound marker. Malformed shapes are skipped, not reported; Analyze is a
// read-only query and leaves schema complaints to validation.
func containsSoundMarker(value any) bool {
	groups, ok := value.([]any)
	if !ok {
		return false
	}

	for _, rawGroup := range groups {
		group, ok := rawGroup.(map[string]any)
		if !ok {
			continue
		}

		entries, ok := group[hook.HooksKey].([]any)
		if !ok {
			continue
		}

		for _, rawEntry := range entries {
			entry, ok := rawEntry.(map[string]any)
			if !ok {
				continue
			}

			command, _ := entry["command"].(string)

			for _, marker := range soundMarkers {
				if strings.Contains(command, marker) {
					return true
				}
			}
		}
	}

	return false
}
