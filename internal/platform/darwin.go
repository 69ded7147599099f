package platform

import (
	"fmt"
	"strings"
)

const (
	darwinID = "darwin"

	// darwinPrefix is the fixed invocation prefix of every generated macOS
	// command; the command validator requires it.
	darwinPrefix = `osascript -e "`

	// DefaultNotificationTitle is the title shown on generated notifications.
	DefaultNotificationTitle = "Claude Code"

	// DefaultSoundName is the macOS system sound used when sound is enabled.
	DefaultSoundName = "Glass"
)

// DarwinStrategy renders osascript "display notification" commands. It is the
// only built-in strategy that supports a notification sound.
type DarwinStrategy struct {
	goos  string
	title string
	sound string
}

// NewDarwinStrategy creates the macOS strategy with default title and sound.
func NewDarwinStrategy(goos string) *DarwinStrategy {
	return NewDarwinStrategyWithOptions(goos, DefaultNotificationTitle, DefaultSoundName)
}

// NewDarwinStrategyWithOptions creates the macOS strategy with a custom
// notification title and sound name.
func NewDarwinStrategyWithOptions(goos, title, sound string) *DarwinStrategy {
	return &DarwinStrategy{
		goos:  goos,
		title: title,
		sound: sound,
	}
}

// Supported reports whether the running OS is macOS.
func (s *DarwinStrategy) Supported() bool {
	return s.goos == darwinID
}

// ID returns the platform identifier.
func (*DarwinStrategy) ID() string {
	return darwinID
}

// SupportsSound reports that macOS notifications can play a sound.
func (*DarwinStrategy) SupportsSound() bool {
	return true
}

// CreateCommand renders the complete osascript command for the event action.
func (s *DarwinStrategy) CreateCommand(action string, withSound bool) (string, error) {
	if strings.TrimSpace(action) == "" {
		return "", ErrCommandBuild
	}

	message := SanitizeAppleScript(action)
	title := SanitizeAppleScript(s.title)

	soundClause := ""
	if withSound {
		soundClause = fmt.Sprintf(` sound name \"%s\"`, SanitizeAppleScript(s.sound))
	}

	command := fmt.Sprintf(
		`%sdisplay notification \"%s\" with title \"%s\"%s"`,
		darwinPrefix, message, title, soundClause,
	)

	if !ValidateCommand(command, darwinID) {
		return "", ErrCommandRejected
	}

	return command, nil
}

var _ Strategy = (*DarwinStrategy)(nil)
