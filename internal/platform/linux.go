package platform

import (
	"fmt"
	"strings"
)

const linuxID = "linux"

// LinuxStrategy renders notify-send commands for desktops implementing the
// freedesktop notification spec. Sound is not supported.
type LinuxStrategy struct {
	goos  string
	title string
}

// NewLinuxStrategy creates the Linux strategy with the default title.
func NewLinuxStrategy(goos string) *LinuxStrategy {
	return NewLinuxStrategyWithOptions(goos, DefaultNotificationTitle)
}

// NewLinuxStrategyWithOptions creates the Linux strategy with a custom title.
func NewLinuxStrategyWithOptions(goos, title string) *LinuxStrategy {
	return &LinuxStrategy{
		goos:  goos,
		title: title,
	}
}

// Supported reports whether the running OS is Linux.
func (s *LinuxStrategy) Supported() bool {
	return s.goos == linuxID
}

// ID returns the platform identifier.
func (*LinuxStrategy) ID() string {
	return linuxID
}

// SupportsSound reports that notify-send has no sound clause.
func (*LinuxStrategy) SupportsSound() bool {
	return false
}

// CreateCommand renders the complete notify-send command for the event action.
// The sound flag is accepted and ignored.
func (s *LinuxStrategy) CreateCommand(action string, _ bool) (string, error) {
	if strings.TrimSpace(action) == "" {
		return "", ErrCommandBuild
	}

	message := SanitizeShell(action)
	title := SanitizeShell(s.title)

	command := fmt.Sprintf(`notify-send -u normal "%s" "%s"`, title, message)

	if !ValidateCommand(command, linuxID) {
		return "", ErrCommandRejected
	}

	return command, nil
}

var _ Strategy = (*LinuxStrategy)(nil)
