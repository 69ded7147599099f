package platform

import (
	"fmt"
	"strings"
)

const (
	windowsID = "windows"

	// windowsPrefix pins the invocation shape: -NoProfile keeps user profile
	// scripts out of the notification path.
	windowsPrefix = `powershell -NoProfile -Command "`

	// balloonTimeoutMs is how long the balloon tip stays visible.
	balloonTimeoutMs = 5000
)

// WindowsStrategy renders PowerShell commands showing a NotifyIcon balloon
// tip. Sound is not supported.
type WindowsStrategy struct {
	goos  string
	title string
}

// NewWindowsStrategy creates the Windows strategy with the default title.
func NewWindowsStrategy(goos string) *WindowsStrategy {
	return NewWindowsStrategyWithOptions(goos, DefaultNotificationTitle)
}

// NewWindowsStrategyWithOptions creates the Windows strategy with a custom title.
func NewWindowsStrategyWithOptions(goos, title string) *WindowsStrategy {
	return &WindowsStrategy{
		goos:  goos,
		title: title,
	}
}

// Supported reports whether the running OS is Windows.
func (s *WindowsStrategy) Supported() bool {
	return s.goos == windowsID
}

// ID returns the platform identifier.
func (*WindowsStrategy) ID() string {
	return windowsID
}

// SupportsSound reports that the balloon tip template has no sound clause.
func (*WindowsStrategy) SupportsSound() bool {
	return false
}

// CreateCommand renders the complete powershell command for the event action.
// The sound flag is accepted and ignored.
func (s *WindowsStrategy) CreateCommand(action string, _ bool) (string, error) {
	if strings.TrimSpace(action) == "" {
		return "", ErrCommandBuild
	}

	message := SanitizePowerShell(action)
	title := SanitizePowerShell(s.title)

	// Single statement chain; every ';' is followed by '$' or '[' so the
	// injected-command check in ValidateCommand stays quiet.
	command := fmt.Sprintf(
		`%sAdd-Type -AssemblyName System.Windows.Forms,System.Drawing; `+
			`$icon = New-Object System.Windows.Forms.NotifyIcon; `+
			`$icon.Icon = [System.Drawing.SystemIcons]::Information; `+
			`$icon.Visible = $true; `+
			`$icon.ShowBalloonTip(%d, '%s', '%s', [System.Windows.Forms.ToolTipIcon]::Info)"`,
		windowsPrefix, balloonTimeoutMs, title, message,
	)

	if !ValidateCommand(command, windowsID) {
		return "", ErrCommandRejected
	}

	return command, nil
}

var _ Strategy = (*WindowsStrategy)(nil)
