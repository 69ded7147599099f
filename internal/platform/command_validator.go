package platform

import (
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// chainPattern matches command chaining tokens immediately followed by an
// identifier-like token, the shape of an injected second command.
var chainPattern = regexp.MustCompile(`(\|\||&&|[;|])\s*[A-Za-z_][\w\-]*`)

// darwinDenied are AppleScript constructs that escalate from showing a
// notification to driving the system.
var darwinDenied = []string{
	"do shell script",
	"tell application",
	"system events",
	"keystroke",
}

// windowsDeniedPattern matches PowerShell tokens associated with code
// execution, network download, process spawning and credential access.
var windowsDeniedPattern = regexp.MustCompile(
	`(?i)\b(iex|invoke-expression|invoke-webrequest|invoke-restmethod|` +
		`invoke-command|downloadstring|start-process|get-credential)\b`,
)

// newObjectPattern captures each New-Object target so instantiation can be
// limited to the notification icon type.
var newObjectPattern = regexp.MustCompile(`(?i)new-object\s+([\w.]+)`)

// notifyIconType is the only type the generated Windows command may instantiate.
const notifyIconType = "System.Windows.Forms.NotifyIcon"

// ValidateCommand re-checks a fully built command string for the given
// platform as an independent safety net. The strategy that produced the
// string must not be the only thing guaranteeing its safety.
func ValidateCommand(command, platformID string) bool {
	if chainPattern.MatchString(command) {
		return false
	}

	switch platformID {
	case darwinID:
		return validateDarwinCommand(command)
	case linuxID:
		return validateShellCommand(command)
	case windowsID:
		return validateWindowsCommand(command)
	default:
		return false
	}
}

// validateDarwinCommand checks the osascript wrapping and rejects embedded
// AppleScript system-control keywords.
func validateDarwinCommand(command string) bool {
	if !strings.HasPrefix(command, darwinPrefix) || !strings.HasSuffix(command, `"`) {
		return false
	}

	lower := strings.ToLower(command)

	for _, denied := range darwinDenied {
		if strings.Contains(lower, denied) {
			return false
		}
	}

	return true
}

// validateShellCommand parses the command as shell syntax and rejects
// anything beyond a single simple command: pipelines, lists, subshells and
// command substitutions all fail.
func validateShellCommand(command string) bool {
	parser := syntax.NewParser()

	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return false
	}

	safe := true

	syntax.Walk(file, func(node syntax.Node) bool {
		switch node.(type) {
		case *syntax.BinaryCmd, *syntax.Subshell, *syntax.CmdSubst, *syntax.ProcSubst:
			safe = false
		}

		return safe
	})

	return safe
}

// validateWindowsCommand checks the powershell wrapping, the keyword denylist
// and the New-Object whitelist.
func validateWindowsCommand(command string) bool {
	if !strings.HasPrefix(command, windowsPrefix) || !strings.HasSuffix(command, `"`) {
		return false
	}

	if windowsDeniedPattern.MatchString(command) {
		return false
	}

	if strings.Contains(command, "$env:") {
		return false
	}

	for _, match := range newObjectPattern.FindAllStringSubmatch(command, -1) {
		if !strings.EqualFold(match[1], notifyIconType) {
			return false
		}
	}

	return true
}
