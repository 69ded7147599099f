// Package platform builds and validates the per-OS shell commands that chime
// installs as Claude Code notification hooks.
package platform

import (
	"regexp"
	"strings"
)

var (
	// stripPattern removes characters that enable interpolation or escaping
	// in any of the target grammars.
	stripPattern = regexp.MustCompile("[`$\"'\\\\]")

	// unsafePattern removes everything outside the safe set: word characters,
	// whitespace and a small punctuation allowance.
	unsafePattern = regexp.MustCompile(`[^\w\s!?.\-]`)

	// lineBreakReplacer collapses line breaks to spaces for single-line grammars.
	lineBreakReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
)

// SanitizeShell strips interpolation characters and reduces the input to a
// conservative safe set for embedding in a generic shell command.
func SanitizeShell(s string) string {
	s = stripPattern.ReplaceAllString(s, "")

	return unsafePattern.ReplaceAllString(s, "")
}

// SanitizeAppleScript escapes embedded quotes and backslashes for an
// AppleScript string literal and collapses line breaks, since the generated
// osascript expression is single-line.
func SanitizeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return lineBreakReplacer.Replace(s)
}

// SanitizePowerShell doubles embedded single quotes, the escape convention of
// PowerShell single-quoted strings, then applies the same strip and safe-set
// reduction as SanitizeShell.
func SanitizePowerShell(s string) string {
	s = strings.ReplaceAll(s, "'", "''")

	return SanitizeShell(s)
}
