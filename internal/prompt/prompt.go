// Package prompt provides utilities for interactive user prompts.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidInput is returned when the user provides unparseable input.
var ErrInvalidInput = errors.New("invalid input")

// Prompter defines the interface for interactive prompts.
type Prompter interface {
	// Confirm prompts for a yes/no confirmation.
	Confirm(prompt string, defaultValue bool) (bool, error)
}

// StdPrompter is the standard implementation of Prompter using stdin/stdout.
type StdPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewStdPrompter creates a new StdPrompter.
func NewStdPrompter() *StdPrompter {
	return &StdPrompter{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// NewPrompter creates a new Prompter with custom reader and writer (for testing).
func NewPrompter(reader io.Reader, writer io.Writer) *StdPrompter {
	return &StdPrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Confirm prompts for a yes/no confirmation.
func (p *StdPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	if _, err := fmt.Fprintf(p.writer, "%s [%s]: ", prompt, hint); err != nil {
		return false, errors.Wrap(err, "failed to write prompt")
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "failed to read input")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultValue, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidInput, "%q", strings.TrimSpace(line))
	}
}

var _ Prompter = (*StdPrompter)(nil)
