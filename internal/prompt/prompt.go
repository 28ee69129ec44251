package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled means the user aborted a prompt.
var ErrCancelled = errors.New("operation cancelled")

// Prompter asks the user for text or a yes/no decision.
type Prompter interface {
	Text(message, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// Terminal prompts on a line-oriented reader/writer pair. End of input
// cancels the prompt.
type Terminal struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewTerminal returns a Terminal reading answers from r and writing
// questions to w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{reader: bufio.NewReader(r), w: w}
}

// Text asks for a line of text; an empty answer selects defaultValue.
func (t *Terminal) Text(message, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(t.w, "%s (%s): ", message, defaultValue)
	} else {
		fmt.Fprintf(t.w, "%s: ", message)
	}

	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question until it gets a recognisable answer.
func (t *Terminal) Confirm(message string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(t.w, "%s [%s]: ", message, hint)

		line, err := t.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return defaultValue, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(t.w, "Please answer yes or no.\n")
	}
}

// readLine returns the next trimmed line. A final line without a newline
// still counts; bare end of input is a cancellation.
func (t *Terminal) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.w)
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
