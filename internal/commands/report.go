package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/config"
)

// inputError marks a failure to read user input, as opposed to bad input.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return "read input: " + e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

func prompt(in Prompter, label string) (string, error) {
	s, err := in.Prompt(label)
	if err != nil {
		return "", &inputError{err: err}
	}
	return s, nil
}

// fail reports err and decides whether the menu can go on.
// Input that ran out ends the loop; everything else is recoverable.
func fail(out, errOut io.Writer, err error) Action {
	var ie *inputError
	if errors.As(err, &ie) {
		if !errors.Is(err, io.EOF) {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		fmt.Fprintln(out)
		return Quit
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return Continue
}

// info prints a confirmation followed by a blank line, unless quiet.
func info(out io.Writer, cfg *config.Config, format string, args ...any) {
	if cfg.Quiet {
		return
	}
	fmt.Fprintf(out, format+"\n\n", args...)
}
