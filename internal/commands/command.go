// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"errors"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

// Action tells the menu loop what to do after a command returns.
type Action int

const (
	// Continue returns to the menu.
	Continue Action = iota

	// Quit ends the menu loop.
	Quit
)

// ErrUnrecognizedChoice is reported by the menu for input that matches no command.
var ErrUnrecognizedChoice = errors.New("invalid option")

// Prompter reads one line of user input after printing label.
// It returns io.EOF once input is exhausted.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the menu key the user types ("1" through "8").
	Key() string

	// Name returns a short identifier used in logs.
	Name() string

	// Label returns the menu text.
	Label() string

	// Run executes the command.
	// svc holds the live task list; in supplies any further input the
	// command needs. User-facing failures are printed to errOut and never
	// end the loop; only Exit and exhausted input return Quit.
	Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action
}
