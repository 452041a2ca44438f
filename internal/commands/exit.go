package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the exit command.
// Every change is already saved, so there is nothing left to flush.
type ExitCmd struct{}

func (c *ExitCmd) Key() string   { return "8" }
func (c *ExitCmd) Name() string  { return "exit" }
func (c *ExitCmd) Label() string { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	if !cfg.Quiet {
		fmt.Fprintf(out, "Goodbye!%s\n", output.ThemeFor(out, cfg).Emoji("👋"))
	}
	return Quit
}
