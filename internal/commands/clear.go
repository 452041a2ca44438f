package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear-completed command.
type ClearCmd struct{}

func (c *ClearCmd) Key() string   { return "7" }
func (c *ClearCmd) Name() string  { return "clear" }
func (c *ClearCmd) Label() string { return "Clear completed tasks" }

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	removed, err := svc.ClearCompleted(ctx)
	if err != nil {
		return fail(out, errOut, err)
	}

	if removed == 0 {
		info(out, cfg, "No completed tasks to clear.")
		return Continue
	}
	info(out, cfg, "Cleared %d completed task(s).", removed)
	return Continue
}
