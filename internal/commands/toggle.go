package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Key() string   { return "6" }
func (c *ToggleCmd) Name() string  { return "toggle" }
func (c *ToggleCmd) Label() string { return "Toggle done/undone" }

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	pos, err := selectTask(cfg, svc, in, out, "Enter task number to toggle done/undone: ")
	if err != nil {
		return fail(out, errOut, err)
	}

	task, err := svc.Toggle(ctx, pos)
	if err != nil {
		return fail(out, errOut, err)
	}

	info(out, cfg, "Task is now %s.", output.ThemeFor(out, cfg).State(task.Done))
	return Continue
}
