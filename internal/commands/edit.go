package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
// The task number is checked before the new title is asked for.
type EditCmd struct{}

func (c *EditCmd) Key() string   { return "5" }
func (c *EditCmd) Name() string  { return "edit" }
func (c *EditCmd) Label() string { return "Edit task" }

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	pos, err := selectTask(cfg, svc, in, out, "Enter task number to edit: ")
	if err != nil {
		return fail(out, errOut, err)
	}

	title, err := prompt(in, "Enter new title: ")
	if err != nil {
		return fail(out, errOut, err)
	}

	if _, err := svc.Edit(ctx, pos, title); err != nil {
		return fail(out, errOut, err)
	}

	info(out, cfg, "Task updated!")
	return Continue
}
