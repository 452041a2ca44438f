package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Key() string   { return "2" }
func (c *AddCmd) Name() string  { return "add" }
func (c *AddCmd) Label() string { return "Add task" }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	title, err := prompt(in, "Enter new task: ")
	if err != nil {
		return fail(out, errOut, err)
	}

	if _, err := svc.Add(ctx, title); err != nil {
		return fail(out, errOut, err)
	}

	info(out, cfg, "Task added successfully!")
	return Continue
}
