package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Key() string   { return "4" }
func (c *DeleteCmd) Name() string  { return "delete" }
func (c *DeleteCmd) Label() string { return "Delete task" }

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	pos, err := selectTask(cfg, svc, in, out, "Enter task number to delete: ")
	if err != nil {
		return fail(out, errOut, err)
	}

	deleted, err := svc.Delete(ctx, pos)
	if err != nil {
		return fail(out, errOut, err)
	}

	info(out, cfg, "Deleted: %s", deleted.Title)
	return Continue
}
