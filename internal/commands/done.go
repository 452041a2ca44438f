package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the mark-as-done command.
type DoneCmd struct{}

func (c *DoneCmd) Key() string   { return "3" }
func (c *DoneCmd) Name() string  { return "done" }
func (c *DoneCmd) Label() string { return "Mark task as done" }

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	pos, err := selectTask(cfg, svc, in, out, "Enter task number to mark as done: ")
	if err != nil {
		return fail(out, errOut, err)
	}

	if _, err := svc.MarkDone(ctx, pos); err != nil {
		return fail(out, errOut, err)
	}

	info(out, cfg, "Task marked as done!%s", output.ThemeFor(out, cfg).Emoji("✅"))
	return Continue
}
