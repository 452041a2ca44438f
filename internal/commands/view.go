package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the view command.
type ViewCmd struct{}

func (c *ViewCmd) Key() string   { return "1" }
func (c *ViewCmd) Name() string  { return "view" }
func (c *ViewCmd) Label() string { return "View tasks" }

func (c *ViewCmd) Run(ctx context.Context, cfg *config.Config, svc *service.Service, in Prompter, out, errOut io.Writer) Action {
	output.FormatTaskList(out, output.ThemeFor(out, cfg), svc.Tasks())
	return Continue
}
