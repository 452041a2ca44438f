package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

// Menu is the interactive loop: print the menu, read a choice, run the
// matching command, repeat. It has a single state, awaiting a choice.
type Menu struct {
	registry *commands.Registry
	cfg      *config.Config
	svc      *service.Service
	logger   *zap.Logger
}

// NewMenu creates a menu over svc using the commands in registry.
func NewMenu(registry *commands.Registry, cfg *config.Config, svc *service.Service, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		registry: registry,
		cfg:      cfg,
		svc:      svc,
		logger:   logger,
	}
}

// Run loops until a command returns commands.Quit or input ends.
// Unknown choices are reported and the loop continues.
func (m *Menu) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	prompter := NewLinePrompter(in, out)
	theme := output.ThemeFor(out, m.cfg)
	entries := m.entries()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		output.FormatMenu(out, theme, entries)
		choice, err := prompter.Prompt("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				m.logger.Debug("input closed")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		choice = strings.TrimSpace(choice)
		cmd, ok := m.registry.Find(choice)
		if !ok {
			fmt.Fprintf(errOut, "error: %v: %q\n", commands.ErrUnrecognizedChoice, choice)
			continue
		}

		m.logger.Debug("running command", zap.String("command", cmd.Name()))
		if cmd.Run(ctx, m.cfg, m.svc, prompter, out, errOut) == commands.Quit {
			m.logger.Debug("menu finished", zap.Int("tasks", m.svc.Len()))
			return nil
		}
	}
}

func (m *Menu) entries() []output.MenuEntry {
	cmds := m.registry.All()
	entries := make([]output.MenuEntry, len(cmds))
	for i, cmd := range cmds {
		entries[i] = output.MenuEntry{Key: cmd.Key(), Label: cmd.Label()}
	}
	return entries
}
