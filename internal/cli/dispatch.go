// Package cli wires flags, configuration, storage and the menu loop together.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// StoreFactory creates the task Store from config.
// Used to inject the backend during dispatch.
type StoreFactory func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.Store, error)

// Dispatcher handles command-line parsing and starts the menu.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// exitError carries an exit code out of cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// options holds raw flag values. Only flags the user actually set
// override the config file.
type options struct {
	configDir string
	dataFile  string
	quiet     bool
	noColor   bool
	ascii     bool
	debug     bool
}

// Run parses arguments, runs the menu until the user exits, and returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := d.newRootCmd(in, out, errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitcode.Success
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintf(errOut, "error: %v\n", ee.err)
		return ee.code
	}
	// Flag and argument errors from cobra.
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

func (d *Dispatcher) newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Track tasks from an interactive menu",
		Long: strings.TrimSpace(`
Keep a list of tasks in a local file and manage it from a numbered menu:
view, add, mark as done, delete, edit, toggle, and clear completed tasks.

Every change is written to the task file immediately.`),
		Version:       commands.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.runMenu(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config", "", "Override config directory")
	flags.StringVarP(&opts.dataFile, "file", "f", "", "Task file (.json, .yaml or .yml; default tasks.json)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress confirmation messages")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.ascii, "ascii", false, "Use plain x markers instead of emoji")
	flags.BoolVar(&opts.debug, "debug", false, "Print debug logs to stderr (or log_file)")

	return cmd
}

func (d *Dispatcher) runMenu(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return &exitError{code: exitcode.UserError, err: err}
	}
	applyFlags(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitcode.UserError, err: err}
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return &exitError{code: exitcode.UserError, err: err}
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("starting", zap.String("data_file", cfg.DataFile), zap.String("config_dir", cfg.Dir))

	store, err := d.factory(ctx, cfg, logger)
	if err != nil {
		return &exitError{code: exitcode.StorageError, err: err}
	}

	svc, err := service.New(ctx, store, logger)
	if err != nil {
		if errors.Is(err, service.ErrCorruptData) {
			// Starting empty would overwrite the user's tasks on the first save.
			return &exitError{
				code: exitcode.DataError,
				err:  fmt.Errorf("%w\nrefusing to start; fix or move the file and try again", err),
			}
		}
		return &exitError{code: exitcode.StorageError, err: err}
	}

	menu := NewMenu(d.registry, cfg, svc, logger)
	if err := menu.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
		return &exitError{code: exitcode.StorageError, err: err}
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.DataFile = opts.dataFile
	}
	if flags.Changed("quiet") {
		cfg.Quiet = opts.quiet
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if flags.Changed("ascii") {
		if opts.ascii {
			cfg.Markers = config.MarkersASCII
		} else {
			cfg.Markers = config.MarkersEmoji
		}
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
}
