// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"todo/internal/backend/filestore"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/service"
)

func main() {
	// Interrupts are left to the default handler: the menu blocks on stdin,
	// and every change is on disk before the next prompt.
	ctx := context.Background()

	factory := func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.Store, error) {
		return filestore.New(cfg.DataFile, logger)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
