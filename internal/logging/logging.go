// Package logging builds the diagnostic logger.
//
// Logs are for debugging the tool itself. Everything the user needs to see
// is printed by the menu, never logged.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todo/internal/config"
)

// New returns a no-op logger unless cfg.Debug is set, in which case it
// returns a development logger at debug level writing to cfg.LogFile
// (or stderr when empty).
func New(cfg *config.Config) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}

	output := "stderr"
	if cfg.LogFile != "" {
		output = cfg.LogFile
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named(config.AppName), nil
}
