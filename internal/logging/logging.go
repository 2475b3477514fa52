// Package logging builds the zap logger shared by the CLI and the bot.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr with the given encoding ("console"
// or "json"). Debug lowers the level from info to debug.
func New(encoding string, debug bool) (*zap.Logger, error) {
	if encoding == "" {
		encoding = "console"
	}
	if encoding != "console" && encoding != "json" {
		return nil, fmt.Errorf("unknown log format: %s", encoding)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = encoding
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	if encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return logger, nil
}
