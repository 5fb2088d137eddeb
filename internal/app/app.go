package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/AreyMadhav/PakSeek/internal/config"
	"github.com/AreyMadhav/PakSeek/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Logs go to errW; command output (exports, reports) goes to
// outW so piping an export stays clean.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It merges the
// optional configuration file into the flag-provided config, applies
// defaults, and returns a fully initialized App with its own isolated
// logger.
func NewApp(outW, errW io.Writer, cfg Config) (*App, error) {
	// Bootstrap logger for the config load; the file may change the
	// level and format of the final one.
	bootCtx := ctxlog.WithLogger(context.Background(), newLogger(cfg.LogLevel, cfg.LogFormat, errW))

	file, err := config.Load(bootCtx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.merge(file)
	cfg.applyDefaults()

	validated, err := NewConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger := newLogger(validated.LogLevel, validated.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: validated,
	}, nil
}

// Config returns the merged, validated configuration.
func (a *App) Config() *Config {
	return a.config
}
