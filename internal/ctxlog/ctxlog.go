// Package ctxlog carries a slog.Logger through context.Context so deep
// call sites log through the app-configured handler.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to prevent collisions with context keys elsewhere.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. Contexts that never
// passed through WithLogger get the process default logger, so callers can
// log unconditionally.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
