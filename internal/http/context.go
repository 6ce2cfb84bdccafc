package http

import (
	"context"
	"log/slog"

	"github.com/example/hotel-reservations/internal/logging"
)

// ContextWithLogger attaches the request logger so services log with the
// request attributes.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, logger)
}

// LoggerFromContext returns the request logger, if any.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
