package http

import (
	"context"
	"log/slog"

	"github.com/example/hotel-reservations/internal/logging"
)

func defaultLogger(logger *slog.Logger) *slog.Logger {
	return logging.FromContextOr(context.Background(), logger)
}

// handlerLogger prefers the request logger installed by RequestLogger so every
// line carries the request_id.
func handlerLogger(ctx context.Context, fallback *slog.Logger, handlerName, operation string, attrs ...any) *slog.Logger {
	pairs := []any{"handler", handlerName}
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	return logging.FromContextOr(ctx, fallback).With(append(pairs, attrs...)...)
}
