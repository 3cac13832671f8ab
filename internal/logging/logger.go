// Package logging is the client's logging surface. The façade and the
// controller log through the Logger interface; the slog adapter in this
// package is the only implementation the binary wires up.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs, e.g.
//
//	log.Warn(ctx, "record list refresh failed", "error", err)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)

	// Warn records degraded but survivable conditions, like a read that
	// fell back to cached data.
	Warn(ctx context.Context, msg string, args ...any)

	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
