// Package logging is the console's structured logger: a small interface
// over log/slog that every component receives explicitly.
package logging

import "context"

// Logger logs key/value pairs, e.g.
//
//	log.Info(ctx, "logged in", "user", name)
//
// The context is passed to the handler, see WithRequestID.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
