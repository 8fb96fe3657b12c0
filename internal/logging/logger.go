// Package logging defines the structured-logging interface used across the
// service, with implementations backed by log/slog and logrus.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "user created", "username", username)
type Logger interface {
	// Debug logs diagnostic details, off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	BackendSlog   = "slog"
	BackendLogrus = "logrus"
)

// New builds a JSON logger writing to out using the named backend
// ("slog" or "logrus") at the given level ("debug", "info", "warn", "error").
func New(backend, level string, out io.Writer) (Logger, error) {
	switch strings.ToLower(backend) {
	case "", BackendSlog:
		lvl, err := parseSlogLevel(level)
		if err != nil {
			return nil, err
		}
		return NewJSONSlogLogger(out, lvl), nil
	case BackendLogrus:
		lvl, err := parseLogrusLevel(level)
		if err != nil {
			return nil, err
		}
		return NewJSONLogrusLogger(out, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
