package logging

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus entry to Logger. Key–value args become fields;
// a trailing key without a value is stored under "!BADKEY" like slog does.
type LogrusLogger struct {
	e *logrus.Entry
}

func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{e: logrus.NewEntry(l)}
}

// NewJSONLogrusLogger returns a LogrusLogger using the timestamp/severity/message
// JSON layout.
func NewJSONLogrusLogger(out io.Writer, level logrus.Level) *LogrusLogger {
	l := logrus.New()
	l.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	l.Out = out
	l.Level = level
	return NewLogrusLogger(l)
}

func (g *LogrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	g.entry(ctx, args).Debug(msg)
}

func (g *LogrusLogger) Info(ctx context.Context, msg string, args ...any) {
	g.entry(ctx, args).Info(msg)
}

func (g *LogrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	g.entry(ctx, args).Warn(msg)
}

func (g *LogrusLogger) Error(ctx context.Context, msg string, args ...any) {
	g.entry(ctx, args).Error(msg)
}

func (g *LogrusLogger) With(args ...any) Logger {
	return &LogrusLogger{e: g.e.WithFields(toFields(args))}
}

func (g *LogrusLogger) entry(ctx context.Context, args []any) *logrus.Entry {
	return g.e.WithContext(ctx).WithFields(toFields(args))
}

func toFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fields["!BADKEY"] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if err, ok := args[i+1].(error); ok {
			fields[key] = err.Error()
			continue
		}
		fields[key] = args[i+1]
	}
	return fields
}

func parseLogrusLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(level)
}
