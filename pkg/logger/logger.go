package logger

import (
	"context"
	"fmt"
	"strings"

	"pdf-extract-api/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey struct{}

// AppLogger implements the domain.Logger interface on top of zap
type AppLogger struct {
	logger *zap.Logger
}

// NewLogger creates a new JSON logger writing to stdout at the given level
func NewLogger(levelStr string) domain.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLogLevel(levelStr))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true

	zl, err := cfg.Build()
	if err != nil {
		zl = zap.NewNop()
	}
	return &AppLogger{logger: zl}
}

// NewFromZap wraps an existing zap logger
func NewFromZap(zl *zap.Logger) domain.Logger {
	return &AppLogger{logger: zl}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	zf := append([]zap.Field{zap.Error(err)}, toZapFields(fields)...)
	l.logger.Error(msg, zf...)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

// With returns a child logger that always carries the given key/value pairs
func (l *AppLogger) With(fields ...interface{}) domain.Logger {
	return &AppLogger{logger: l.logger.With(toZapFields(fields)...)}
}

// Sync flushes buffered log entries
func (l *AppLogger) Sync() error {
	return l.logger.Sync()
}

// WithContext stores a request-scoped logger in ctx
func WithContext(ctx context.Context, l domain.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request-scoped logger, or fallback when none is set
func FromContext(ctx context.Context, fallback domain.Logger) domain.Logger {
	if l, ok := ctx.Value(contextKey{}).(domain.Logger); ok && l != nil {
		return l
	}
	return fallback
}

// toZapFields converts alternating key/value pairs to zap fields.
// A trailing key without a value is dropped.
func toZapFields(fields []interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		if err, isErr := fields[i+1].(error); isErr {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, fields[i+1]))
	}
	return out
}

// parseLogLevel converts string log level to a zap level
func parseLogLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
