package logger

import (
	"context"
	"log/slog"
	"time"
)

// newSlogLogger creates a configured log/slog.Logger instance.
func newSlogLogger(appName, env string, cfg *GlobalConfig) *slog.Logger {
	level := toSlogLevel(cfg.Level)
	handler := slog.NewJSONHandler(cfg.GetWriter(), &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With(
		slog.String("service", appName),
		slog.String("env", env),
	)
}

// SlogAdapter implements the Logger interface using Go's standard log/slog package.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new logger instance using log/slog with JSON encoding.
// It is pre-configured with service name and environment fields.
// File rotation and output options can be customized via functional options.
func NewSlogAdapter(appName, env string, opts ...Option) *SlogAdapter {
	cfg := defaultConfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	return &SlogAdapter{
		logger: newSlogLogger(appName, env, cfg),
	}
}

// Debug logs a message at DebugLevel with the given key-value pairs.
func (a *SlogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }

// Info logs a message at InfoLevel with the given key-value pairs.
func (a *SlogAdapter) Info(msg string, args ...any) { a.logger.Info(msg, args...) }

// Warn logs a message at WarnLevel with the given key-value pairs.
func (a *SlogAdapter) Warn(msg string, args ...any) { a.logger.Warn(msg, args...) }

// Error logs a message at ErrorLevel with the given key-value pairs.
func (a *SlogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// With returns a new logger instance with the given key-value pairs added to all subsequent logs.
func (a *SlogAdapter) With(args ...any) Logger {
	return &SlogAdapter{logger: a.logger.With(args...)}
}

// Ctx returns a new logger instance enriched with request_id from the context, if present.
// If no request_id is found, returns the original logger.
func (a *SlogAdapter) Ctx(ctx context.Context) Logger {
	requestID := GetRequestID(ctx)
	if requestID == "" {
		return a
	}
	return &SlogAdapter{logger: a.logger.With("request_id", requestID)}
}

// Log logs a message at the specified level with structured attributes.
// It checks if the level is enabled before constructing the log record.
func (a *SlogAdapter) Log(level Level, msg string, attrs ...Attr) {
	slogLevel := toSlogLevel(level)
	if !a.logger.Enabled(context.Background(), slogLevel) {
		return
	}
	a.logger.Log(context.Background(), slogLevel, msg, toSlogAttrs(attrs)...)
}

// LogDuration reports the elapsed wall-clock time of a completed call.
func (a *SlogAdapter) LogDuration(ctx context.Context, name string, elapsed time.Duration) {
	if name == "" {
		name = "call"
	}
	a.Ctx(ctx).Info("timed call",
		"name", name,
		"elapsed", elapsed.String(),
	)
}

// LogAttempt reports one failed attempt of a retried operation.
func (a *SlogAdapter) LogAttempt(ctx context.Context, attempt int, err error, nextDelay time.Duration) {
	a.Ctx(ctx).Warn("attempt failed",
		"attempt", attempt,
		"error", err.Error(),
		"next_delay", nextDelay.String(),
	)
}

// toSlogLevel converts a logger.Level to the corresponding slog.Level.
// Unknown levels default to LevelInfo.
func toSlogLevel(l Level) slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// toSlogAttrs converts a slice of Attr to slog arguments (key-value pairs).
func toSlogAttrs(attrs []Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = slog.Any(attr.Key, attr.Value)
	}
	return args
}
