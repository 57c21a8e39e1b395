package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// newZerologLogger creates a configured rs/zerolog.Logger instance.
func newZerologLogger(appName, env string, cfg *GlobalConfig) zerolog.Logger {
	level := toZerologLevel(cfg.Level)
	return zerolog.New(cfg.GetWriter()).Level(level).With().
		Timestamp().
		Str("service", appName).
		Str("env", env).
		Logger()
}

// ZerologAdapter implements the Logger interface using github.com/rs/zerolog
// as the underlying engine.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new logger instance using zerolog.
// It is pre-configured with timestamp, service name, and environment fields.
// File rotation and output options can be customized via functional options.
func NewZerologAdapter(appName, env string, opts ...Option) *ZerologAdapter {
	cfg := defaultConfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	return &ZerologAdapter{
		logger: newZerologLogger(appName, env, cfg),
	}
}

// Debug logs a message at DebugLevel with the given key-value pairs.
func (a *ZerologAdapter) Debug(msg string, args ...any) { a.logger.Debug().Fields(args).Msg(msg) }

// Info logs a message at InfoLevel with the given key-value pairs.
func (a *ZerologAdapter) Info(msg string, args ...any) { a.logger.Info().Fields(args).Msg(msg) }

// Warn logs a message at WarnLevel with the given key-value pairs.
func (a *ZerologAdapter) Warn(msg string, args ...any) { a.logger.Warn().Fields(args).Msg(msg) }

// Error logs a message at ErrorLevel with the given key-value pairs.
func (a *ZerologAdapter) Error(msg string, args ...any) { a.logger.Error().Fields(args).Msg(msg) }

// With returns a new logger instance with the given key-value pairs added to all subsequent logs.
func (a *ZerologAdapter) With(args ...any) Logger {
	return &ZerologAdapter{logger: a.logger.With().Fields(args).Logger()}
}

// Ctx returns a new logger instance enriched with request_id from the context, if present.
// If no request_id is found, returns the original logger.
func (a *ZerologAdapter) Ctx(ctx context.Context) Logger {
	requestID := GetRequestID(ctx)
	if requestID == "" {
		return a
	}
	return &ZerologAdapter{logger: a.logger.With().Str("request_id", requestID).Logger()}
}

// Log logs a message at the specified level with structured attributes.
// If the level is below the configured minimum, the log is silently dropped.
func (a *ZerologAdapter) Log(level Level, msg string, attrs ...Attr) {
	zlLevel := toZerologLevel(level)
	if zlLevel == zerolog.Disabled {
		return
	}

	event := a.logger.WithLevel(zlLevel)
	for _, attr := range attrs {
		event.Any(attr.Key, attr.Value)
	}
	event.Msg(msg)
}

// LogDuration reports the elapsed wall-clock time of a completed call.
func (a *ZerologAdapter) LogDuration(ctx context.Context, name string, elapsed time.Duration) {
	if name == "" {
		name = "call"
	}
	a.Ctx(ctx).Info("timed call",
		"name", name,
		"elapsed", elapsed.String(),
	)
}

// LogAttempt reports one failed attempt of a retried operation.
func (a *ZerologAdapter) LogAttempt(ctx context.Context, attempt int, err error, nextDelay time.Duration) {
	a.Ctx(ctx).Warn("attempt failed",
		"attempt", attempt,
		"error", err.Error(),
		"next_delay", nextDelay.String(),
	)
}

// toZerologLevel converts a logger.Level to the corresponding zerolog.Level.
// Unknown levels default to InfoLevel.
func toZerologLevel(l Level) zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
