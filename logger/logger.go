// Package logger provides a unified, structured logging interface with support
// for multiple underlying logging engines (Zap, slog, zerolog, logrus). It is
// the side channel for the toolkit's wrappers: timed calls and retry attempts
// are reported here, never through return values.
package logger

import (
	"context"
	"time"
)

// Level represents the severity of a log record.
type Level int

// Engine represents a supported underlying logging implementation.
type Engine string

const (
	// ZapEngine selects the go.uber.org/zap logger.
	ZapEngine Engine = "zap"
	// SlogEngine selects the stdlib log/slog logger.
	SlogEngine Engine = "slog"
	// ZerologEngine selects the github.com/rs/zerolog logger.
	ZerologEngine Engine = "zerolog"
	// LogrusEngine selects the github.com/sirupsen/logrus logger.
	LogrusEngine Engine = "logrus"

	// DebugLevel is the most verbose level, typically used for development.
	DebugLevel Level = iota - 4
	// InfoLevel is the default logging level for general operational information.
	InfoLevel
	// WarnLevel indicates unexpected or unusual events that are not errors.
	WarnLevel
	// ErrorLevel indicates serious errors that require attention.
	ErrorLevel
)

// Attr represents a key-value pair for structured logging.
type Attr struct {
	Key   string
	Value any
}

// Logger defines a unified interface for structured logging across engines.
// Args passed to the leveled methods are alternating key-value pairs.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, args ...any)
	// Info logs a message at InfoLevel.
	Info(msg string, args ...any)
	// Warn logs a message at WarnLevel.
	Warn(msg string, args ...any)
	// Error logs a message at ErrorLevel.
	Error(msg string, args ...any)

	// With returns a new logger instance with the given key-value pairs added
	// to all subsequent logs.
	With(args ...any) Logger
	// Ctx returns a new logger instance enriched with values from the provided
	// context (e.g. request_id).
	Ctx(ctx context.Context) Logger

	// Log logs a message at the specified level with structured attributes.
	Log(level Level, msg string, attrs ...Attr)

	// LogDuration reports the elapsed wall-clock time of a completed call.
	// Name identifies the call; an empty name logs a generic marker.
	LogDuration(ctx context.Context, name string, elapsed time.Duration)
	// LogAttempt reports one failed attempt of a retried operation: its
	// 1-based number, the failure, and the delay chosen before the next
	// attempt (zero when the budget is spent).
	LogAttempt(ctx context.Context, attempt int, err error, nextDelay time.Duration)
}

// InitLogger initializes a logger instance for the given engine, application
// name, and environment. It applies optional configuration via functional
// options. Returns an error only for engines that require explicit
// initialization (e.g. Zap).
func InitLogger(engine Engine, appName, env string, opts ...Option) (Logger, error) {
	switch engine {
	case ZapEngine:
		return NewZapAdapter(appName, env, opts...)
	case SlogEngine:
		return NewSlogAdapter(appName, env, opts...), nil
	case ZerologEngine:
		return NewZerologAdapter(appName, env, opts...), nil
	case LogrusEngine:
		return NewLogrusAdapter(appName, env, opts...), nil
	default:
		return NewSlogAdapter(appName, env, opts...), nil
	}
}

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// String creates a string attribute for structured logging.
func String(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Int creates an int attribute for structured logging.
func Int(key string, value int) Attr {
	return Attr{Key: key, Value: value}
}

// Bool creates a bool attribute for structured logging.
func Bool(key string, value bool) Attr {
	return Attr{Key: key, Value: value}
}

// Dur creates a duration attribute for structured logging.
func Dur(key string, value time.Duration) Attr {
	return Attr{Key: key, Value: value}
}

// Err creates an error attribute for structured logging.
func Err(value error) Attr {
	return Attr{Key: "error", Value: value}
}

// Any creates an attribute with an arbitrary value for structured logging.
func Any(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}
