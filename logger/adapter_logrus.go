package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

func newLogrusLogger(appName, env string, cfg *GlobalConfig) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(cfg.GetWriter())
	l.SetLevel(toLogrusLevel(cfg.Level))
	l.SetFormatter(&logrus.JSONFormatter{})

	return l.WithFields(logrus.Fields{
		"service": appName,
		"env":     env,
	})
}

// LogrusAdapter implements the Logger interface using github.com/sirupsen/logrus
// as the underlying engine. Key-value args are converted to logrus fields,
// since logrus has no native message-plus-pairs call shape.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter creates a new logger instance using logrus.
// It is pre-configured with service name and environment fields.
// File rotation and output options can be customized via functional options.
func NewLogrusAdapter(appName, env string, opts ...Option) *LogrusAdapter {
	cfg := defaultConfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	return &LogrusAdapter{
		entry: newLogrusLogger(appName, env, cfg),
	}
}

// Debug logs a message at DebugLevel with the given key-value pairs.
func (a *LogrusAdapter) Debug(msg string, args ...any) {
	a.entry.WithFields(toLogrusFields(args)).Debug(msg)
}

// Info logs a message at InfoLevel with the given key-value pairs.
func (a *LogrusAdapter) Info(msg string, args ...any) {
	a.entry.WithFields(toLogrusFields(args)).Info(msg)
}

// Warn logs a message at WarnLevel with the given key-value pairs.
func (a *LogrusAdapter) Warn(msg string, args ...any) {
	a.entry.WithFields(toLogrusFields(args)).Warn(msg)
}

// Error logs a message at ErrorLevel with the given key-value pairs.
func (a *LogrusAdapter) Error(msg string, args ...any) {
	a.entry.WithFields(toLogrusFields(args)).Error(msg)
}

// With returns a new logger instance with the given key-value pairs added to all subsequent logs.
func (a *LogrusAdapter) With(args ...any) Logger {
	return &LogrusAdapter{entry: a.entry.WithFields(toLogrusFields(args))}
}

// Ctx returns a new logger instance enriched with request_id from the context, if present.
// If no request_id is found, returns the original logger.
func (a *LogrusAdapter) Ctx(ctx context.Context) Logger {
	requestID := GetRequestID(ctx)
	if requestID == "" {
		return a
	}
	return &LogrusAdapter{entry: a.entry.WithField("request_id", requestID)}
}

// Log logs a message at the specified level with structured attributes.
func (a *LogrusAdapter) Log(level Level, msg string, attrs ...Attr) {
	fields := make(logrus.Fields, len(attrs))
	for _, attr := range attrs {
		fields[attr.Key] = attr.Value
	}
	a.entry.WithFields(fields).Log(toLogrusLevel(level), msg)
}

// LogDuration reports the elapsed wall-clock time of a completed call.
func (a *LogrusAdapter) LogDuration(ctx context.Context, name string, elapsed time.Duration) {
	if name == "" {
		name = "call"
	}
	a.Ctx(ctx).Info("timed call",
		"name", name,
		"elapsed", elapsed.String(),
	)
}

// LogAttempt reports one failed attempt of a retried operation.
func (a *LogrusAdapter) LogAttempt(ctx context.Context, attempt int, err error, nextDelay time.Duration) {
	a.Ctx(ctx).Warn("attempt failed",
		"attempt", attempt,
		"error", err.Error(),
		"next_delay", nextDelay.String(),
	)
}

// toLogrusFields converts alternating key-value args to logrus.Fields.
// A trailing key without a value is kept with a nil value.
func toLogrusFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 < len(args) {
			fields[key] = args[i+1]
		} else {
			fields[key] = nil
		}
	}
	return fields
}

// toLogrusLevel converts a logger.Level to the corresponding logrus.Level.
// Unknown levels default to InfoLevel.
func toLogrusLevel(l Level) logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
