package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAdapter implements the Logger interface using go.uber.org/zap as the
// underlying engine. It keeps the sugared logger alongside the core one to
// avoid repeated sugar creation.
type ZapAdapter struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// NewZapAdapter creates a new logger instance using zap, configured with JSON
// encoding, structured fields, and the given application metadata. It supports
// file rotation and stderr output via options. The logger includes caller
// information and automatic stack traces for errors.
func NewZapAdapter(appName, env string, opts ...Option) (*ZapAdapter, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		FunctionKey:   zapcore.OmitKey,
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	cfg := defaultConfigs()
	for _, opt := range opts {
		opt(cfg)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(cfg.GetWriter()),
		toZapLevel(cfg.Level),
	)

	l := zap.New(core,
		zap.Fields(
			zap.String("service", appName),
			zap.String("env", env),
		),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	return &ZapAdapter{logger: l, sugar: l.Sugar()}, nil
}

// Debug logs a message at DebugLevel with the given key-value pairs.
func (a *ZapAdapter) Debug(msg string, args ...any) { a.sugar.Debugw(msg, args...) }

// Info logs a message at InfoLevel with the given key-value pairs.
func (a *ZapAdapter) Info(msg string, args ...any) { a.sugar.Infow(msg, args...) }

// Warn logs a message at WarnLevel with the given key-value pairs.
func (a *ZapAdapter) Warn(msg string, args ...any) { a.sugar.Warnw(msg, args...) }

// Error logs a message at ErrorLevel with the given key-value pairs.
func (a *ZapAdapter) Error(msg string, args ...any) { a.sugar.Errorw(msg, args...) }

// With returns a new logger instance with the given key-value pairs added to all subsequent logs.
func (a *ZapAdapter) With(args ...any) Logger {
	sugar := a.sugar.With(args...)
	return &ZapAdapter{logger: sugar.Desugar(), sugar: sugar}
}

// Ctx returns a new logger instance enriched with request_id from the context, if present.
// If no request_id is found, returns the original logger.
func (a *ZapAdapter) Ctx(ctx context.Context) Logger {
	requestID := GetRequestID(ctx)
	if requestID == "" {
		return a
	}
	return a.With("request_id", requestID)
}

// Log logs a message at the specified level with structured attributes.
func (a *ZapAdapter) Log(level Level, msg string, attrs ...Attr) {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, attr.Key, attr.Value)
	}
	switch level {
	case DebugLevel:
		a.sugar.Debugw(msg, args...)
	case WarnLevel:
		a.sugar.Warnw(msg, args...)
	case ErrorLevel:
		a.sugar.Errorw(msg, args...)
	default:
		a.sugar.Infow(msg, args...)
	}
}

// LogDuration reports the elapsed wall-clock time of a completed call.
func (a *ZapAdapter) LogDuration(ctx context.Context, name string, elapsed time.Duration) {
	if name == "" {
		name = "call"
	}
	a.Ctx(ctx).Info("timed call",
		"name", name,
		"elapsed", elapsed.String(),
	)
}

// LogAttempt reports one failed attempt of a retried operation.
func (a *ZapAdapter) LogAttempt(ctx context.Context, attempt int, err error, nextDelay time.Duration) {
	a.Ctx(ctx).Warn("attempt failed",
		"attempt", attempt,
		"error", err.Error(),
		"next_delay", nextDelay.String(),
	)
}

// toZapLevel converts a logger.Level to the corresponding zapcore.Level.
// Unknown levels default to InfoLevel.
func toZapLevel(l Level) zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
