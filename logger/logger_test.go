package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-again/again/logger"
)

func newCaptured(t *testing.T, engine logger.Engine) (logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.InitLogger(engine, "again-test", "test",
		logger.WithWriter(&buf),
		logger.WithLevel(logger.DebugLevel),
	)
	require.NoError(t, err)
	return l, &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestLogDuration(t *testing.T) {
	msgKeys := map[logger.Engine]string{
		logger.ZerologEngine: "message",
		logger.SlogEngine:    "msg",
		logger.ZapEngine:     "msg",
		logger.LogrusEngine:  "msg",
	}
	for engine, msgKey := range msgKeys {
		t.Run(string(engine), func(t *testing.T) {
			l, buf := newCaptured(t, engine)
			l.LogDuration(context.Background(), "demo", 5*time.Millisecond)

			rec := lastRecord(t, buf)
			assert.Equal(t, "timed call", rec[msgKey])
			assert.Equal(t, "demo", rec["name"])
			assert.Equal(t, "5ms", rec["elapsed"])
		})
	}
}

func TestLogDurationGenericMarker(t *testing.T) {
	l, buf := newCaptured(t, logger.ZerologEngine)
	l.LogDuration(context.Background(), "", time.Millisecond)

	rec := lastRecord(t, buf)
	assert.Equal(t, "call", rec["name"], "empty name falls back to a generic marker")
}

func TestLogAttempt(t *testing.T) {
	l, buf := newCaptured(t, logger.ZerologEngine)
	l.LogAttempt(context.Background(), 2, errors.New("boom"), 100*time.Millisecond)

	rec := lastRecord(t, buf)
	assert.Equal(t, "attempt failed", rec["message"])
	assert.Equal(t, float64(2), rec["attempt"])
	assert.Equal(t, "boom", rec["error"])
	assert.Equal(t, "100ms", rec["next_delay"])
}

func TestCtxEnrichesRequestID(t *testing.T) {
	l, buf := newCaptured(t, logger.ZerologEngine)
	ctx := logger.SetRequestID(context.Background(), "req-123")
	l.Ctx(ctx).Info("hello")

	rec := lastRecord(t, buf)
	assert.Equal(t, "req-123", rec["request_id"])
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Empty(t, logger.GetRequestID(context.Background()))
}

func TestGenerateRequestIDUnique(t *testing.T) {
	assert.NotEqual(t, logger.GenerateRequestID(), logger.GenerateRequestID())
}

func TestWithAddsFields(t *testing.T) {
	l, buf := newCaptured(t, logger.SlogEngine)
	l.With("component", "retry").Warn("slow")

	rec := lastRecord(t, buf)
	assert.Equal(t, "retry", rec["component"])
	assert.Equal(t, "again-test", rec["service"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.InitLogger(logger.ZerologEngine, "again-test", "test",
		logger.WithWriter(&buf),
		logger.WithLevel(logger.WarnLevel),
	)
	require.NoError(t, err)

	l.Info("dropped")
	assert.Zero(t, buf.Len())
	l.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", logger.DebugLevel.String())
	assert.Equal(t, "INFO", logger.InfoLevel.String())
	assert.Equal(t, "WARN", logger.WarnLevel.String())
	assert.Equal(t, "ERROR", logger.ErrorLevel.String())
}
