package timeit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-again/again/logger"
	"github.com/go-again/again/timeit"
	"github.com/go-again/again/zlog"
)

// captureZlog swaps the global zlog logger for a buffer-backed one until the
// test ends.
func captureZlog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := zlog.Logger
	zlog.Logger = zerolog.New(&buf)
	t.Cleanup(func() { zlog.Logger = prev })
	return &buf
}

func TestDoReturnsValueAndLogsOnce(t *testing.T) {
	buf := captureZlog(t)

	got := timeit.Do(func() int { return 42 })
	assert.Equal(t, 42, got)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "timed call", rec["message"])
	assert.Equal(t, "call", rec["name"])
	assert.GreaterOrEqual(t, rec["elapsed"].(float64), 0.0)
}

func TestDoInvokesExactlyOnce(t *testing.T) {
	captureZlog(t)

	calls := 0
	timeit.Do(func() struct{} {
		calls++
		return struct{}{}
	})
	assert.Equal(t, 1, calls)
}

func TestDoNamedUsesLabel(t *testing.T) {
	buf := captureZlog(t)

	timeit.DoNamed("sleeping", func() any {
		time.Sleep(time.Millisecond)
		return nil
	})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "sleeping", rec["name"])
	assert.Greater(t, rec["elapsed"].(float64), 0.0)
}

func TestDoErrSuccess(t *testing.T) {
	buf := captureZlog(t)

	v, err := timeit.DoErr(func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.NotZero(t, buf.Len())
}

func TestDoErrFailureSkipsLog(t *testing.T) {
	buf := captureZlog(t)

	boom := errors.New("boom")
	_, err := timeit.DoErr(func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, buf.Len(), "failed calls log no timing")
}

func TestDoPanicPropagatesWithoutLog(t *testing.T) {
	buf := captureZlog(t)

	assert.Panics(t, func() {
		timeit.Do(func() int { panic("kaboom") })
	})
	assert.Zero(t, buf.Len(), "panicking calls log no timing")
}

func TestTimerDo(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.InitLogger(logger.ZerologEngine, "again-test", "test", logger.WithWriter(&buf))
	require.NoError(t, err)

	tm := timeit.New(l)
	tm.Do(context.Background(), "work", func() {})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "work", rec["name"])
}

func TestTimerDoErrFailureSkipsLog(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.InitLogger(logger.ZerologEngine, "again-test", "test", logger.WithWriter(&buf))
	require.NoError(t, err)

	tm := timeit.New(l)
	boom := errors.New("boom")
	gotErr := tm.DoErr(context.Background(), "work", func() error { return boom })
	assert.ErrorIs(t, gotErr, boom)
	assert.Zero(t, buf.Len())
}
