// Package timeit wraps a call, measures its execution duration, and reports
// the elapsed time on a diagnostic log stream. The wrapped call's result is
// returned unchanged; timing never becomes part of the return value.
package timeit

import (
	"context"
	"time"

	"github.com/go-again/again/logger"
	"github.com/go-again/again/zlog"
)

// Do invokes fn exactly once and logs the elapsed wall-clock time through the
// global zlog logger, returning fn's value unchanged. A panic from fn
// propagates to the caller and no timing is logged.
func Do[T any](fn func() T) T {
	return DoNamed("", fn)
}

// DoNamed is Do with a label identifying the call in the log line. An empty
// name logs a generic marker.
func DoNamed[T any](name string, fn func() T) T {
	start := time.Now()
	v := fn()
	logElapsed(name, time.Since(start))
	return v
}

// DoErr invokes fn exactly once, timing it like Do. The value and error are
// propagated unchanged; a failed call logs no timing.
func DoErr[T any](fn func() (T, error)) (T, error) {
	return DoErrNamed("", fn)
}

// DoErrNamed is DoErr with a label identifying the call in the log line.
func DoErrNamed[T any](name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	if err != nil {
		return v, err
	}
	logElapsed(name, time.Since(start))
	return v, nil
}

func logElapsed(name string, elapsed time.Duration) {
	if name == "" {
		name = "call"
	}
	zlog.Logger.Info().
		Str("name", name).
		Dur("elapsed", elapsed).
		Msg("timed call")
}

// Timer reports elapsed times through an injected structured logger instead
// of the global zlog instance.
type Timer struct {
	log logger.Logger
}

// New returns a Timer bound to l.
func New(l logger.Logger) *Timer {
	return &Timer{log: l}
}

// Do invokes fn exactly once and logs its duration under name.
func (t *Timer) Do(ctx context.Context, name string, fn func()) {
	start := time.Now()
	fn()
	t.log.LogDuration(ctx, name, time.Since(start))
}

// DoErr invokes fn exactly once and logs its duration under name when it
// succeeds. The error is returned unchanged and suppresses the log line.
func (t *Timer) DoErr(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		return err
	}
	t.log.LogDuration(ctx, name, time.Since(start))
	return nil
}
