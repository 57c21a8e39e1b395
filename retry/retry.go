// Package retry re-invokes a fallible operation until it succeeds or
// its attempt budget is spent, with a configurable delay policy
// between attempts.
package retry

import (
	"context"
	"time"

	"github.com/go-again/again/logger"
)

// DefaultRetries is the attempt budget used by Default.
const DefaultRetries = 3

// Strategy describes how a call is retried. Retries is the number of
// additional attempts allowed after the first failure, so a call runs
// at most Retries+1 times. A nil Delay retries immediately.
type Strategy struct {
	Retries int
	Delay   DelayPolicy
}

// Default returns the strategy used when the caller has no opinion:
// three retries with no delay between them.
func Default() Strategy {
	return Strategy{Retries: DefaultRetries}
}

func (s Strategy) delay(retryNum int) time.Duration {
	if s.Delay == nil {
		return 0
	}
	return s.Delay.NextDelay(retryNum)
}

// Do invokes fn until it returns nil or the budget is spent. The delay
// is applied before each retry, never before the first attempt. The
// last error is returned unwrapped; a panic from fn propagates
// immediately and is not retried.
func Do(fn func() error, strat Strategy) error {
	var err error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if d := strat.delay(attempt); d > 0 {
				time.Sleep(d)
			}
		}
		err = fn()
		if err == nil {
			return nil
		}
		if attempt >= strat.Retries {
			return err
		}
	}
}

// DoValue is Do for operations that produce a value. On success the
// value of the succeeding attempt is returned; after exhaustion the
// last attempt's value and error are returned as-is.
func DoValue[T any](fn func() (T, error), strat Strategy) (T, error) {
	var (
		val T
		err error
	)
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if d := strat.delay(attempt); d > 0 {
				time.Sleep(d)
			}
		}
		val, err = fn()
		if err == nil {
			return val, nil
		}
		if attempt >= strat.Retries {
			return val, err
		}
	}
}

// DoContext is Do with a context-aware delay: cancellation during a
// wait abandons the remaining budget and returns ctx.Err(). A retry
// already running is not interrupted.
func DoContext(ctx context.Context, strat Strategy, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if werr := wait(ctx, strat.delay(attempt)); werr != nil {
				return werr
			}
		}
		err = fn()
		if err == nil {
			return nil
		}
		if attempt >= strat.Retries {
			return err
		}
	}
}

// DoLogged is Do with per-attempt observability: every failed attempt
// is reported through l, along with the delay chosen before the next
// one (zero when the budget is spent).
func DoLogged(fn func() error, strat Strategy, l logger.Logger) error {
	var err error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if d := strat.delay(attempt); d > 0 {
				time.Sleep(d)
			}
		}
		err = fn()
		if err == nil {
			return nil
		}
		if attempt >= strat.Retries {
			l.LogAttempt(context.Background(), attempt+1, err, 0)
			return err
		}
		l.LogAttempt(context.Background(), attempt+1, err, strat.delay(attempt+1))
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
