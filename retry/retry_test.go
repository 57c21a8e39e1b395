package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-again/again/retry"
)

var errBoom = errors.New("boom")

// failingN returns a callable failing the first n invocations and an
// invocation counter.
func failingN(n int) (func() error, *int) {
	calls := 0
	return func() error {
		calls++
		if calls <= n {
			return errBoom
		}
		return nil
	}, &calls
}

func TestDoFirstTrySucceeds(t *testing.T) {
	fn, calls := failingN(0)
	err := retry.Do(fn, retry.Default())
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
}

func TestDoSucceedsAfterFailures(t *testing.T) {
	// Fails twice, then succeeds: three invocations total.
	fn, calls := failingN(2)
	err := retry.Do(fn, retry.Strategy{Retries: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, *calls)
}

func TestDoExhaustsBudget(t *testing.T) {
	calls := 0
	err := retry.Do(func() error {
		calls++
		return errBoom
	}, retry.Strategy{Retries: 2})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, calls, "1 initial + 2 retries")
}

func TestDoZeroRetries(t *testing.T) {
	calls := 0
	err := retry.Do(func() error {
		calls++
		return errBoom
	}, retry.Strategy{})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestDoValueReturnsValueUnchanged(t *testing.T) {
	fn := func() (int, error) { return 42, nil }
	v, err := retry.DoValue(fn, retry.Default())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestDoValueEventualSuccess(t *testing.T) {
	calls := 0
	v, err := retry.DoValue(func() (string, error) {
		calls++
		if calls < 3 {
			return "", errBoom
		}
		return "ok", nil
	}, retry.Strategy{Retries: 3})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 3, calls)
}

func TestDoValueExhaustedReturnsLastError(t *testing.T) {
	v, err := retry.DoValue(func() (int, error) {
		return 0, errBoom
	}, retry.Strategy{Retries: 1})
	assert.ErrorIs(t, err, errBoom)
	assert.Zero(t, v)
}

func TestFixedDelayAppliedBeforeRetriesOnly(t *testing.T) {
	const d = 20 * time.Millisecond
	start := time.Now()
	err := retry.Do(func() error { return errBoom }, retry.Strategy{
		Retries: 2,
		Delay:   retry.Fixed(d),
	})
	elapsed := time.Since(start)
	assert.ErrorIs(t, err, errBoom)
	assert.GreaterOrEqual(t, elapsed, 2*d, "delay before each retry, not the first attempt")
}

func TestNoDelayWhenFirstTrySucceeds(t *testing.T) {
	start := time.Now()
	err := retry.Do(func() error { return nil }, retry.Strategy{
		Retries: 5,
		Delay:   retry.Fixed(time.Second),
	})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDoContextCancelDuringDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	calls := 0
	err := retry.DoContext(ctx, retry.Strategy{
		Retries: 5,
		Delay:   retry.Fixed(time.Second),
	}, func() error {
		calls++
		return errBoom
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls, "cancellation abandons the remaining budget")
}

func TestDoContextEventualSuccess(t *testing.T) {
	fn, calls := failingN(1)
	err := retry.DoContext(context.Background(), retry.Strategy{Retries: 2}, fn)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestDefaultStrategy(t *testing.T) {
	strat := retry.Default()
	assert.Equal(t, retry.DefaultRetries, strat.Retries)
	assert.Nil(t, strat.Delay)
}

func TestExponentialPolicy(t *testing.T) {
	e := retry.Exponential{Initial: 100 * time.Millisecond, Multiplier: 2}
	assert.Equal(t, 100*time.Millisecond, e.NextDelay(1))
	assert.Equal(t, 200*time.Millisecond, e.NextDelay(2))
	assert.Equal(t, 400*time.Millisecond, e.NextDelay(3))
}

func TestFixedPolicy(t *testing.T) {
	f := retry.Fixed(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, f.NextDelay(1))
	assert.Equal(t, 50*time.Millisecond, f.NextDelay(7))
}

func TestNoDelayPolicy(t *testing.T) {
	assert.Zero(t, retry.NoDelay{}.NextDelay(1))
}
