package retry

import "time"

// DelayPolicy computes the wait applied before a retry attempt.
// The first retry is numbered 1. Policies are immutable values; the
// retry loop asks the policy for each delay instead of carrying state.
type DelayPolicy interface {
	NextDelay(retryNum int) time.Duration
}

// NoDelay retries immediately.
type NoDelay struct{}

// NextDelay always returns zero.
func (NoDelay) NextDelay(int) time.Duration { return 0 }

// Fixed waits the same duration before every retry.
type Fixed time.Duration

// NextDelay returns the fixed duration regardless of the retry number.
func (f Fixed) NextDelay(int) time.Duration { return time.Duration(f) }

// Exponential waits Initial before the first retry and multiplies the
// wait by Multiplier for each retry after that.
type Exponential struct {
	Initial    time.Duration
	Multiplier float64
}

// NextDelay returns Initial scaled by Multiplier^(retryNum-1).
func (e Exponential) NextDelay(retryNum int) time.Duration {
	d := float64(e.Initial)
	for i := 1; i < retryNum; i++ {
		d *= e.Multiplier
	}
	return time.Duration(d)
}
