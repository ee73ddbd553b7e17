// Package backoff implements a capped exponential retry policy: initial
// delay, geometric growth, hard cap, bounded attempt count.
package backoff

import "time"

// Policy is a capped exponential backoff schedule.
type Policy struct {
	Initial     time.Duration
	Factor      float64
	Max         time.Duration
	MaxAttempts int
}

// Default is the service's reconnect policy: initial 5s, factor 1.5, cap
// 60s, max 10 attempts.
func Default() Policy {
	return Policy{Initial: 5 * time.Second, Factor: 1.5, Max: 60 * time.Second, MaxAttempts: 10}
}

// Delay returns the wait after failed attempt n, before attempt n+1
// (1-indexed: Delay(1) is the wait before the 2nd attempt, Delay(2) before
// the 3rd, and so on). attempt <= 1 waits Initial.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return p.Initial
	}
	d := float64(p.Initial)
	for i := 1; i < attempt; i++ {
		d *= p.Factor
		if d >= float64(p.Max) {
			return p.Max
		}
	}
	return time.Duration(d)
}

// Exhausted reports whether attempt has used up the policy's retry budget.
func (p Policy) Exhausted(attempt int) bool {
	return p.MaxAttempts > 0 && attempt >= p.MaxAttempts
}

// Retry calls fn until it succeeds, sleep returns false (signalling give up
// early), or the policy's attempt budget is exhausted. It returns the last
// error seen, or nil on success.
func Retry(p Policy, sleep func(time.Duration) bool, fn func(attempt int) error) error {
	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := fn(attempt); err != nil {
			lastErr = err
			if p.Exhausted(attempt) {
				return lastErr
			}
			if sleep != nil && !sleep(p.Delay(attempt)) {
				return lastErr
			}
			continue
		}
		return nil
	}
}
