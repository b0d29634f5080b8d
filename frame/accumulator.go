package frame

import "time"

// Accumulator gates work on elapsed wall-clock time rather than on a fixed-rate
// timer. The zero value is ready to use.
type Accumulator struct {
	last   time.Time
	primed bool
}

// Due reports whether at least interval has passed since the last due frame.
// The first call after construction or Reset only records the baseline.
// When Due returns true the baseline moves to now.
func (a *Accumulator) Due(now time.Time, interval time.Duration) bool {
	if !a.primed {
		a.last = now
		a.primed = true
		return false
	}

	if now.Sub(a.last) < interval {
		return false
	}

	a.last = now
	return true
}

// Since returns the time elapsed since the baseline, or zero when unprimed.
func (a *Accumulator) Since(now time.Time) time.Duration {
	if !a.primed {
		return 0
	}
	return now.Sub(a.last)
}

// Reset forgets the baseline so that the next frame starts a fresh interval.
func (a *Accumulator) Reset() {
	a.last = time.Time{}
	a.primed = false
}
