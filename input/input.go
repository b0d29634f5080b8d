// Package input defines the discrete actions a frontend sends to a game
// session. Frontends translate their own key events into Actions; nothing
// downstream knows about keyboards.
package input

import "time"

//go:generate go tool stringer -type=Action -linecomment

// Action is one key-down worth of player intent.
type Action uint8

const (
	Up      Action = iota // up
	Down                  // down
	Left                  // left
	Right                 // right
	Primary               // primary
	Pause                 // pause
	Start                 // start
	Reset                 // reset
	Faster                // faster
	Slower                // slower
	Quit                  // quit
)

// IsDirection reports whether a is one of the four arrows.
func (a Action) IsDirection() bool {
	return a <= Right
}

// Throttle drops actions that arrive sooner than Delay after the last accepted
// one. The zero value accepts everything.
type Throttle struct {
	Delay time.Duration
	last  time.Time
}

// Allow reports whether an action at now should be handled, and if so records
// now as the last accepted time.
func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.Delay {
		return false
	}
	t.last = now
	return true
}

// Reset forgets the last accepted time.
func (t *Throttle) Reset() {
	t.last = time.Time{}
}
