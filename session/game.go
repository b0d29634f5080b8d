package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/render"
)

// Event is an action delivered to a game together with its timing.
type Event struct {
	Action input.Action
	Now    time.Time
	// SinceTick is the time since the last committed tick, zero before the
	// first one.
	SinceTick time.Duration
}

// Stats is the externally visible progress of a game: the score, length or
// lines, and level readouts.
type Stats struct {
	Score      int
	Count      int
	CountLabel string
	// Level is zero for games without levels.
	Level int
	Speed string
}

// Summary formats the final-score notice shown when a game ends.
func (st Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game over! Score: %d, %s: %d", st.Score, st.CountLabel, st.Count)
	if st.Level > 0 {
		fmt.Fprintf(&b, ", level: %d", st.Level)
	}
	return b.String()
}

// Game is the contract between a game engine and the Session that drives it.
// Implementations own their state; the session decides when to call them.
type Game interface {
	Name() string
	// Reset reinitializes the game to its starting position.
	Reset()
	// Interval is the current time between ticks.
	Interval() time.Duration
	// Tick advances the game one step and reports whether it ended.
	Tick() (over bool)
	Draw(dst render.Surface)
	// Handle applies a player action. changed reports whether anything visible
	// moved; over reports that the action ended the game.
	Handle(ev Event) (changed, over bool)
	Stats() Stats
}

// Previewer is implemented by games that show an upcoming piece.
type Previewer interface {
	DrawPreview(dst render.Surface)
}

// PrimaryPauser is implemented by games whose primary action toggles pause
// instead of being handled by the game.
type PrimaryPauser interface {
	PrimaryPauses() bool
}

// Listener receives score readout updates and the end-of-game notice.
type Listener interface {
	StatsChanged(st Stats)
	GameOver(st Stats)
}

// ListenerFuncs adapts a pair of functions to a Listener. Nil fields are
// skipped.
type ListenerFuncs struct {
	OnStats func(Stats)
	OnOver  func(Stats)
}

func (l ListenerFuncs) StatsChanged(st Stats) {
	if l.OnStats != nil {
		l.OnStats(st)
	}
}

func (l ListenerFuncs) GameOver(st Stats) {
	if l.OnOver != nil {
		l.OnOver(st)
	}
}
