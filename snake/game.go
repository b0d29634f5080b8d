package snake

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/render"
	"github.com/plus3/arcade/session"
)

// SpeedStep is how much one Faster or Slower action changes the interval.
const SpeedStep = 20 * time.Millisecond

var headings = map[input.Action]Direction{
	input.Up:    Up,
	input.Down:  Down,
	input.Left:  Left,
	input.Right: Right,
}

// Game adapts an Engine and its State to session.Game.
type Game struct {
	engine *Engine
	state  *State
	last   Outcome
}

// NewGame creates a snake game with its own state.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	engine, err := NewEngine(cfg, rng)
	if err != nil {
		return nil, err
	}
	return &Game{engine: engine, state: engine.NewState()}, nil
}

// State exposes the live game state.
func (g *Game) State() *State { return g.state }

// LastOutcome returns the result of the most recent tick.
func (g *Game) LastOutcome() Outcome { return g.last }

func (g *Game) Name() string { return "snake" }

func (g *Game) Reset() {
	g.engine.Reset(g.state)
	g.last = Outcome{}
}

func (g *Game) Interval() time.Duration { return g.state.Interval }

func (g *Game) Tick() bool {
	g.last = g.engine.Tick(g.state)
	return g.last.Over()
}

func (g *Game) Draw(dst render.Surface) {
	Draw(dst, g.engine.cfg, g.state)
}

// PrimaryPauses reports true: the action key pauses Snake.
func (g *Game) PrimaryPauses() bool { return true }

func (g *Game) Handle(ev session.Event) (bool, bool) {
	if ev.Action.IsDirection() {
		return g.engine.Steer(g.state, headings[ev.Action], ev.SinceTick), false
	}

	switch ev.Action {
	case input.Faster:
		return g.setInterval(g.state.Interval - SpeedStep), false
	case input.Slower:
		return g.setInterval(g.state.Interval + SpeedStep), false
	}
	return false, false
}

func (g *Game) setInterval(d time.Duration) bool {
	before := g.state.Interval
	g.engine.SetInterval(g.state, d)
	return g.state.Interval != before
}

func (g *Game) Stats() session.Stats {
	return session.Stats{
		Score:      g.state.Score,
		Count:      g.state.Len(),
		CountLabel: "length",
		Speed:      SpeedLabel(g.state.Interval),
	}
}
