package tetris

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/render"
	"github.com/plus3/arcade/session"
)

// KeyRepeatDelay is the minimum time between two accepted player actions.
const KeyRepeatDelay = 100 * time.Millisecond

// Game adapts an Engine and its State to session.Game.
type Game struct {
	engine   *Engine
	state    *State
	throttle input.Throttle
	last     Result
}

// NewGame creates a tetris game with its own state.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	engine, err := NewEngine(cfg, rng)
	if err != nil {
		return nil, err
	}
	return &Game{
		engine:   engine,
		state:    engine.NewState(),
		throttle: input.Throttle{Delay: KeyRepeatDelay},
	}, nil
}

// State exposes the live game state.
func (g *Game) State() *State { return g.state }

// LastResult returns the result of the most recent fall or hard drop.
func (g *Game) LastResult() Result { return g.last }

func (g *Game) Name() string { return "tetris" }

func (g *Game) Reset() {
	g.engine.Reset(g.state)
	g.throttle.Reset()
	g.last = Result{}
}

func (g *Game) Interval() time.Duration { return g.state.Interval }

func (g *Game) Tick() bool {
	g.last = g.engine.Fall(g.state)
	return g.last.Over
}

func (g *Game) Draw(dst render.Surface) {
	Draw(dst, g.engine.cfg, g.state)
}

func (g *Game) DrawPreview(dst render.Surface) {
	DrawPreview(dst, g.engine.cfg, &g.state.Next)
}

func (g *Game) Handle(ev session.Event) (bool, bool) {
	switch ev.Action {
	case input.Left, input.Right, input.Down, input.Up, input.Primary:
	default:
		return false, false
	}
	if !g.throttle.Allow(ev.Now) {
		return false, false
	}

	switch ev.Action {
	case input.Left:
		return g.engine.Move(g.state, -1), false
	case input.Right:
		return g.engine.Move(g.state, 1), false
	case input.Down:
		return g.engine.SoftDrop(g.state), false
	case input.Up:
		return g.engine.RotatePiece(g.state), false
	default:
		g.last = g.engine.HardDrop(g.state)
		return true, g.last.Over
	}
}

func (g *Game) Stats() session.Stats {
	return session.Stats{
		Score:      g.state.Score,
		Count:      g.state.Lines,
		CountLabel: "lines",
		Level:      g.state.Level,
		Speed:      g.state.Interval.String(),
	}
}
