package snake

import (
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"
)

// Engine applies the Snake rules to a State.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// NewEngine validates cfg and returns an engine drawing food positions from rng.
// A nil rng uses a randomly seeded source.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{cfg: cfg, rng: rng}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewState returns a fresh session: a three segment body in the middle of the
// grid heading right, food on a free cell, zero score.
func (e *Engine) NewState() *State {
	s := &State{}
	e.Reset(s)
	return s
}

// Reset reinitializes s in place.
func (e *Engine) Reset(s *State) {
	cx, cy := e.cfg.Cols/2, e.cfg.Rows/2
	s.Body = append(s.Body[:0],
		Point{X: cx, Y: cy},
		Point{X: cx - 1, Y: cy},
		Point{X: cx - 2, Y: cy},
	)
	s.Direction = Right
	s.Pending = Right
	s.Score = 0
	s.Interval = e.cfg.InitialInterval
	s.Food, _ = e.PlaceFood(s.Body)
}

// Steer buffers d as the next heading. A reversal of the current heading is
// rejected and reported as false. sinceTick is the time since the last tick;
// it only matters when EagerSteer is enabled.
func (e *Engine) Steer(s *State, d Direction, sinceTick time.Duration) bool {
	if d == s.Direction.Opposite() {
		return false
	}

	s.Pending = d
	if e.cfg.EagerSteer && sinceTick > s.Interval*3/10 {
		s.Direction = d
	}
	return true
}

// SetInterval changes the tick interval, clamped to the configured range.
func (e *Engine) SetInterval(s *State, d time.Duration) {
	s.Interval = min(max(d, e.cfg.MinInterval), e.cfg.MaxInterval)
}

// Tick advances s by one step.
func (e *Engine) Tick(s *State) Outcome {
	var out Outcome

	s.Direction = s.Pending
	dx, dy := s.Direction.Delta()
	head := s.Head()
	head.X += dx
	head.Y += dy

	body := make([]Point, 0, len(s.Body)+1)
	body = append(body, head)
	body = append(body, s.Body...)
	s.Body = body

	if head == s.Food {
		out.Ate = true
		s.Score += e.cfg.FoodReward

		food, ok := e.PlaceFood(s.Body)
		s.Food = food
		out.Filled = !ok

		s.Interval = max(e.cfg.MinInterval, s.Interval-e.cfg.IntervalStep)
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}

	out.Collided = Collides(e.cfg.Cols, e.cfg.Rows, s.Body)
	return out
}

// PlaceFood picks a uniformly random cell not covered by body. It reports
// false, returning NoFood, when body covers the whole grid; otherwise the
// rejection loop is guaranteed to find a free cell.
func (e *Engine) PlaceFood(body []Point) (Point, bool) {
	cols, rows := e.cfg.Cols, e.cfg.Rows

	occupied := intmap.New[int, struct{}](len(body))
	for _, p := range body {
		if p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows {
			occupied.Put(p.Y*cols+p.X, struct{}{})
		}
	}
	if occupied.Len() >= cols*rows {
		return NoFood, false
	}

	for {
		x := e.rng.IntN(cols)
		y := e.rng.IntN(rows)
		if _, taken := occupied.Get(y*cols + x); !taken {
			return Point{X: x, Y: y}, true
		}
	}
}

// Collides reports whether the head of body is outside the grid or on top of
// another segment.
func Collides(cols, rows int, body []Point) bool {
	head := body[0]
	if head.X < 0 || head.X >= cols || head.Y < 0 || head.Y >= rows {
		return true
	}

	for _, seg := range body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
