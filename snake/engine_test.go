package snake_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/arcade/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, cfg snake.Config) *snake.Engine {
	t.Helper()
	engine, err := snake.NewEngine(cfg, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return engine
}

func contains(body []snake.Point, p snake.Point) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}

func TestNewState(t *testing.T) {
	engine := newEngine(t, snake.DefaultConfig())
	s := engine.NewState()

	assert.Equal(t, []snake.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, s.Body)
	assert.Equal(t, snake.Right, s.Direction)
	assert.Equal(t, snake.Right, s.Pending)
	assert.Equal(t, 150*time.Millisecond, s.Interval)
	assert.Zero(t, s.Score)
	assert.False(t, contains(s.Body, s.Food), "food spawned on the body")
}

func TestTick(t *testing.T) {
	cfg := snake.DefaultConfig()

	t.Run("plain move keeps length", func(t *testing.T) {
		engine := newEngine(t, cfg)
		s := engine.NewState()
		s.Food = snake.Point{X: 0, Y: 0}

		out := engine.Tick(s)

		assert.Equal(t, []snake.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}, s.Body)
		assert.False(t, out.Ate)
		assert.False(t, out.Over())
	})

	t.Run("eating grows by one and speeds up", func(t *testing.T) {
		engine := newEngine(t, cfg)
		s := engine.NewState()
		s.Food = snake.Point{X: 11, Y: 10}

		out := engine.Tick(s)

		assert.True(t, out.Ate)
		assert.Equal(t, 4, s.Len())
		assert.Equal(t, 10, s.Score)
		assert.Equal(t, 145*time.Millisecond, s.Interval)
		assert.False(t, contains(s.Body, s.Food), "new food placed on the body")
	})

	t.Run("interval floors at the minimum", func(t *testing.T) {
		engine := newEngine(t, cfg)
		s := engine.NewState()
		s.Interval = 52 * time.Millisecond
		s.Food = snake.Point{X: 11, Y: 10}

		engine.Tick(s)
		assert.Equal(t, 50*time.Millisecond, s.Interval)
	})

	t.Run("pending direction committed on tick", func(t *testing.T) {
		engine := newEngine(t, cfg)
		s := engine.NewState()
		s.Food = snake.Point{X: 0, Y: 0}

		require.True(t, engine.Steer(s, snake.Up, 0))
		assert.Equal(t, snake.Right, s.Direction, "steering is buffered")

		engine.Tick(s)
		assert.Equal(t, snake.Up, s.Direction)
		assert.Equal(t, snake.Point{X: 10, Y: 9}, s.Head())
	})

	t.Run("wall collision ends the session", func(t *testing.T) {
		engine := newEngine(t, cfg)
		s := engine.NewState()
		s.Body = []snake.Point{{X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5}}
		s.Food = snake.Point{X: 0, Y: 0}

		out := engine.Tick(s)
		assert.True(t, out.Collided)
		assert.True(t, out.Over())
	})

	t.Run("self collision ends the session", func(t *testing.T) {
		engine := newEngine(t, cfg)
		s := engine.NewState()
		// A hook shape: moving up from (5,6) lands on (5,5).
		s.Body = []snake.Point{{X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
		s.Direction = snake.Left
		s.Pending = snake.Up
		s.Food = snake.Point{X: 0, Y: 0}

		out := engine.Tick(s)
		assert.True(t, out.Collided)
	})

	t.Run("moving into the old tail cell is legal", func(t *testing.T) {
		engine := newEngine(t, cfg)
		s := engine.NewState()
		// Square loop; the tail at (5,6) leaves as the head enters it.
		s.Body = []snake.Point{{X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 6}}
		s.Direction = snake.Down
		s.Pending = snake.Left
		s.Food = snake.Point{X: 0, Y: 0}

		out := engine.Tick(s)
		assert.False(t, out.Collided)
	})
}

func TestSteer(t *testing.T) {
	t.Run("reversal rejected", func(t *testing.T) {
		engine := newEngine(t, snake.DefaultConfig())
		s := engine.NewState()

		assert.False(t, engine.Steer(s, snake.Left, 0))
		assert.Equal(t, snake.Right, s.Pending)
	})

	t.Run("reversal checked against the committed heading", func(t *testing.T) {
		engine := newEngine(t, snake.DefaultConfig())
		s := engine.NewState()

		require.True(t, engine.Steer(s, snake.Up, 0))
		assert.False(t, engine.Steer(s, snake.Left, 0), "left still reverses the committed right heading")
		assert.Equal(t, snake.Up, s.Pending)
	})

	t.Run("eager steering applies after 30 percent of the interval", func(t *testing.T) {
		cfg := snake.DefaultConfig()
		cfg.EagerSteer = true
		engine := newEngine(t, cfg)
		s := engine.NewState()

		engine.Steer(s, snake.Up, 40*time.Millisecond)
		assert.Equal(t, snake.Right, s.Direction)

		engine.Steer(s, snake.Down, 46*time.Millisecond)
		assert.Equal(t, snake.Down, s.Direction)
	})
}

func TestSetInterval(t *testing.T) {
	engine := newEngine(t, snake.DefaultConfig())
	s := engine.NewState()

	engine.SetInterval(s, 10*time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, s.Interval)

	engine.SetInterval(s, time.Second)
	assert.Equal(t, 250*time.Millisecond, s.Interval)

	engine.SetInterval(s, 120*time.Millisecond)
	assert.Equal(t, 120*time.Millisecond, s.Interval)
	assert.Equal(t, "medium", snake.SpeedLabel(s.Interval))
}

func TestSpeedLabel(t *testing.T) {
	cases := map[time.Duration]string{
		50 * time.Millisecond:  "fastest",
		70 * time.Millisecond:  "fastest",
		100 * time.Millisecond: "fast",
		150 * time.Millisecond: "medium",
		200 * time.Millisecond: "slow",
		250 * time.Millisecond: "slowest",
	}
	for d, want := range cases {
		assert.Equal(t, want, snake.SpeedLabel(d), d.String())
	}
}

func TestPlaceFood(t *testing.T) {
	cfg := snake.DefaultConfig()
	cfg.Cols, cfg.Rows = 4, 2

	engine := newEngine(t, cfg)
	body := []snake.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}

	for i := 0; i < 20; i++ {
		food, ok := engine.PlaceFood(body)
		require.True(t, ok)
		assert.Equal(t, snake.Point{X: 0, Y: 1}, food, "only one free cell")
	}

	full := append(body, snake.Point{X: 0, Y: 1})
	food, ok := engine.PlaceFood(full)
	assert.False(t, ok)
	assert.Equal(t, snake.NoFood, food)
}

func TestTickFillsBoard(t *testing.T) {
	cfg := snake.DefaultConfig()
	cfg.Cols, cfg.Rows = 4, 1

	engine := newEngine(t, cfg)
	s := engine.NewState()
	require.Equal(t, []snake.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, s.Body)
	require.Equal(t, snake.Point{X: 3, Y: 0}, s.Food)

	out := engine.Tick(s)
	assert.True(t, out.Ate)
	assert.True(t, out.Filled)
	assert.True(t, out.Over())
	assert.Equal(t, snake.NoFood, s.Food)
}

func TestCollides(t *testing.T) {
	body := func(head snake.Point) []snake.Point {
		return []snake.Point{head, {X: 5, Y: 5}, {X: 5, Y: 6}}
	}

	assert.True(t, snake.Collides(20, 20, body(snake.Point{X: -1, Y: 3})))
	assert.True(t, snake.Collides(20, 20, body(snake.Point{X: 20, Y: 3})))
	assert.True(t, snake.Collides(20, 20, body(snake.Point{X: 3, Y: -1})))
	assert.True(t, snake.Collides(20, 20, body(snake.Point{X: 3, Y: 20})))
	assert.True(t, snake.Collides(20, 20, body(snake.Point{X: 5, Y: 6})))
	assert.False(t, snake.Collides(20, 20, body(snake.Point{X: 19, Y: 19})))
	assert.False(t, snake.Collides(20, 20, body(snake.Point{X: 0, Y: 0})))
}

func TestLengthInvariant(t *testing.T) {
	engine := newEngine(t, snake.DefaultConfig())
	rng := rand.New(rand.NewPCG(7, 7))

	for game := 0; game < 20; game++ {
		s := engine.NewState()
		for step := 0; step < 500; step++ {
			engine.Steer(s, snake.Direction(rng.IntN(4)), 0)
			before := s.Len()

			out := engine.Tick(s)
			if out.Ate {
				require.Equal(t, before+1, s.Len())
				if !out.Filled {
					require.False(t, contains(s.Body, s.Food))
				}
			} else {
				require.Equal(t, before, s.Len())
			}

			require.Equal(t, out.Collided, snake.Collides(20, 20, s.Body))
			if out.Over() {
				break
			}
		}
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, snake.DefaultConfig().Validate())

	smallest := snake.DefaultConfig()
	smallest.Cols, smallest.Rows = 4, 1
	require.NoError(t, smallest.Validate())
	for _, p := range newEngine(t, smallest).NewState().Body {
		assert.GreaterOrEqual(t, p.X, 0, "start body fits the narrowest grid")
	}

	mutations := map[string]func(*snake.Config){
		"narrow grid":        func(c *snake.Config) { c.Cols = 2 },
		"tail off the grid":  func(c *snake.Config) { c.Cols, c.Rows = 3, 1 },
		"no rows":            func(c *snake.Config) { c.Rows = 0 },
		"zero block":         func(c *snake.Config) { c.BlockSize = 0 },
		"zero minimum":       func(c *snake.Config) { c.MinInterval = 0 },
		"initial below min":  func(c *snake.Config) { c.InitialInterval = time.Millisecond },
		"max below initial":  func(c *snake.Config) { c.MaxInterval = 100 * time.Millisecond },
		"negative reward":    func(c *snake.Config) { c.FoodReward = -1 },
		"negative step size": func(c *snake.Config) { c.IntervalStep = -time.Millisecond },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := snake.DefaultConfig()
			mutate(&cfg)
			_, err := snake.NewEngine(cfg, nil)
			assert.ErrorIs(t, err, snake.ErrInvalidConfig)
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "up", snake.Up.String())
	assert.Equal(t, "right", snake.Right.String())
	assert.Equal(t, "Direction(9)", snake.Direction(9).String())

	for _, d := range []snake.Direction{snake.Up, snake.Down, snake.Left, snake.Right} {
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
}
