package tetris_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/arcade/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *tetris.Engine {
	t.Helper()
	engine, err := tetris.NewEngine(tetris.DefaultConfig(), rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	return engine
}

func TestNewState(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()

	assert.Equal(t, 1, s.Level)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Lines)
	assert.Equal(t, time.Second, s.Interval)
	assert.Len(t, s.Board.Cells, 200)
	assert.NotEmpty(t, s.Current.Shape)
	assert.NotEmpty(t, s.Next.Shape)
	assert.False(t, tetris.Collides(&s.Board, &s.Current, 0, 0))
}

func TestReset(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()
	s.Board.Set(3, 19, 2)
	s.Score, s.Lines, s.Level = 900, 12, 2
	s.Interval = 900 * time.Millisecond

	engine.Reset(s)

	assert.Equal(t, make([]uint8, 200), s.Board.Cells)
	assert.Zero(t, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, time.Second, s.Interval)
}

func TestHardDrop(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()
	s.Current = tetris.NewPiece(tetris.O, 10)
	require.Equal(t, 4, s.Current.X)

	res := engine.HardDrop(s)

	assert.Equal(t, 18, res.Dropped)
	assert.True(t, res.Locked)
	assert.False(t, res.Over)
	assert.Equal(t, 36, s.Score)
	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, uint8(tetris.O), s.Board.At(c[0], c[1]), "cell %v", c)
	}
	assert.Zero(t, s.Board.At(3, 19))
	assert.Zero(t, s.Current.Y, "next piece spawned at the top")
}

func TestFall(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()
	s.Current = tetris.NewPiece(tetris.O, 10)
	s.Current.Y = 17

	res := engine.Fall(s)
	assert.True(t, res.Moved)
	assert.Equal(t, 18, s.Current.Y)

	res = engine.Fall(s)
	assert.False(t, res.Moved)
	assert.True(t, res.Locked)
	assert.Equal(t, uint8(tetris.O), s.Board.At(4, 19))
	assert.Zero(t, s.Score, "natural falls do not score")
}

func TestLineScoring(t *testing.T) {
	points := map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

	for n, base := range points {
		for _, level := range []int{1, 2, 5} {
			engine := newEngine(t)
			s := engine.NewState()
			for y := 20 - n; y < 20; y++ {
				fillRow(&s.Board, y, 1)
			}
			s.Level = level
			s.Current = tetris.NewPiece(tetris.O, 10)
			s.Current.Y = 20 - n - 2

			res := engine.Fall(s)

			require.Equal(t, n, res.Cleared)
			assert.Equal(t, base*level, s.Score, "%d lines at level %d", n, level)
			assert.Equal(t, n, s.Lines)
			assert.Equal(t, uint8(tetris.O), s.Board.At(4, 19), "locked piece shifted down")
		}
	}
}

func TestLevelUp(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()
	s.Lines = 9
	fillRow(&s.Board, 19, 1)
	s.Current = tetris.NewPiece(tetris.O, 10)
	s.Current.Y = 17

	engine.Fall(s)

	assert.Equal(t, 10, s.Lines)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 100, s.Score, "scored at the level before the clear")
	assert.Equal(t, 900*time.Millisecond, s.Interval)
}

func TestIntervalForLevel(t *testing.T) {
	cfg := tetris.DefaultConfig()
	assert.Equal(t, time.Second, cfg.IntervalForLevel(1))
	assert.Equal(t, 500*time.Millisecond, cfg.IntervalForLevel(6))
	assert.Equal(t, 100*time.Millisecond, cfg.IntervalForLevel(10))
	assert.Equal(t, 100*time.Millisecond, cfg.IntervalForLevel(40))
}

func TestGameOverOnSpawn(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()
	// Every shape has a block in rows 0-1 within columns 3-6 at its spawn origin.
	for y := 0; y < 2; y++ {
		for x := 3; x <= 6; x++ {
			s.Board.Set(x, y, 7)
		}
	}
	s.Current = tetris.NewPiece(tetris.O, 10)
	s.Current.X, s.Current.Y = 0, 18

	res := engine.Fall(s)
	assert.True(t, res.Locked)
	assert.True(t, res.Over)
}

func TestMove(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()
	s.Current = tetris.NewPiece(tetris.O, 10)

	for i := 0; i < 4; i++ {
		require.True(t, engine.Move(s, -1))
	}
	assert.Equal(t, 0, s.Current.X)
	assert.False(t, engine.Move(s, -1))
	assert.Equal(t, 0, s.Current.X)

	s.Board.Set(3, 0, 1)
	assert.True(t, engine.Move(s, 1))
	assert.False(t, engine.Move(s, 1))
}

func TestSoftDrop(t *testing.T) {
	engine := newEngine(t)
	s := engine.NewState()
	s.Current = tetris.NewPiece(tetris.O, 10)
	s.Current.Y = 17

	assert.True(t, engine.SoftDrop(s))
	assert.Equal(t, 1, s.Score)
	assert.False(t, engine.SoftDrop(s))
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 18, s.Current.Y)
	assert.Zero(t, s.Board.At(4, 19), "blocked soft drop does not lock")
}

func TestRotatePiece(t *testing.T) {
	t.Run("free rotation", func(t *testing.T) {
		engine := newEngine(t)
		s := engine.NewState()
		s.Current = tetris.NewPiece(tetris.T, 10)
		s.Current.Y = 5

		assert.True(t, engine.RotatePiece(s))
		assert.Equal(t, tetris.Rotate(tetris.Shape(tetris.T)), s.Current.Shape)
		assert.Equal(t, 3, s.Current.X)
	})

	t.Run("kicks off the right wall", func(t *testing.T) {
		engine := newEngine(t)
		s := engine.NewState()
		s.Current = tetris.NewPiece(tetris.I, 10)
		s.Current.Shape = tetris.Rotate(s.Current.Shape)
		s.Current.X, s.Current.Y = 7, 5

		assert.True(t, engine.RotatePiece(s))
		assert.Equal(t, 6, s.Current.X)
		assert.False(t, tetris.Collides(&s.Board, &s.Current, 0, 0))
	})

	t.Run("reverts when every kick is blocked", func(t *testing.T) {
		engine := newEngine(t)
		s := engine.NewState()
		s.Current = tetris.NewPiece(tetris.T, 10)
		s.Current.X, s.Current.Y = 0, 0
		for i := range s.Board.Cells {
			s.Board.Cells[i] = 1
		}
		for _, c := range [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}} {
			s.Board.Set(c[0], c[1], 0)
		}

		assert.False(t, engine.RotatePiece(s))
		assert.Equal(t, tetris.Shape(tetris.T), s.Current.Shape)
		assert.Equal(t, 0, s.Current.X)
		assert.Equal(t, 0, s.Current.Y)
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, tetris.DefaultConfig().Validate())

	mutations := map[string]func(*tetris.Config){
		"narrow well":       func(c *tetris.Config) { c.Cols = 3 },
		"shallow well":      func(c *tetris.Config) { c.Rows = 2 },
		"zero block":        func(c *tetris.Config) { c.BlockSize = 0 },
		"zero minimum":      func(c *tetris.Config) { c.MinInterval = 0 },
		"initial below min": func(c *tetris.Config) { c.InitialInterval = time.Millisecond },
		"negative step":     func(c *tetris.Config) { c.IntervalStep = -time.Millisecond },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			mutate(&cfg)
			_, err := tetris.NewEngine(cfg, nil)
			assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
		})
	}
}
