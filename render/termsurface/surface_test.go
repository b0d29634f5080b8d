package termsurface_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/arcade/render"
	"github.com/plus3/arcade/render/termsurface"
	"github.com/plus3/arcade/snake"
	"github.com/plus3/arcade/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestCells(t *testing.T) {
	surface := termsurface.New(newScreen(t), 300, 600, 30, 0, 0)

	cols, rows := surface.Cells()
	assert.Equal(t, 20, cols)
	assert.Equal(t, 20, rows)

	w, h := surface.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 600, h)
}

func TestFillRect(t *testing.T) {
	screen := newScreen(t)
	surface := termsurface.New(screen, 300, 600, 30, 2, 1)
	red := render.Hex("#ff0000")

	surface.Clear()
	surface.FillRect(30, 60, 29, 29, red)

	want := tcell.FromImageColor(red)
	assert.Equal(t, want, background(screen, 2+2, 1+2))
	assert.Equal(t, want, background(screen, 2+3, 1+2))
	assert.NotEqual(t, want, background(screen, 2+4, 1+2))
	assert.NotEqual(t, want, background(screen, 2+2, 1+3))

	t.Run("clipped to the region", func(t *testing.T) {
		surface.FillRect(-30, -30, 1000, 1000, red)
		assert.Equal(t, want, background(screen, 2, 1))
		assert.NotEqual(t, want, background(screen, 2+20, 1))
		assert.NotEqual(t, want, background(screen, 1, 1))
	})
}

func TestStrokeRect(t *testing.T) {
	screen := newScreen(t)
	surface := termsurface.New(screen, 60, 60, 30, 0, 0)
	grid := render.Hex("#333333")

	surface.Clear()
	surface.FillRect(0, 0, 30, 30, render.Hex("#00ff00"))
	surface.StrokeRect(0, 0, 30, 30, grid)
	surface.StrokeRect(30, 30, 30, 30, grid)

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, ' ', r, "filled cells keep their fill")

	r, _, style, _ := screen.GetContent(2, 1)
	assert.Equal(t, '·', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.FromImageColor(grid), fg)

	surface.Clear()
	r, _, _, _ = screen.GetContent(2, 1)
	assert.Equal(t, ' ', r)
}

func TestDrawGames(t *testing.T) {
	t.Run("snake", func(t *testing.T) {
		screen := newScreen(t)
		cfg := snake.DefaultConfig()
		surface := termsurface.New(screen, cfg.Cols*cfg.BlockSize, cfg.Rows*cfg.BlockSize, cfg.BlockSize, 0, 0)

		s := &snake.State{Body: []snake.Point{{X: 3, Y: 4}}, Food: snake.NoFood}
		snake.Draw(surface, cfg, s)

		assert.Equal(t, tcell.FromImageColor(render.Hex("#4CAF50")), background(screen, 6, 4))
		assert.Equal(t, tcell.FromImageColor(render.Hex("#4CAF50")), background(screen, 7, 4))
		assert.Equal(t, tcell.FromImageColor(render.Hex("#1a1a1a")), background(screen, 0, 0))
	})

	t.Run("tetris", func(t *testing.T) {
		screen := newScreen(t)
		cfg := tetris.DefaultConfig()
		surface := termsurface.New(screen, cfg.Cols*cfg.BlockSize, cfg.Rows*cfg.BlockSize, cfg.BlockSize, 0, 0)

		s := &tetris.State{Board: tetris.NewBoard(cfg.Cols, cfg.Rows), Current: tetris.NewPiece(tetris.O, cfg.Cols)}
		tetris.Draw(surface, cfg, s)

		want := tcell.FromImageColor(tetris.Palette[tetris.O])
		assert.Equal(t, want, background(screen, 8, 0))
		assert.Equal(t, want, background(screen, 11, 1))
		r, _, _, _ := screen.GetContent(0, 0)
		assert.Equal(t, '·', r)
	})
}
