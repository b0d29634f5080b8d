// Package termsurface implements render.Surface on a tcell screen. One game
// block maps to two terminal columns and one row, which keeps blocks roughly
// square in most fonts.
package termsurface

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const gridRune = '·'

// Surface translates pixel rectangles in a w by h logical canvas into cells
// of a screen region starting at (OX, OY).
type Surface struct {
	screen tcell.Screen
	block  int
	w, h   int
	ox, oy int

	cols, rows int
	painted    []bool
}

// New creates a surface of w by h logical pixels with block-sized cells,
// drawn at column ox, row oy of screen.
func New(screen tcell.Screen, w, h, block, ox, oy int) *Surface {
	if block <= 0 {
		panic("termsurface: block size must be positive")
	}

	cols := (w*2 + block - 1) / block
	rows := (h + block - 1) / block
	return &Surface{
		screen:  screen,
		block:   block,
		w:       w,
		h:       h,
		ox:      ox,
		oy:      oy,
		cols:    cols,
		rows:    rows,
		painted: make([]bool, cols*rows),
	}
}

// Cells returns the size of the screen region in terminal cells.
func (s *Surface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

func (s *Surface) Clear() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.screen.SetContent(s.ox+x, s.oy+y, ' ', nil, tcell.StyleDefault)
		}
	}
	clear(s.painted)
}

// FillRect paints every cell the rectangle touches with c as background.
func (s *Surface) FillRect(x, y, w, h int, c color.Color) {
	x0, y0, x1, y1 := s.span(x, y, w, h)
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetContent(s.ox+cx, s.oy+cy, ' ', nil, style)
			s.painted[cy*s.cols+cx] = true
		}
	}
}

// StrokeRect marks the top-left cell of the rectangle with a grid dot in c,
// unless a fill already painted it since the last Clear. Outlines are too fine
// for character cells.
func (s *Surface) StrokeRect(x, y, w, h int, c color.Color) {
	x0, y0, x1, y1 := s.span(x, y, w, h)
	if x0 >= x1 || y0 >= y1 || s.painted[y0*s.cols+x0] {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(c))
	s.screen.SetContent(s.ox+x0, s.oy+y0, gridRune, nil, style)
}

// span converts a pixel rectangle to a clipped half-open cell range.
func (s *Surface) span(x, y, w, h int) (x0, y0, x1, y1 int) {
	x0 = max(0, x*2/s.block)
	y0 = max(0, y/s.block)
	x1 = min(s.cols, ((x+w)*2+s.block-1)/s.block)
	y1 = min(s.rows, (y+h+s.block-1)/s.block)
	return x0, y0, x1, y1
}
