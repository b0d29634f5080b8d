// Package ebitensurface implements render.Surface on an offscreen ebiten
// image. Sessions draw into it from Update; the host blits it in Draw.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is an offscreen canvas.
type Surface struct {
	img        *ebiten.Image
	background color.Color
}

// New allocates a w by h canvas cleared to background.
func New(w, h int, background color.Color) *Surface {
	s := &Surface{img: ebiten.NewImage(w, h), background: background}
	s.Clear()
	return s
}

// Image returns the canvas for blitting.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear() {
	s.img.Fill(s.background)
}

func (s *Surface) FillRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeRect draws a one pixel outline inside the rectangle.
func (s *Surface) StrokeRect(x, y, w, h int, c color.Color) {
	vector.StrokeRect(s.img, float32(x)+0.5, float32(y)+0.5, float32(w)-1, float32(h)-1, 1, c, false)
}

// DrawTo draws the canvas onto dst at (x, y).
func (s *Surface) DrawTo(dst *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(s.img, op)
}
