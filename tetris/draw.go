package tetris

import (
	"image/color"

	"github.com/plus3/arcade/render"
)

// Palette maps a colour index to its fill. Index 0 is the empty cell.
var Palette = [KindCount + 1]color.RGBA{
	render.Hex("#000000"),
	render.Hex("#00ffff"),
	render.Hex("#0000ff"),
	render.Hex("#ff7f00"),
	render.Hex("#ffff00"),
	render.Hex("#00ff00"),
	render.Hex("#800080"),
	render.Hex("#ff0000"),
}

var (
	colorGrid    = render.Hex("#333333")
	colorOutline = render.Hex("#ffffff")
)

func drawCell(dst render.Surface, px, py, bs int, idx uint8) {
	dst.FillRect(px, py, bs-1, bs-1, Palette[idx])
	dst.StrokeRect(px, py, bs-1, bs-1, colorOutline)
}

// Draw paints the well: grid, locked cells, then the falling piece. Parts of the
// piece above the top row or outside the columns are skipped.
func Draw(dst render.Surface, cfg Config, s *State) {
	bs := cfg.BlockSize

	dst.Clear()
	for y := 0; y < cfg.Rows; y++ {
		for x := 0; x < cfg.Cols; x++ {
			dst.StrokeRect(x*bs, y*bs, bs, bs, colorGrid)
		}
	}

	for y := 0; y < s.Board.Rows; y++ {
		for x := 0; x < s.Board.Cols; x++ {
			if v := s.Board.At(x, y); v != 0 {
				drawCell(dst, x*bs, y*bs, bs, v)
			}
		}
	}

	p := &s.Current
	for y, row := range p.Shape {
		by := p.Y + y
		if by < 0 || by >= cfg.Rows {
			continue
		}
		for x, v := range row {
			bx := p.X + x
			if v != 0 && bx >= 0 && bx < cfg.Cols {
				drawCell(dst, bx*bs, by*bs, bs, p.Color)
			}
		}
	}
}

// DrawPreview paints p centred on dst.
func DrawPreview(dst render.Surface, cfg Config, p *Piece) {
	bs := cfg.BlockSize
	dst.Clear()
	if len(p.Shape) == 0 {
		return
	}

	w, h := dst.Size()
	ox := (w - len(p.Shape[0])*bs) / 2
	oy := (h - len(p.Shape)*bs) / 2

	for y, row := range p.Shape {
		for x, v := range row {
			if v != 0 {
				drawCell(dst, ox+x*bs, oy+y*bs, bs, p.Color)
			}
		}
	}
}
