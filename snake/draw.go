package snake

import "github.com/plus3/arcade/render"

var (
	colorBackground = render.Hex("#1a1a1a")
	colorHead       = render.Hex("#4CAF50")
	colorBody       = render.Hex("#8BC34A")
	colorFood       = render.Hex("#F44336")
	colorGrid       = render.Hex("#333333")
)

// Draw paints the whole board: background, grid, food, then the body with a
// distinct head.
func Draw(dst render.Surface, cfg Config, s *State) {
	bs := cfg.BlockSize

	dst.Clear()
	dst.FillRect(0, 0, cfg.Cols*bs, cfg.Rows*bs, colorBackground)

	for y := 0; y < cfg.Rows; y++ {
		for x := 0; x < cfg.Cols; x++ {
			dst.StrokeRect(x*bs, y*bs, bs, bs, colorGrid)
		}
	}

	if s.Food != NoFood {
		dst.FillRect(s.Food.X*bs, s.Food.Y*bs, bs, bs, colorFood)
	}

	for i, seg := range s.Body {
		c := colorBody
		if i == 0 {
			c = colorHead
		}
		dst.FillRect(seg.X*bs, seg.Y*bs, bs, bs, c)
	}
}
