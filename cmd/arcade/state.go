package main

import (
	"fmt"

	"github.com/plus3/arcade/session"
	"github.com/plus3/arcade/snake"
	"github.com/plus3/arcade/tetris"
)

const pieceNames = "IJLOSTZ"

// gameStateLines describes the live state of g for the debug overlay.
func gameStateLines(g session.Game) []string {
	switch g := g.(type) {
	case *snake.Game:
		s := g.State()
		food := "none"
		if s.Food != snake.NoFood {
			food = fmt.Sprintf("(%d, %d)", s.Food.X, s.Food.Y)
		}
		return []string{
			fmt.Sprintf("head: (%d, %d)", s.Head().X, s.Head().Y),
			fmt.Sprintf("length: %d", len(s.Body)),
			fmt.Sprintf("heading: %s, next: %s", s.Direction, s.Pending),
			fmt.Sprintf("food: %s", food),
			fmt.Sprintf("interval: %s", s.Interval),
		}
	case *tetris.Game:
		s := g.State()
		filled := 0
		for _, c := range s.Board.Cells {
			if c != 0 {
				filled++
			}
		}
		return []string{
			fmt.Sprintf("piece: %s at (%d, %d)", pieceName(s.Current.Color), s.Current.X, s.Current.Y),
			fmt.Sprintf("next: %s", pieceName(s.Next.Color)),
			fmt.Sprintf("filled cells: %d", filled),
			fmt.Sprintf("lines: %d, level: %d", s.Lines, s.Level),
			fmt.Sprintf("interval: %s", s.Interval),
		}
	}
	return []string{fmt.Sprintf("no inspector for %s", g.Name())}
}

func pieceName(color uint8) string {
	if color == 0 || int(color) > len(pieceNames) {
		return "?"
	}
	return pieceNames[color-1 : color]
}
