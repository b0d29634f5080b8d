// Package snake implements the Snake game engine: a body that moves one cell
// per tick on a bounded grid, grows on food and dies on walls or itself.
//
// All mutable game data lives in State. The Engine holds only configuration
// and the random source, so a host can keep as many states as it likes.
package snake

import "time"

//go:generate go tool stringer -type=Direction -linecomment

// Direction is a heading on the grid.
type Direction uint8

const (
	Up    Direction = iota // up
	Down                   // down
	Left                   // left
	Right                  // right
)

// Opposite returns the heading that would reverse d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the grid offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// NoFood marks a state whose food could not be placed because the body covers
// the whole grid.
var NoFood = Point{X: -1, Y: -1}

// State is one Snake session. Body is head-first.
type State struct {
	Body      []Point
	Direction Direction
	// Pending is the buffered heading committed on the next tick.
	Pending  Direction
	Food     Point
	Score    int
	Interval time.Duration
}

// Head returns the first body segment.
func (s *State) Head() Point {
	return s.Body[0]
}

// Len returns the body length.
func (s *State) Len() int {
	return len(s.Body)
}

// Outcome reports what happened during one tick.
type Outcome struct {
	Ate      bool
	Collided bool
	// Filled is set when the body covers every cell and no food can be placed.
	Filled bool
}

// Over reports whether the tick ended the session.
func (o Outcome) Over() bool {
	return o.Collided || o.Filled
}
