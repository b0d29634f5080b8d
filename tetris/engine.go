// Package tetris implements a falling-block game on a fixed well. A State holds
// the locked cells, the falling piece and a preview of the next one; the Engine
// applies movement, rotation, locking, line clears and scoring to it.
package tetris

import (
	"math/rand/v2"
	"time"
)

// linePoints is the base score for clearing 0..4 rows at once, multiplied by
// the current level.
var linePoints = [...]int{0, 100, 300, 500, 800}

const (
	softDropPoints = 1
	hardDropPoints = 2
	linesPerLevel  = 10
)

// State is one session of the game.
type State struct {
	Board   Board
	Current Piece
	Next    Piece

	Score    int
	Lines    int
	Level    int
	Interval time.Duration
}

// Result describes what a Fall or HardDrop did.
type Result struct {
	// Moved is true when the piece advanced without locking.
	Moved bool
	// Locked is true when the piece was written into the board and the next
	// one spawned.
	Locked bool
	// Cleared is the number of rows removed by the lock.
	Cleared int
	// Dropped is the number of rows a hard drop travelled.
	Dropped int
	// Over is true when the newly spawned piece collides at its origin.
	Over bool
}

// Engine applies the Tetris rules to a State.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// NewEngine validates cfg and returns an engine drawing pieces from rng. A nil
// rng uses a randomly seeded source.
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

// NewState returns a fresh session with an empty well and a spawned piece.
func (e *Engine) NewState() *State {
	s := &State{}
	e.Reset(s)
	return s
}

// Reset reinitializes s in place: empty well, level 1, zero score, and a new
// current and preview piece.
func (e *Engine) Reset(s *State) {
	if len(s.Board.Cells) != e.cfg.Cols*e.cfg.Rows {
		s.Board = NewBoard(e.cfg.Cols, e.cfg.Rows)
	} else {
		s.Board.Clear()
	}

	s.Score = 0
	s.Lines = 0
	s.Level = 1
	s.Interval = e.cfg.InitialInterval

	s.Next = e.randomPiece()
	e.spawn(s)
}

func (e *Engine) randomPiece() Piece {
	return NewPiece(Kind(e.rng.IntN(KindCount)+1), e.cfg.Cols)
}

// spawn promotes the preview to the falling piece and draws a new preview. It
// reports false when the promoted piece collides where it appears.
func (e *Engine) spawn(s *State) bool {
	s.Current = s.Next
	s.Next = e.randomPiece()
	return !Collides(&s.Board, &s.Current, 0, 0)
}

// Move shifts the falling piece by dx columns. It reports false, leaving the
// piece in place, when the target is blocked.
func (e *Engine) Move(s *State, dx int) bool {
	if Collides(&s.Board, &s.Current, dx, 0) {
		return false
	}
	s.Current.X += dx
	return true
}

// SoftDrop moves the falling piece down one row for one point. A blocked soft
// drop does nothing; the piece locks on the next fall.
func (e *Engine) SoftDrop(s *State) bool {
	if Collides(&s.Board, &s.Current, 0, 1) {
		return false
	}
	s.Current.Y++
	s.Score += softDropPoints
	return true
}

// RotatePiece turns the falling piece clockwise. When the rotated shape is
// blocked it tries shifting left one column, then right one column, then down
// one row; if none fit the rotation is abandoned and false is returned.
func (e *Engine) RotatePiece(s *State) bool {
	p := &s.Current
	unrotated := p.Shape
	p.Shape = Rotate(unrotated)

	if !Collides(&s.Board, p, 0, 0) {
		return true
	}

	for _, kick := range [...]struct{ dx, dy int }{{-1, 0}, {1, 0}, {0, 1}} {
		if !Collides(&s.Board, p, kick.dx, kick.dy) {
			p.X += kick.dx
			p.Y += kick.dy
			return true
		}
	}

	p.Shape = unrotated
	return false
}

// Fall advances the falling piece one row, locking it when it cannot move.
func (e *Engine) Fall(s *State) Result {
	if !Collides(&s.Board, &s.Current, 0, 1) {
		s.Current.Y++
		return Result{Moved: true}
	}
	return e.settle(s)
}

// HardDrop drops the falling piece as far as it goes, scores two points per row
// travelled and locks it.
func (e *Engine) HardDrop(s *State) Result {
	dist := 0
	for !Collides(&s.Board, &s.Current, 0, dist+1) {
		dist++
	}
	s.Current.Y += dist
	s.Score += hardDropPoints * dist

	res := e.settle(s)
	res.Dropped = dist
	return res
}

// settle locks the falling piece, clears rows and spawns the next piece.
func (e *Engine) settle(s *State) Result {
	Lock(&s.Board, &s.Current)
	cleared := ClearLines(&s.Board)
	e.score(s, cleared)

	return Result{
		Locked:  true,
		Cleared: cleared,
		Over:    !e.spawn(s),
	}
}

func (e *Engine) score(s *State, cleared int) {
	if cleared == 0 {
		return
	}

	s.Score += linePoints[cleared] * s.Level
	s.Lines += cleared

	if level := s.Lines/linesPerLevel + 1; level > s.Level {
		s.Level = level
		s.Interval = e.cfg.IntervalForLevel(level)
	}
}
