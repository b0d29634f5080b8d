// Package session runs one game on a frame scheduler: it owns the
// idle/playing/paused/over lifecycle, gates ticks on the game's interval,
// routes input and keeps the surface and score readouts current.
package session

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/arcade/frame"
	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/render"
)

//go:generate go tool stringer -type=State -linecomment

// State is the lifecycle position of a session.
type State uint8

const (
	Idle    State = iota // idle
	Playing              // playing
	Paused               // paused
	Over                 // over
)

// Session drives a Game. All methods must be called from the scheduler's
// frame goroutine; frontends reading input elsewhere post through
// frame.Scheduler.Defer.
type Session struct {
	ID uuid.UUID

	game      Game
	scheduler *frame.Scheduler
	surface   render.Surface
	preview   render.Surface
	listeners []Listener
	logger    *log.Logger

	state  State
	handle frame.Handle
	acc    frame.Accumulator
	ticks  int64
	last   Stats
}

// New creates an idle session for game, drawing to surface. The game is reset
// and drawn once so the board is visible before Start.
func New(game Game, scheduler *frame.Scheduler, surface render.Surface) *Session {
	if game == nil {
		panic("session: nil game")
	}
	if scheduler == nil {
		panic("session: nil scheduler")
	}
	if surface == nil {
		panic("session: nil surface")
	}

	s := &Session{
		ID:        uuid.New(),
		game:      game,
		scheduler: scheduler,
		surface:   surface,
		logger:    log.New(os.Stderr, "[session] ", log.LstdFlags),
	}
	game.Reset()
	s.last = game.Stats()
	s.redraw()
	return s
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *log.Logger) {
	s.logger = l
}

// SetPreview gives games implementing Previewer a surface for the next piece.
func (s *Session) SetPreview(dst render.Surface) {
	s.preview = dst
	s.redraw()
}

// Subscribe adds a listener and immediately sends it the current stats.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
	l.StatsChanged(s.last)
}

func (s *Session) Game() Game   { return s.game }
func (s *Session) State() State { return s.state }

// Stats returns the last published stats.
func (s *Session) Stats() Stats { return s.last }

// Ticks returns the number of ticks since the last start or reset.
func (s *Session) Ticks() int64 { return s.ticks }

// Callback returns the scheduler handle of the running game, zero when no
// callback is registered.
func (s *Session) Callback() frame.Handle { return s.handle }

// Start begins a new game from a fresh state. Starting while a game is in
// progress restarts it.
func (s *Session) Start() {
	s.cancel()
	s.game.Reset()
	s.ticks = 0
	s.state = Playing
	s.schedule()

	s.logger.Printf("%s %s started", s.game.Name(), s.ID)
	s.publish(true)
	s.redraw()
}

// TogglePause flips between Playing and Paused. It does nothing in other
// states. Resuming restarts the tick interval so no overdue tick fires.
func (s *Session) TogglePause() {
	switch s.state {
	case Playing:
		s.cancel()
		s.state = Paused
		s.logger.Printf("%s %s paused", s.game.Name(), s.ID)
	case Paused:
		s.state = Playing
		s.schedule()
		s.logger.Printf("%s %s resumed", s.game.Name(), s.ID)
	default:
		return
	}
	s.redraw()
}

// Reset stops any running game and returns to Idle with a fresh board.
func (s *Session) Reset() {
	s.cancel()
	s.game.Reset()
	s.ticks = 0
	s.state = Idle

	s.logger.Printf("%s %s reset", s.game.Name(), s.ID)
	s.publish(true)
	s.redraw()
}

// Input applies a frontend action at time now.
func (s *Session) Input(a input.Action, now time.Time) {
	switch a {
	case input.Start:
		if s.state == Idle || s.state == Over {
			s.Start()
		}
		return
	case input.Reset:
		s.Reset()
		return
	case input.Pause:
		s.TogglePause()
		return
	case input.Quit:
		return
	case input.Primary:
		if p, ok := s.game.(PrimaryPauser); ok && p.PrimaryPauses() {
			s.TogglePause()
			return
		}
	}

	speed := a == input.Faster || a == input.Slower
	if s.state != Playing && !(speed && s.state == Paused) {
		return
	}

	changed, over := s.game.Handle(Event{Action: a, Now: now, SinceTick: s.acc.Since(now)})
	if changed || over {
		s.redraw()
		s.publish(false)
	}
	if over {
		s.end()
	}
}

func (s *Session) schedule() {
	s.acc.Reset()
	s.handle = s.scheduler.Register(s.game.Name(), s.onFrame)
}

func (s *Session) cancel() {
	if s.handle != 0 {
		s.scheduler.Cancel(s.handle)
		s.handle = 0
	}
}

func (s *Session) onFrame(f *frame.Frame) {
	if s.state != Playing {
		return
	}
	if !s.acc.Due(f.Now, s.game.Interval()) {
		return
	}

	s.ticks++
	over := s.game.Tick()
	s.redraw()
	s.publish(false)
	if over {
		s.end()
	}
}

func (s *Session) end() {
	s.cancel()
	s.state = Over

	st := s.game.Stats()
	s.logger.Printf("%s %s over after %d ticks: %s", s.game.Name(), s.ID, s.ticks, st.Summary())
	for _, l := range s.listeners {
		l.GameOver(st)
	}
}

func (s *Session) publish(force bool) {
	st := s.game.Stats()
	if !force && st == s.last {
		return
	}
	s.last = st
	for _, l := range s.listeners {
		l.StatsChanged(st)
	}
}

func (s *Session) redraw() {
	s.game.Draw(s.surface)
	if s.preview == nil {
		return
	}
	if p, ok := s.game.(Previewer); ok {
		p.DrawPreview(s.preview)
	}
}
