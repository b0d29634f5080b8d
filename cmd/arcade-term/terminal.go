package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/arcade/frame"
	"github.com/plus3/arcade/games"
	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/render/termsurface"
	"github.com/plus3/arcade/session"
)

const helpText = "arrows move  space action  p pause  enter start  r reset  +/- speed  q quit"

// terminal hosts one session on a tcell screen. All session calls happen on
// the frame goroutine; the event goroutine hands input over through
// Scheduler.Defer.
type terminal struct {
	screen    tcell.Screen
	scheduler *frame.Scheduler
	session   *session.Session
	surface   *termsurface.Surface
	preview   *termsurface.Surface

	// panelX is the first column of the side panel.
	panelX int
	// footerY is the first row below the board.
	footerY int

	stats   session.Stats
	message string
}

func newTerminal(screen tcell.Screen, entry games.Entry, rng *rand.Rand, logger *log.Logger) (*terminal, error) {
	game, err := entry.New(rng)
	if err != nil {
		return nil, err
	}

	t := &terminal{
		screen:    screen,
		scheduler: frame.NewScheduler(),
		surface:   termsurface.New(screen, entry.Width, entry.Height, entry.Block, 1, 1),
	}
	cols, rows := t.surface.Cells()
	t.panelX = cols + 4
	t.footerY = rows + 2

	t.session = session.New(game, t.scheduler, t.surface)
	t.session.SetLogger(logger)
	if entry.Preview > 0 {
		t.preview = termsurface.New(screen, entry.Preview, entry.Preview, entry.Block, t.panelX, 2)
		t.session.SetPreview(t.preview)
	}

	t.session.Subscribe(session.ListenerFuncs{
		OnStats: func(st session.Stats) {
			t.stats = st
			t.message = ""
		},
		OnOver: func(st session.Stats) {
			t.message = st.Summary()
		},
	})
	return t, nil
}

// run draws frames until ctx is cancelled.
func (t *terminal) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			t.scheduler.Once(now)
			t.drawPanel()
			t.screen.Show()
		}
	}
}

// pollEvents forwards key presses to the frame goroutine until the screen is
// finalized or the player quits.
func (t *terminal) pollEvents(quit func()) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.scheduler.Defer(t.screen.Sync)
		case *tcell.EventKey:
			a, ok := actionFor(ev)
			if !ok {
				continue
			}
			if a == input.Quit {
				quit()
				return
			}
			t.scheduler.Defer(func() {
				t.session.Input(a, time.Now())
			})
		}
	}
}

func (t *terminal) drawPanel() {
	y := 1
	if t.preview != nil {
		t.drawText(t.panelX, y, "Next")
		_, rows := t.preview.Cells()
		y += rows + 2
	}

	lines := []string{
		fmt.Sprintf("Score: %d", t.stats.Score),
		fmt.Sprintf("%s: %d", t.stats.CountLabel, t.stats.Count),
	}
	if t.stats.Level > 0 {
		lines = append(lines, fmt.Sprintf("Level: %d", t.stats.Level))
	}
	lines = append(lines,
		fmt.Sprintf("Speed: %s", t.stats.Speed),
		"",
		t.session.State().String(),
	)
	for _, line := range lines {
		t.drawText(t.panelX, y, line)
		y++
	}

	t.drawText(1, t.footerY, t.message)
	t.drawText(1, t.footerY+1, helpText)
}

// drawText writes s at (x, y) and blanks the rest of the line.
func (t *terminal) drawText(x, y int, s string) {
	w, _ := t.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// actionFor maps a key press to a game action.
func actionFor(ev *tcell.EventKey) (input.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Up, true
	case tcell.KeyDown:
		return input.Down, true
	case tcell.KeyLeft:
		return input.Left, true
	case tcell.KeyRight:
		return input.Right, true
	case tcell.KeyEnter:
		return input.Start, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case ' ':
		return input.Primary, true
	case 'w', 'W':
		return input.Up, true
	case 's', 'S':
		return input.Down, true
	case 'a', 'A':
		return input.Left, true
	case 'd', 'D':
		return input.Right, true
	case 'p', 'P':
		return input.Pause, true
	case 'r', 'R':
		return input.Reset, true
	case '+', '=':
		return input.Faster, true
	case '-', '_':
		return input.Slower, true
	case 'q', 'Q':
		return input.Quit, true
	}
	return 0, false
}
