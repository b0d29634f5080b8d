package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/arcade/audio"
	"github.com/plus3/arcade/frame"
	"github.com/plus3/arcade/games"
	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/render"
	"github.com/plus3/arcade/render/ebitensurface"
	"github.com/plus3/arcade/session"
)

const (
	margin     = 20
	panelWidth = 180
	lineHeight = 16
)

var (
	colorBackground = render.Hex("#1b1b1b")
	colorBoard      = color.Black
)

// app implements ebiten.Game around one session.
type app struct {
	entry     games.Entry
	scheduler *frame.Scheduler
	session   *session.Session
	surface   *ebitensurface.Surface
	preview   *ebitensurface.Surface
	keys      *keyboard
	debug     debugOverlay

	stats   session.Stats
	message string
	quit    bool
}

func newApp(entry games.Entry, rng *rand.Rand, player *audio.Player) (*app, error) {
	game, err := entry.New(rng)
	if err != nil {
		return nil, err
	}

	a := &app{
		entry:     entry,
		scheduler: frame.NewScheduler(),
		surface:   ebitensurface.New(entry.Width, entry.Height, colorBoard),
		keys:      newKeyboard(),
	}
	a.session = session.New(game, a.scheduler, a.surface)
	if entry.Preview > 0 {
		a.preview = ebitensurface.New(entry.Preview, entry.Preview, colorBoard)
		a.session.SetPreview(a.preview)
	}

	a.session.Subscribe(session.ListenerFuncs{
		OnStats: func(st session.Stats) {
			a.stats = st
			a.message = ""
		},
		OnOver: func(st session.Stats) {
			a.message = st.Summary()
		},
	})
	a.session.Subscribe(player.Listener())
	return a, nil
}

func (a *app) Update() error {
	a.debug.begin()

	now := time.Now()
	if !a.debug.wantsKeyboard() {
		for _, act := range a.keys.Actions() {
			if act == input.Quit {
				a.quit = true
				continue
			}
			a.session.Input(act, now)
		}
	}
	a.scheduler.Once(now)

	a.debug.render()
	a.debug.end()

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.surface.DrawTo(screen, margin, margin)

	x := margin*2 + a.entry.Width
	y := margin
	if a.preview != nil {
		ebitenutil.DebugPrintAt(screen, "Next", x, y)
		y += lineHeight
		a.preview.DrawTo(screen, x, y)
		y += a.entry.Preview + margin
	}

	for _, line := range a.statusLines() {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += lineHeight
	}
	if a.message != "" {
		ebitenutil.DebugPrintAt(screen, a.message, margin, margin+a.entry.Height+margin/2)
	}

	a.debug.draw(screen)
}

func (a *app) statusLines() []string {
	lines := []string{
		fmt.Sprintf("Score: %d", a.stats.Score),
		fmt.Sprintf("%s: %d", a.stats.CountLabel, a.stats.Count),
	}
	if a.stats.Level > 0 {
		lines = append(lines, fmt.Sprintf("Level: %d", a.stats.Level))
	}
	lines = append(lines,
		fmt.Sprintf("Speed: %s", a.stats.Speed),
		"",
		a.session.State().String(),
	)
	return lines
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.debug.layout(outsideWidth, outsideHeight)
	return a.entry.Width + panelWidth + margin*3, a.entry.Height + margin*3
}
