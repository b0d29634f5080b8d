//go:build !js

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/arcade/debugui"
	debugui_ebiten "github.com/plus3/arcade/debugui/ebiten"
)

// debugOverlay draws the ImGui windows when enabled. The zero value is off.
type debugOverlay struct {
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func (a *app) enableDebug() {
	w, h := a.Layout(0, 0)
	a.debug.backend = debugui_ebiten.NewBackend(a.entry.Name, w, h)
	a.debug.overlay = debugui.New(a.scheduler, a.session)
	a.debug.overlay.Add(debugui.TextWindow("Game State", func() []string {
		return gameStateLines(a.session.Game())
	}))
}

func (d *debugOverlay) begin() {
	if d.backend != nil {
		d.backend.BeginFrame()
	}
}

func (d *debugOverlay) end() {
	if d.backend != nil {
		d.backend.EndFrame()
	}
}

func (d *debugOverlay) wantsKeyboard() bool {
	return d.overlay != nil && d.overlay.Input.WantCaptureKeyboard
}

func (d *debugOverlay) render() {
	if d.overlay != nil {
		d.overlay.Render(1 / float64(ebiten.TPS()))
	}
}

func (d *debugOverlay) draw(screen *ebiten.Image) {
	if d.backend != nil {
		d.backend.Draw(screen)
	}
}

func (d *debugOverlay) layout(w, h int) {
	if d.backend != nil {
		d.backend.Layout(w, h)
	}
}
