//go:build js

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// debugOverlay is inert in the browser, where the ImGui backend is unavailable.
type debugOverlay struct{}

func (a *app) enableDebug() {
	log.Println("The debug overlay is not available in the browser.")
}

func (debugOverlay) begin()              {}
func (debugOverlay) end()                {}
func (debugOverlay) wantsKeyboard() bool { return false }
func (debugOverlay) render()             {}
func (debugOverlay) draw(*ebiten.Image)  {}
func (debugOverlay) layout(int, int)     {}
