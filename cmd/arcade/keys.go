package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/arcade/input"
)

// Held keys repeat after repeatDelay ticks, every repeatInterval ticks, like a
// keyboard's auto-repeat.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

type binding struct {
	keys   []ebiten.Key
	action input.Action
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: input.Up, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: input.Down, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: input.Left, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: input.Right, repeat: true},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: input.Primary},
	{keys: []ebiten.Key{ebiten.KeyP}, action: input.Pause},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, action: input.Start},
	{keys: []ebiten.Key{ebiten.KeyR}, action: input.Reset},
	{keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, action: input.Faster},
	{keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, action: input.Slower},
	{keys: []ebiten.Key{ebiten.KeyEscape}, action: input.Quit},
}

// keyboard turns ebiten key state into actions once per tick.
type keyboard struct {
	pressDuration func(ebiten.Key) int
	buf           []input.Action
}

func newKeyboard() *keyboard {
	return &keyboard{pressDuration: inpututil.KeyPressDuration}
}

// Actions returns the actions triggered this tick. The slice is reused.
func (k *keyboard) Actions() []input.Action {
	k.buf = k.buf[:0]
	for _, b := range bindings {
		for _, key := range b.keys {
			if fires(k.pressDuration(key), b.repeat) {
				k.buf = append(k.buf, b.action)
				break
			}
		}
	}
	return k.buf
}

// fires reports whether a key held for d ticks triggers its action this tick.
func fires(d int, repeat bool) bool {
	switch {
	case d == 1:
		return true
	case !repeat || d < repeatDelay:
		return false
	}
	return (d-repeatDelay)%repeatInterval == 0
}
