// Package render defines the drawing capability the games are given at
// construction. A game never looks up a screen on its own; whoever hosts it
// injects a Surface.
package render

import "image/color"

// Surface is a 2D drawing target measured in pixels.
type Surface interface {
	// Size returns the drawable width and height.
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h int, c color.Color)
	StrokeRect(x, y, w, h int, c color.Color)
}

// Hex parses a "#rrggbb" colour. It panics on malformed input, so use it only
// for palette literals.
func Hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		panic("render: malformed colour " + s)
	}

	var rgb [3]uint8
	for i := range rgb {
		rgb[i] = hexByte(s[1+2*i], s[2+2*i])
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	panic("render: bad hex digit " + string(c))
}
