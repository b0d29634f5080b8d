package render

import "image/color"

// OpKind is the kind of a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind       OpKind
	X, Y, W, H int
	Color      color.Color
}

// Recorder is a Surface that keeps every call since the last Clear. It backs
// headless runs and tests.
type Recorder struct {
	Width, Height int
	Ops           []Op
	Clears        int
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{Width: w, Height: h}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Clear drops the recorded operations and counts the call.
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Clears++
}

func (r *Recorder) FillRect(x, y, w, h int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, X: x, Y: y, W: w, H: h, Color: c})
}

// Fills returns the recorded fill operations painted with c.
func (r *Recorder) Fills(c color.Color) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpFill && sameColor(op.Color, c) {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many recorded operations have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
