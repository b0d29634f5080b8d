// Package debugui provides a Dear ImGui overlay for inspecting running game
// sessions and the frame scheduler.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/arcade/frame"
	"github.com/plus3/arcade/session"
)

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Hosts check it before forwarding keys to the games.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders the debug windows. Call Render between the backend's
// BeginFrame and EndFrame, after the scheduler has run the frame.
type Overlay struct {
	Input InputState

	scheduler *frame.Scheduler
	sessions  []*session.Session
	items     []func()

	perf      *PerformanceStats
	inspector *SessionInspector
}

// New creates an overlay showing scheduler stats and the given sessions.
func New(scheduler *frame.Scheduler, sessions ...*session.Session) *Overlay {
	return &Overlay{
		scheduler: scheduler,
		sessions:  sessions,
		perf:      NewPerformanceStats(120),
		inspector: NewSessionInspector(),
	}
}

// Add registers an extra window render function.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, render)
}

// Render draws every window for one frame of deltaTime seconds.
func (o *Overlay) Render(deltaTime float64) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	o.perf.Render(o.scheduler, float32(deltaTime))
	o.inspector.Render(o.sessions)
	for _, item := range o.items {
		item()
	}
}

// TextWindow returns a render function for Add that shows one line of text
// per entry returned by lines.
func TextWindow(title string, lines func() []string) func() {
	return func() {
		if !imgui.BeginV(title, nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}
		for _, line := range lines() {
			imgui.Text(line)
		}
		imgui.End()
	}
}
