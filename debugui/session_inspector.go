package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/arcade/session"
)

// SessionInspector lists sessions with their lifecycle state and readouts and
// offers start, pause and reset buttons.
type SessionInspector struct {
	selected int
}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{}
}

func (si *SessionInspector) Render(sessions []*session.Session) {
	if !imgui.BeginV("Sessions", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SessionTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Game")
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Score")
		imgui.TableSetupColumn("Ticks")
		imgui.TableSetupColumn("Speed")
		imgui.TableHeadersRow()

		for i, s := range sessions {
			st := s.Stats()
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%s##%d", s.Game().Name(), i), si.selected == i, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				si.selected = i
			}
			imgui.TableNextColumn()
			imgui.Text(s.ID.String()[:8])
			imgui.TableNextColumn()
			imgui.Text(s.State().String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", st.Score))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.Ticks()))
			imgui.TableNextColumn()
			imgui.Text(st.Speed)
		}

		imgui.EndTable()
	}

	if si.selected >= 0 && si.selected < len(sessions) {
		si.renderDetails(sessions[si.selected])
	}

	imgui.End()
}

func (si *SessionInspector) renderDetails(s *session.Session) {
	st := s.Stats()

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Session %s", s.ID))
	imgui.Text(fmt.Sprintf("%s: %d", st.CountLabel, st.Count))
	if st.Level > 0 {
		imgui.Text(fmt.Sprintf("level: %d", st.Level))
	}
	imgui.Text(fmt.Sprintf("interval: %s", s.Game().Interval()))
	imgui.Text(fmt.Sprintf("callback: %d", s.Callback()))

	if imgui.Button("Start") {
		s.Start()
	}
	imgui.SameLine()
	if imgui.Button("Pause") {
		s.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		s.Reset()
	}
}
