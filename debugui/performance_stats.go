package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/arcade/frame"
)

// PerformanceStats shows frame times and per-callback scheduler statistics.
type PerformanceStats struct {
	frameTimes *History
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{frameTimes: NewHistory(historyFrames)}
}

func (ps *PerformanceStats) Render(scheduler *frame.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameTimes.Push(deltaTime * 1000.0)
	stats := scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Callbacks: %d", stats.CallbackCount))
	imgui.Text(fmt.Sprintf("Total Executions: %d", stats.TotalExecutions))

	avgFrameTime := ps.frameTimes.Avg()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	values := ps.frameTimes.Values()
	imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))

	if imgui.TreeNodeStr("Callback Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("CallbackStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Handle")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, cb := range stats.Callbacks {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(cb.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", cb.Handle))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", cb.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(cb.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(cb.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
