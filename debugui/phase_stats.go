package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scenekit/scene"
)

// PhaseStatsWindow plots frame times and tabulates per-phase dispatch
// timings.
type PhaseStatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPhaseStatsWindow(historyFrames int) *PhaseStatsWindow {
	historyFrames = max(1, historyFrames)
	return &PhaseStatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores a frame's delta time in the ring buffer.
func (ps *PhaseStatsWindow) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded history in ms.
func (ps *PhaseStatsWindow) AverageFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PhaseStatsWindow) Render(s *scene.Scene, deltaTime float32) {
	if !imgui.BeginV("Phase Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Record(deltaTime)
	stats := s.Stats()

	imgui.Text(fmt.Sprintf("Entities: %d", s.EntityCount()))
	imgui.Text(fmt.Sprintf("Layers: %d", len(s.Layers())))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	avg := ps.AverageFrameTime()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PhaseTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Phase")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, p := range stats.Phases {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(p.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", p.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(p.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(p.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(p.MaxDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
