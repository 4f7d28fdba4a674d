// Package debugui provides a Dear ImGui scene inspector that runs as a unit
// inside the scene it inspects.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scenekit/scene"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Inspector draws the scene browser, unit inspector and phase stats windows
// every update. The windows are queued on the frame's commands so they see
// the scene after all update passes and actors have run.
type Inspector struct {
	scene.BaseUnit

	Browser *SceneBrowser
	Units   *UnitInspector
	Stats   *PhaseStatsWindow

	windows []func()
	input   InputState
}

// NewInspector creates an inspector with default window settings.
func NewInspector() *Inspector {
	return &Inspector{
		Browser: NewSceneBrowser(100),
		Units:   NewUnitInspector(),
		Stats:   NewPhaseStatsWindow(120),
	}
}

// AddWindow registers an extra ImGui render function drawn after the
// built-in windows.
func (i *Inspector) AddWindow(render func()) {
	i.windows = append(i.windows, render)
}

// InputState returns the capture state read during the last update.
func (i *Inspector) InputState() InputState { return i.input }

func (i *Inspector) Update(f *scene.Frame) {
	s, dt := f.Scene, f.DeltaTime
	f.Commands.Defer(func() {
		if s.Destroyed() {
			return
		}
		i.draw(s, dt)
	})
}

func (i *Inspector) draw(s *scene.Scene, dt float64) {
	io := imgui.CurrentIO()
	i.input.WantCaptureMouse = io.WantCaptureMouse()
	i.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	i.Browser.Render(s)
	i.Units.Render(s, i.Browser.Selected())
	i.Stats.Render(s, float32(dt))
	for _, w := range i.windows {
		w()
	}
}
