// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It satisfies ebitenhost.Overlay, so a host brackets every update with
// BeginFrame and EndFrame and draws the UI over the scenes.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: b}
}

func (b *ImguiBackend) BeginFrame() { b.EbitenBackend.BeginFrame() }

func (b *ImguiBackend) EndFrame() { b.EbitenBackend.EndFrame() }

func (b *ImguiBackend) Draw(screen *ebiten.Image) { b.EbitenBackend.Draw(screen) }

func (b *ImguiBackend) Layout(width, height int) { b.EbitenBackend.Layout(width, height) }
