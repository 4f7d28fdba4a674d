// Package ebitenhost runs a director inside the Ebiten game loop.
package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/scenekit/config"
	"github.com/plus3/scenekit/director"
	"github.com/plus3/scenekit/render/ebitenrender"
)

// Overlay draws on top of the scenes, bracketing each update with a frame.
// The Dear ImGui backend in debugui/ebiten satisfies it.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game by forwarding to a director.
type Game struct {
	director *director.Director
	backend  *ebitenrender.Backend
	overlays []Overlay

	width, height int
}

// NewGame creates a Game drawing the director's scenes through backend.
func NewGame(d *director.Director, backend *ebitenrender.Backend, overlays ...Overlay) *Game {
	return &Game{director: d, backend: backend, overlays: overlays}
}

func (g *Game) Director() *director.Director { return g.director }

// AddOverlay appends an overlay drawn after the scenes.
func (g *Game) AddOverlay(o Overlay) {
	g.overlays = append(g.overlays, o)
}

// Update advances the current scene by one tick. It ends the game once the
// director has no scene left.
func (g *Game) Update() error {
	if g.director.Empty() {
		return ebiten.Termination
	}
	for _, o := range g.overlays {
		o.BeginFrame()
	}
	g.director.Update(1 / float64(ebiten.TPS()))
	for _, o := range g.overlays {
		o.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.SetTarget(screen)
	g.director.Render()
	for _, o := range g.overlays {
		o.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.director.Resize(outsideWidth, outsideHeight)
	}
	for _, o := range g.overlays {
		o.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window sized from settings and blocks until the game ends.
// The director is destroyed before Run returns.
func Run(settings config.Settings, g *Game) error {
	defer g.director.Destroy()

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(settings.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
