package ebiten_test

import (
	"log"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/scenekit/config"
	"github.com/plus3/scenekit/debugui"
	debugui_ebiten "github.com/plus3/scenekit/debugui/ebiten"
	"github.com/plus3/scenekit/director"
	"github.com/plus3/scenekit/host/ebitenhost"
	"github.com/plus3/scenekit/render/ebitenrender"
	"github.com/plus3/scenekit/scene"
)

func Example() {
	settings := config.Default()

	// Create the ImGui backend and its window.
	imguiBackend := debugui_ebiten.NewImguiBackend("Scene Inspector", settings.WindowWidth, settings.WindowHeight)

	backend := ebitenrender.NewBackend()
	ctx := scene.NewContext(settings, backend, nil)
	s := scene.New(ctx, scene.WithName("main"))

	// The inspector rides on the camera entity so it is never culled.
	inspector := debugui.NewInspector()
	inspector.AddWindow(func() {
		imgui.Begin("Custom")
		imgui.Text("hello")
		imgui.End()
	})
	if err := s.CameraEntity().AddUnit(inspector); err != nil {
		log.Fatal(err)
	}

	d := director.New(ctx, s)
	game := ebitenhost.NewGame(d, backend, imguiBackend)
	if err := ebitenhost.Run(settings, game); err != nil {
		log.Fatal(err)
	}
}
