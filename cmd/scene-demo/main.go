// Command scene-demo opens a window with a title scene and a play scene
// driven by a director, with the Dear ImGui inspector on top.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/scenekit/config"
	"github.com/plus3/scenekit/debugui"
	debugui_ebiten "github.com/plus3/scenekit/debugui/ebiten"
	"github.com/plus3/scenekit/director"
	"github.com/plus3/scenekit/host/ebitenhost"
	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/render/ebitenrender"
	"github.com/plus3/scenekit/scene"
	"github.com/plus3/scenekit/x2d"
)

const appName = "scenekit-demo"

func main() {
	configPath := flag.String("config", "", "Settings YAML file. Overrides the saved settings.")
	save := flag.Bool("save", false, "Persist the effective settings for the next run.")
	noUI := flag.Bool("no-ui", false, "Disable the debug inspector.")
	flag.Parse()

	store, err := config.OpenStore(appName, nil)
	if err != nil {
		log.Printf("Settings will not persist: %v", err)
		store = config.NewStore(nil, nil)
	}
	settings := store.Settings()
	if *configPath != "" {
		if settings, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	if *save {
		if err := store.Update(settings); err != nil {
			log.Fatalf("Invalid settings: %v", err)
		}
		if err := store.Save(); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.Level()}))
	slog.SetDefault(logger)

	var overlays []ebitenhost.Overlay
	if !*noUI {
		overlays = append(overlays, debugui_ebiten.NewImguiBackend(settings.WindowTitle, settings.WindowWidth, settings.WindowHeight))
	}

	backend := ebitenrender.NewBackend()
	ctx := scene.NewContext(settings, backend, logger)
	scenes := newDemo(ctx, !*noUI)

	d := director.New(ctx, scenes.title)
	scenes.director = d

	game := ebitenhost.NewGame(d, backend, overlays...)
	if err := ebitenhost.Run(settings, game); err != nil {
		log.Fatal(err)
	}
}

type demo struct {
	ctx      *scene.Context
	director *director.Director
	ui       bool
	title    *scene.Scene
	square   *ebitenrender.Region
}

func newDemo(ctx *scene.Context, ui bool) *demo {
	img := ebiten.NewImage(32, 32)
	img.Fill(color.White)

	d := &demo{
		ctx:    ctx,
		ui:     ui,
		square: ebitenrender.NewRegion(img, image.Rectangle{}),
	}
	d.title = d.newTitle()
	return d
}

func (d *demo) newTitle() *scene.Scene {
	s := scene.New(d.ctx, scene.WithName("title"), scene.WithStackable(true))
	units := s.WorldUnits()

	logo := x2d.NewSpriteEntityAt(s, "logo", d.square, units.WorldWidth/2-0.5, units.WorldHeight/2-0.5)
	scene.Get[*x2d.SpriteRenderer](logo).Color = color.RGBA{R: 0xe0, G: 0x60, B: 0x20, A: 0xff}
	d.must(logo.AddUnit(&spin{Speed: 90}))
	d.must(s.AddEntity(logo))

	d.must(s.CameraEntity().AddUnit(&keys{onSpace: func() {
		if err := d.director.Push(d.newPlay(), director.NewDelay(250*time.Millisecond)); err != nil {
			slog.Error("push failed", "error", err)
		}
	}}))
	d.attachInspector(s)
	return s
}

func (d *demo) newPlay() *scene.Scene {
	s := scene.New(d.ctx, scene.WithName("play"), scene.WithDebugRender(true))
	s.SetBackgroundColor(color.RGBA{R: 0x10, G: 0x18, B: 0x30, A: 0xff})
	units := s.WorldUnits()

	actor := scene.NewBasicActor()
	hero := x2d.NewActorSpriteEntity(s, "hero", d.square, actor)
	actor.SetPosition(1, 1)
	actor.AddAction(scene.MoveTo(units.WorldWidth-2, units.WorldHeight-2, 3))
	actor.AddAction(scene.RotateBy(360, 3))
	d.must(hero.AddUnit(x2d.NewBoxDebugRenderer(render.ShapeLine, color.White)))
	d.must(s.AddEntity(hero))

	fx := scene.NewLayer("fx")
	d.must(s.AddLayer(fx))
	for i := range 8 {
		e := x2d.NewSpriteEntityAt(s, "orb", d.square, float32(2+i*2), 2)
		e.Transform().SetScale(0.5, 0.5)
		d.must(e.AddUnit(x2d.NewCircleDebugRenderer(render.ShapePoint, color.RGBA{G: 0xff, A: 0xff})))
		d.must(e.AddUnit(&spin{Speed: float32(30 * (i + 1))}))
		d.must(s.AddEntityTo(e, fx))
	}

	d.must(s.CameraEntity().AddUnit(&keys{onEscape: func() {
		if err := d.director.Pop(nil); err != nil {
			slog.Error("pop failed", "error", err)
		}
	}}))
	d.attachInspector(s)
	return s
}

func (d *demo) attachInspector(s *scene.Scene) {
	if !d.ui {
		return
	}
	// A unit belongs to one entity, so each scene gets its own inspector.
	d.must(s.CameraEntity().AddUnit(debugui.NewInspector()))
}

func (d *demo) must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

// spin rotates its entity at Speed degrees per second.
type spin struct {
	scene.BaseUnit
	Speed float32
}

func (s *spin) Update(f *scene.Frame) {
	t := s.Transform()
	t.SetRotation(t.Angle() + s.Speed*float32(f.DeltaTime))
}

// keys maps key presses to scene switches.
type keys struct {
	scene.BaseUnit
	onSpace, onEscape func()
}

func (k *keys) Update(*scene.Frame) {
	if k.onSpace != nil && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		k.onSpace()
	}
	if k.onEscape != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.onEscape()
	}
}
