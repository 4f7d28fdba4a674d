package scene_test

import (
	"fmt"

	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

// eventLog collects hook calls across units in the order they happen.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) reset() {
	l.events = nil
}

func (l *eventLog) count(event string) int {
	n := 0
	for _, e := range l.events {
		if e == event {
			n++
		}
	}
	return n
}

// probe implements every hook and logs each call with its name.
type probe struct {
	scene.BaseUnit
	name string
	log  *eventLog

	onUpdate func(f *scene.Frame)
}

func newProbe(name string, log *eventLog) *probe {
	return &probe{name: name, log: log}
}

func (p *probe) Attach()                        { p.log.add("%s.attach", p.name) }
func (p *probe) Detach()                        { p.log.add("%s.detach", p.name) }
func (p *probe) Start()                         { p.log.add("%s.start", p.name) }
func (p *probe) Stop()                          { p.log.add("%s.stop", p.name) }
func (p *probe) Pause()                         { p.log.add("%s.pause", p.name) }
func (p *probe) Resume()                        { p.log.add("%s.resume", p.name) }
func (p *probe) Resize(w, h int)                { p.log.add("%s.resize %dx%d", p.name, w, h) }
func (p *probe) PreUpdate(*scene.Frame)         { p.log.add("%s.preUpdate", p.name) }
func (p *probe) PostUpdate(*scene.Frame)        { p.log.add("%s.postUpdate", p.name) }
func (p *probe) PreRender(*scene.Frame)         { p.log.add("%s.preRender", p.name) }
func (p *probe) Render(*scene.Frame)            { p.log.add("%s.render", p.name) }
func (p *probe) PostRender(*scene.Frame)        { p.log.add("%s.postRender", p.name) }
func (p *probe) Destroy()                       { p.log.add("%s.destroy", p.name) }
func (p *probe) UnitAdded(u scene.Unit)         { p.log.add("%s.unitAdded", p.name) }
func (p *probe) UnitRemoved(u scene.Unit)       { p.log.add("%s.unitRemoved", p.name) }
func (p *probe) MainCameraChanged(scene.Camera) { p.log.add("%s.cameraChanged", p.name) }

func (p *probe) Update(f *scene.Frame) {
	p.log.add("%s.update", p.name)
	if p.onUpdate != nil {
		p.onUpdate(f)
	}
}

func (p *probe) DrawDebugFilled(render.ShapeRenderer) { p.log.add("%s.debugFilled", p.name) }
func (p *probe) DrawDebugLine(render.ShapeRenderer)   { p.log.add("%s.debugLine", p.name) }
func (p *probe) DrawDebugPoint(render.ShapeRenderer)  { p.log.add("%s.debugPoint", p.name) }

// counter only counts updates.
type counter struct {
	scene.BaseUnit
	updates int
}

func (c *counter) Update(*scene.Frame) { c.updates++ }

// tagger is a plain unit with no hooks.
type tagger struct {
	scene.BaseUnit
	label string
}

func newTestScene(opts ...scene.Option) (*scene.Scene, *render.Recorder) {
	rec := render.NewRecorder()
	return scene.New(scene.NewTestContext(rec), opts...), rec
}
