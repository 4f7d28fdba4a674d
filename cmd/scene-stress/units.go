package main

import (
	"math/rand"

	"github.com/plus3/scenekit/scene"
)

// spinner rotates its entity every update.
type spinner struct {
	scene.BaseUnit
	Speed float32
}

func (s *spinner) Update(f *scene.Frame) {
	t := s.Transform()
	t.SetRotation(t.Angle() + s.Speed*float32(f.DeltaTime))
}

// drifter moves its entity and wraps it back into the world.
type drifter struct {
	scene.BaseUnit
	VX, VY float32
	bounds scene.WorldUnits
}

func (d *drifter) PreUpdate(f *scene.Frame) {
	d.Transform().Translate(d.VX*float32(f.DeltaTime), d.VY*float32(f.DeltaTime))
}

func (d *drifter) PostUpdate(*scene.Frame) {
	t := d.Transform()
	if t.X() < 0 || t.X() > d.bounds.WorldWidth {
		t.SetX(d.bounds.WorldWidth / 2)
	}
	if t.Y() < 0 || t.Y() > d.bounds.WorldHeight {
		t.SetY(d.bounds.WorldHeight / 2)
	}
}

// blinker toggles a sibling unit on and off.
type blinker struct {
	scene.BaseUnit
	Every  int
	frames int
}

func (b *blinker) Update(*scene.Frame) {
	b.frames++
	if b.frames%b.Every != 0 {
		return
	}
	e := b.Entity()
	if sp := scene.Get[*spinner](e); sp != nil {
		sp.SetEnabled(!sp.Enabled())
	}
}

// churner replaces its entity with a fresh one after a number of frames,
// exercising deferred deletes and spawns.
type churner struct {
	scene.BaseUnit
	Lifetime int
	frames   int
	rng      *rand.Rand
	spawned  *int64
}

func (c *churner) Update(f *scene.Frame) {
	e := c.Entity()
	// Only the first churner on an entity drives it.
	if scene.Get[*churner](e) != c {
		return
	}
	c.frames++
	if c.frames < c.Lifetime {
		return
	}
	f.Commands.Delete(e)

	next := scene.NewEntity(e.Tag())
	addRandomUnits(next, c.rng, 1+c.rng.Intn(4), c.spawned, f.Scene.WorldUnits())
	layer := ""
	if l := e.Layer(); l != nil {
		layer = l.Name()
	}
	f.Commands.Spawn(next, layer)
	*c.spawned++
}

// drawer touches the camera every render.
type drawer struct {
	scene.BaseUnit
	draws int
}

func (d *drawer) Render(f *scene.Frame) {
	if f.Scene.MainCamera() != nil {
		d.draws++
	}
}

func addRandomUnits(e *scene.Entity, rng *rand.Rand, n int, spawned *int64, bounds scene.WorldUnits) {
	for range n {
		var u scene.Unit
		switch rng.Intn(5) {
		case 0:
			u = &spinner{Speed: rng.Float32() * 360}
		case 1:
			u = &drifter{VX: rng.Float32()*2 - 1, VY: rng.Float32()*2 - 1, bounds: bounds}
		case 2:
			u = &blinker{Every: 1 + rng.Intn(30)}
		case 3:
			u = &churner{Lifetime: 30 + rng.Intn(300), rng: rng, spawned: spawned}
		default:
			u = &drawer{}
		}
		if err := e.AddUnit(u); err != nil {
			panic(err)
		}
	}
}
