package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

func TestUpdatePassesAreBatched(t *testing.T) {
	log := &eventLog{}
	s, _ := newTestScene()
	for _, name := range []string{"a", "b"} {
		e := scene.NewEntity(name)
		require.NoError(t, e.AddUnit(newProbe(name, log)))
		require.NoError(t, s.AddEntity(e))
	}
	disabled := newProbe("off", log)
	disabled.SetEnabled(false)
	e := scene.NewEntity("off")
	require.NoError(t, e.AddUnit(disabled))
	require.NoError(t, s.AddEntity(e))
	s.Resume()
	log.reset()

	s.Update(0.5)

	assert.Equal(t, []string{
		"a.preUpdate", "b.preUpdate",
		"a.update", "b.update",
		"a.postUpdate", "b.postUpdate",
	}, log.events)
}

func TestMutationDuringPass(t *testing.T) {
	log := &eventLog{}
	s, _ := newTestScene()
	s.Resume()
	e := scene.NewEntity("e")
	require.NoError(t, s.AddEntity(e))

	a := newProbe("A", log)
	b := newProbe("B", log)
	c := newProbe("C", log)
	d := newProbe("D", log)
	for _, p := range []*probe{a, b, c} {
		require.NoError(t, e.AddUnit(p))
	}
	a.onUpdate = func(*scene.Frame) {
		e.RemoveUnit(b)
		require.NoError(t, e.AddUnit(d))
	}
	log.reset()

	s.Update(0.016)

	assert.Equal(t, 1, log.count("A.update"))
	assert.Zero(t, log.count("B.update"))
	assert.Equal(t, 1, log.count("C.update"))
	assert.Zero(t, log.count("D.update"))
	assert.Equal(t, 1, log.count("D.start"))
	assert.Equal(t, 1, log.count("B.stop"))
	// D joined after the update pass began but before post-update.
	assert.Equal(t, 1, log.count("D.postUpdate"))

	a.onUpdate = nil
	log.reset()
	s.Update(0.016)
	assert.Equal(t, 1, log.count("D.update"))
	assert.Zero(t, log.count("B.update"))
}

func TestEntityRemovedMidPass(t *testing.T) {
	log := &eventLog{}
	s, _ := newTestScene()
	s.Resume()

	first := scene.NewEntity("first")
	second := scene.NewEntity("second")
	killer := newProbe("killer", log)
	victim := newProbe("victim", log)
	require.NoError(t, first.AddUnit(killer))
	require.NoError(t, second.AddUnit(victim))
	require.NoError(t, s.AddEntity(first))
	require.NoError(t, s.AddEntity(second))

	killer.onUpdate = func(*scene.Frame) { s.RemoveEntity(second) }
	log.reset()
	s.Update(0.016)

	assert.Zero(t, log.count("victim.update"))
	assert.Zero(t, log.count("victim.postUpdate"))
	assert.Equal(t, 1, log.count("victim.stop"))
}

func TestCommandsFlushAfterPostUpdate(t *testing.T) {
	log := &eventLog{}
	s, _ := newTestScene()
	s.Resume()
	ui := scene.NewLayer("ui")
	require.NoError(t, s.AddLayer(ui))

	spawner := newProbe("spawner", log)
	host := scene.NewEntity("host")
	require.NoError(t, host.AddUnit(spawner))
	require.NoError(t, s.AddEntity(host))

	doomed := scene.NewEntity("doomed")
	require.NoError(t, s.AddEntity(doomed))

	spawned := scene.NewEntity("spawned")
	late := newProbe("late", log)
	var flushed bool
	spawner.onUpdate = func(f *scene.Frame) {
		f.Commands.Spawn(spawned, "ui")
		f.Commands.Delete(doomed)
		f.Commands.AddUnit(host, late)
		f.Commands.AddUnit(doomed, &tagger{})
		f.Commands.Defer(func() { flushed = true })
		assert.Equal(t, 5, f.Commands.Len())
	}

	s.Update(0.016)
	spawner.onUpdate = nil

	assert.True(t, flushed)
	assert.Same(t, ui, spawned.Layer())
	assert.Nil(t, doomed.Scene())
	assert.Equal(t, 1, doomed.UnitCount())
	assert.True(t, host.HasUnit(late))
	assert.Equal(t, 1, log.count("late.start"))
	assert.Zero(t, log.count("late.update"))

	idx := func(event string) int {
		for i, e := range log.events {
			if e == event {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("spawner.postUpdate"), idx("late.attach"))
}

func TestCommandsReportSpawnErrors(t *testing.T) {
	s, _ := newTestScene()
	e := scene.NewEntity("e")

	var ran bool
	host := newProbe("host", &eventLog{})
	host.onUpdate = func(f *scene.Frame) {
		f.Commands.Spawn(e, "missing")
		f.Commands.Defer(func() { ran = true })
	}
	he := scene.NewEntity("host")
	require.NoError(t, he.AddUnit(host))
	require.NoError(t, s.AddEntity(he))

	assert.NotPanics(t, func() { s.Update(0.016) })
	assert.True(t, ran)
	assert.Nil(t, e.Scene())
}

func TestRenderOrder(t *testing.T) {
	log := &eventLog{}
	s, rec := newTestScene()
	s.Resume()
	require.NoError(t, s.CameraEntity().AddUnit(newProbe("cam", log)))
	for _, name := range []string{"a", "b"} {
		e := scene.NewEntity(name)
		require.NoError(t, e.AddUnit(newProbe(name, log)))
		require.NoError(t, s.AddEntity(e))
	}
	log.reset()

	s.Render()

	assert.Equal(t, []string{
		"cam.preRender", "a.preRender", "b.preRender",
		"cam.render", "a.render", "b.render",
		"a.postRender", "b.postRender", "cam.postRender",
	}, log.events)
	assert.Equal(t, []string{"clear", "sprite.begin", "sprite.end"}, rec.Calls)
}

func TestDebugRender(t *testing.T) {
	log := &eventLog{}
	s, rec := newTestScene(scene.WithDebugRender(true))
	e := scene.NewEntity("e")
	require.NoError(t, e.AddUnit(newProbe("p", log)))
	require.NoError(t, s.AddEntity(e))
	log.reset()
	rec.Reset()

	s.Render()

	assert.Equal(t, []string{"p.preRender", "p.render", "p.postRender", "p.debugFilled", "p.debugLine", "p.debugPoint"}, log.events)
	assert.Equal(t, []string{
		"clear", "sprite.begin", "sprite.end",
		"shape.begin filled", "shape.end",
		"shape.begin line", "shape.end",
		"shape.begin point", "shape.end",
	}, rec.Calls)

	s.SetDebugRender(false)
	log.reset()
	s.Render()
	assert.Zero(t, log.count("p.debugLine"))
}

func TestResize(t *testing.T) {
	log := &eventLog{}
	s, _ := newTestScene()
	e := scene.NewEntity("e")
	require.NoError(t, e.AddUnit(newProbe("p", log)))
	require.NoError(t, s.AddEntity(e))

	s.Resize(640, 480)

	assert.Equal(t, 1, log.count("p.resize 640x480"))
	w, h := s.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	cam := s.MainCamera()
	assert.InDelta(t, 20, cam.ViewportWidth(), 1e-4)
	assert.InDelta(t, 15, cam.ViewportHeight(), 1e-4)
	pos := s.CameraEntity().Transform().Position()
	assert.InDelta(t, 10, pos.X(), 1e-4)
	assert.InDelta(t, 7.5, pos.Y(), 1e-4)
}

func TestSceneDestroyedDuringUpdate(t *testing.T) {
	log := &eventLog{}
	s, _ := newTestScene()
	s.Resume()
	p, q := newProbe("p", log), newProbe("q", log)
	for _, u := range []*probe{p, q} {
		e := scene.NewEntity(u.name)
		require.NoError(t, e.AddUnit(u))
		require.NoError(t, s.AddEntity(e))
	}
	actor := &actorMover{BasicActor: *scene.NewBasicActor()}
	require.NoError(t, s.AddEntity(scene.NewActorEntity("actor", actor)))

	flushed := false
	p.onUpdate = func(f *scene.Frame) {
		f.Commands.Defer(func() { flushed = true })
		s.Destroy()
	}
	log.reset()

	s.Update(0.016)

	assert.Equal(t, []string{"p.preUpdate", "q.preUpdate", "p.update", "p.destroy", "q.destroy"}, log.events)
	assert.Equal(t, scene.StateDestroyed, q.State())
	assert.Zero(t, actor.acts, "actors do not act on a destroyed scene")
	assert.False(t, flushed, "commands are not flushed on a destroyed scene")
}

func TestStats(t *testing.T) {
	s, _ := newTestScene()
	s.Resume()
	for range 3 {
		s.Update(0.016)
		s.Render()
	}

	stats := s.Stats()
	assert.Equal(t, int64(3), stats.Frames)

	update, ok := stats.Lookup(scene.PhaseUpdate)
	require.True(t, ok)
	assert.Equal(t, "update", update.Name)
	assert.Equal(t, int64(3), update.ExecutionCount)
	assert.LessOrEqual(t, update.MinDuration, update.MaxDuration)

	resume, _ := stats.Lookup(scene.PhaseResume)
	assert.Equal(t, int64(1), resume.ExecutionCount)
	destroy, _ := stats.Lookup(scene.PhaseDestroy)
	assert.Zero(t, destroy.ExecutionCount)
	assert.Len(t, stats.Phases, 11)
}

type actorMover struct {
	scene.BasicActor
	acts int
}

func (a *actorMover) Act(dt float64) {
	a.acts++
	a.BasicActor.Act(dt)
}

func TestActorsActAfterUpdate(t *testing.T) {
	s, _ := newTestScene()
	s.Resume()
	actor := &actorMover{BasicActor: *scene.NewBasicActor()}
	actor.AddAction(scene.MoveTo(10, 0, 1))
	e := scene.NewActorEntity("actor", actor)
	require.NoError(t, s.AddEntity(e))

	s.Update(0.5)
	assert.Equal(t, 1, actor.acts)
	assert.InDelta(t, 5, actor.X(), 1e-4)
	// The transform mirrors the actor immediately.
	assert.InDelta(t, 5, e.Transform().X(), 1e-4)

	s.Update(0.5)
	s.Update(0.5)
	assert.InDelta(t, 10, actor.X(), 1e-4)
	assert.False(t, actor.HasActions())

	s.RemoveEntity(e)
	s.Update(0.5)
	assert.Equal(t, 3, actor.acts)
}

var _ render.Backend = (*render.Recorder)(nil)
