package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/scenekit/render"
)

type passOrder uint8

const (
	cameraFirst passOrder = iota
	cameraLast
)

// entitiesFor resolves the dispatch list for one pass. The returned slice
// must be handed back through release.
func (s *Scene) entitiesFor(order passOrder) []*Entity {
	list := s.dispatch[:0]
	s.dispatch = nil
	if order == cameraFirst {
		list = append(list, s.cameraEntity)
	}
	list = s.appendEntities(list)
	if order == cameraLast {
		list = append(list, s.cameraEntity)
	}
	return list
}

func (s *Scene) release(list []*Entity) {
	clear(list)
	s.dispatch = list[:0]
}

// visit calls fn for every unit of every entity still live in the scene.
// Units removed mid-pass are skipped and units added mid-pass wait for the
// next pass. A scene destroyed mid-pass stops dispatching.
func (s *Scene) visit(order passOrder, fn func(Unit)) {
	list := s.entitiesFor(order)
	for _, e := range list {
		if s.destroyed {
			break
		}
		for _, u := range e.units {
			if s.destroyed || e.scene != s {
				break
			}
			if u.base().entity != e {
				continue
			}
			fn(u)
		}
	}
	s.release(list)
}

// pass runs one timed phase. A scene destroyed by an earlier pass of the
// same frame runs no further passes.
func (s *Scene) pass(p Phase, order passOrder, fn func(Unit)) {
	if s.destroyed {
		return
	}
	start := time.Now()
	s.visit(order, fn)
	s.stats.record(p, time.Since(start))
}

func (s *Scene) dead(phase string) bool {
	if s.destroyed {
		s.logger.Debug("phase ignored on destroyed scene", "phase", phase)
	}
	return s.destroyed
}

// Resize updates the camera viewport and forwards the screen size to every
// unit.
func (s *Scene) Resize(width, height int) {
	if s.dead("resize") {
		return
	}
	s.width, s.height = width, height
	if cam := s.MainCamera(); cam != nil {
		cam.UpdateViewport(width, height)
	}
	s.pass(PhaseResize, cameraFirst, func(u Unit) {
		if h, ok := u.(Resizer); ok && u.Enabled() {
			h.Resize(width, height)
		}
	})
}

// Resume activates the scene. Paused units resume and units that joined while
// the scene was inactive start.
func (s *Scene) Resume() {
	if s.dead("resume") || s.active {
		return
	}
	s.active = true
	s.pass(PhaseResume, cameraFirst, resumeUnit)
	s.logger.Info("scene resumed")
}

// Pause deactivates the scene and pauses every started unit.
func (s *Scene) Pause() {
	if s.dead("pause") || !s.active {
		return
	}
	s.active = false
	s.pass(PhasePause, cameraFirst, pauseUnit)
	s.logger.Info("scene paused")
}

// Update runs the pre-update, update and post-update passes, advances actors
// and then applies the commands queued during the frame.
func (s *Scene) Update(dt float64) {
	if s.dead("update") {
		return
	}
	f := s.frame
	f.DeltaTime = dt

	s.pass(PhasePreUpdate, cameraFirst, func(u Unit) {
		if h, ok := u.(PreUpdater); ok && u.Enabled() {
			h.PreUpdate(f)
		}
	})
	s.pass(PhaseUpdate, cameraFirst, func(u Unit) {
		if h, ok := u.(Updater); ok && u.Enabled() {
			h.Update(f)
		}
	})
	s.pass(PhasePostUpdate, cameraFirst, func(u Unit) {
		if h, ok := u.(PostUpdater); ok && u.Enabled() {
			h.PostUpdate(f)
		}
	})

	if s.destroyed {
		return
	}
	for _, e := range s.actors {
		if a, ok := e.actor.(Acter); ok && e.scene == s {
			a.Act(dt)
		}
	}

	f.Commands.Flush(s)
	s.stats.frames++
}

// Render runs the render passes. The camera entity pre-renders first and
// post-renders last so that it brackets every other draw.
func (s *Scene) Render() {
	if s.dead("render") {
		return
	}
	f := s.frame

	preRender := func(u Unit) {
		if h, ok := u.(PreRenderer); ok && u.Enabled() {
			h.PreRender(f)
		}
	}
	s.pass(PhasePreRender, cameraFirst, preRender)

	s.pass(PhaseRender, cameraFirst, func(u Unit) {
		if h, ok := u.(Renderer); ok && u.Enabled() {
			h.Render(f)
		}
	})

	s.pass(PhasePostRender, cameraLast, func(u Unit) {
		if h, ok := u.(PostRenderer); ok && u.Enabled() {
			h.PostRender(f)
		}
	})

	if s.debugRender && !s.destroyed {
		s.renderDebug()
	}
}

var debugShapes = [...]render.ShapeType{render.ShapeFilled, render.ShapeLine, render.ShapePoint}

func (s *Scene) renderDebug() {
	if s.shapes == nil {
		s.shapes = s.ctx.Backend.NewShapeRenderer()
		if s.shapes == nil {
			return
		}
	}
	projection := mgl32.Ident4()
	if cam := s.MainCamera(); cam != nil {
		projection = cam.Projection()
	}

	start := time.Now()
	for _, shape := range debugShapes {
		s.shapes.Begin(projection, shape)
		s.visit(cameraFirst, func(u Unit) {
			if !u.Enabled() {
				return
			}
			switch shape {
			case render.ShapeFilled:
				if h, ok := u.(DebugFilledDrawer); ok {
					h.DrawDebugFilled(s.shapes)
				}
			case render.ShapeLine:
				if h, ok := u.(DebugLineDrawer); ok {
					h.DrawDebugLine(s.shapes)
				}
			case render.ShapePoint:
				if h, ok := u.(DebugPointDrawer); ok {
					h.DrawDebugPoint(s.shapes)
				}
			}
		})
		s.shapes.End()
	}
	s.stats.record(PhaseDebug, time.Since(start))
}

// Destroy tears the scene down. Every unit receives Destroy exactly once and
// later phase calls are ignored.
func (s *Scene) Destroy() {
	if s.destroyed {
		return
	}
	s.pass(PhaseDestroy, cameraFirst, destroyUnit)
	s.destroyed = true
	s.active = false
	if s.shapes != nil {
		s.shapes.Dispose()
		s.shapes = nil
	}
	s.logger.Info("scene destroyed")
}
