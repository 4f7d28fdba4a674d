package scene

import "github.com/plus3/scenekit/render"

// Unit is a behavior attached to an entity. Every unit embeds BaseUnit and is
// used by pointer; a unit belongs to at most one entity at a time.
//
// Lifecycle and per-frame callbacks are opt-in: a unit receives a callback
// only when it implements the matching hook interface below.
type Unit interface {
	base() *BaseUnit

	Enabled() bool
	SetEnabled(enabled bool)
	State() State
	Entity() *Entity
	Scene() *Scene
}

// BaseUnit carries the bookkeeping shared by all units. The zero value is an
// enabled unit in StateCreated.
type BaseUnit struct {
	disabled bool
	state    State
	entity   *Entity
	scene    *Scene
}

func (b *BaseUnit) base() *BaseUnit { return b }

// Enabled reports whether per-frame callbacks are delivered to the unit.
func (b *BaseUnit) Enabled() bool { return !b.disabled }

// SetEnabled toggles per-frame callbacks. Lifecycle callbacks are unaffected.
func (b *BaseUnit) SetEnabled(enabled bool) { b.disabled = !enabled }

func (b *BaseUnit) State() State { return b.state }

// Entity returns the owning entity, or nil when the unit is detached.
func (b *BaseUnit) Entity() *Entity { return b.entity }

// Scene returns the scene of the owning entity, or nil.
func (b *BaseUnit) Scene() *Scene { return b.scene }

// Transform returns the owning entity's spatial unit, or nil when detached.
func (b *BaseUnit) Transform() Spatial {
	if b.entity == nil {
		return nil
	}
	return b.entity.Transform()
}

// Attacher is called when the unit is added to an entity.
type Attacher interface {
	Attach()
}

// Detacher is called when the unit is removed from its entity.
type Detacher interface {
	Detach()
}

// Starter is called when the unit becomes live in an active scene.
type Starter interface {
	Start()
}

// Stopper is called when a running unit leaves its scene or entity.
type Stopper interface {
	Stop()
}

type Pauser interface {
	Pause()
}

type Resumer interface {
	Resume()
}

// Resizer receives the screen size in pixels.
type Resizer interface {
	Resize(width, height int)
}

type PreUpdater interface {
	PreUpdate(f *Frame)
}

type Updater interface {
	Update(f *Frame)
}

type PostUpdater interface {
	PostUpdate(f *Frame)
}

type PreRenderer interface {
	PreRender(f *Frame)
}

type Renderer interface {
	Render(f *Frame)
}

type PostRenderer interface {
	PostRender(f *Frame)
}

// DebugLineDrawer draws outlines during the line debug pass.
type DebugLineDrawer interface {
	DrawDebugLine(shapes render.ShapeRenderer)
}

// DebugFilledDrawer draws solid shapes during the filled debug pass.
type DebugFilledDrawer interface {
	DrawDebugFilled(shapes render.ShapeRenderer)
}

// DebugPointDrawer draws points during the point debug pass.
type DebugPointDrawer interface {
	DrawDebugPoint(shapes render.ShapeRenderer)
}

// Destroyer is called exactly once when the owning scene is torn down.
type Destroyer interface {
	Destroy()
}

// UnitAddedListener is notified when a sibling unit joins the entity.
type UnitAddedListener interface {
	UnitAdded(u Unit)
}

// UnitRemovedListener is notified when a sibling unit leaves the entity.
type UnitRemovedListener interface {
	UnitRemoved(u Unit)
}

// CameraListener is notified when the scene's main camera is replaced.
type CameraListener interface {
	MainCameraChanged(c Camera)
}
