package scene

import "github.com/go-gl/mathgl/mgl32"

// ActorTransform is a Spatial backed by an Actor. Setters write through to the
// actor immediately and getters read the actor, so either side can drive the
// entity. The local copy is refreshed from the actor every pre-update.
type ActorTransform struct {
	Transform
	actor Actor
}

// NewActorTransform returns a transform mirroring actor.
func NewActorTransform(actor Actor) *ActorTransform {
	if actor == nil {
		panic("scene: actor transform requires an actor")
	}
	t := &ActorTransform{Transform: *NewTransform(), actor: actor}
	t.Sync()
	return t
}

// Actor returns the mirrored actor.
func (t *ActorTransform) Actor() Actor {
	return t.actor
}

// Sync copies the actor's spatial state into the transform.
func (t *ActorTransform) Sync() {
	a := t.actor
	t.Transform.SetPosition(a.X(), a.Y())
	t.Transform.SetRotation(a.Rotation())
	t.Transform.SetScale(a.ScaleX(), a.ScaleY())
	t.Transform.SetSize(a.Width(), a.Height())
	t.Transform.SetOrigin(a.OriginX(), a.OriginY())
}

func (t *ActorTransform) PreUpdate(*Frame) {
	t.Sync()
}

func (t *ActorTransform) Position() mgl32.Vec3 {
	return mgl32.Vec3{t.actor.X(), t.actor.Y(), t.position[2]}
}

func (t *ActorTransform) SetPosition(x, y float32) {
	t.Transform.SetPosition(x, y)
	t.actor.SetPosition(x, y)
}

func (t *ActorTransform) SetPosition3(p mgl32.Vec3) {
	t.Transform.SetPosition3(p)
	t.actor.SetPosition(p[0], p[1])
}

func (t *ActorTransform) X() float32 { return t.actor.X() }
func (t *ActorTransform) Y() float32 { return t.actor.Y() }

func (t *ActorTransform) SetX(x float32) {
	t.SetPosition(x, t.actor.Y())
}

func (t *ActorTransform) SetY(y float32) {
	t.SetPosition(t.actor.X(), y)
}

func (t *ActorTransform) Translate(dx, dy float32) {
	t.SetPosition(t.actor.X()+dx, t.actor.Y()+dy)
}

func (t *ActorTransform) Rotation() mgl32.Vec3 {
	return mgl32.Vec3{t.rotation[0], t.rotation[1], t.actor.Rotation()}
}

func (t *ActorTransform) Angle() float32 { return t.actor.Rotation() }

func (t *ActorTransform) SetRotation(degrees float32) {
	t.Transform.SetRotation(degrees)
	t.actor.SetRotation(degrees)
}

func (t *ActorTransform) SetRotation3(r mgl32.Vec3) {
	t.Transform.SetRotation3(r)
	t.actor.SetRotation(r[2])
}

func (t *ActorTransform) Scale() mgl32.Vec3 {
	return mgl32.Vec3{t.actor.ScaleX(), t.actor.ScaleY(), t.scale[2]}
}

func (t *ActorTransform) SetScale(x, y float32) {
	t.Transform.SetScale(x, y)
	t.actor.SetScale(x, y)
}

func (t *ActorTransform) SetScale3(s mgl32.Vec3) {
	t.Transform.SetScale3(s)
	t.actor.SetScale(s[0], s[1])
}

func (t *ActorTransform) Size() mgl32.Vec3 {
	return mgl32.Vec3{t.actor.Width(), t.actor.Height(), t.size[2]}
}

func (t *ActorTransform) SetSize(w, h float32) {
	t.Transform.SetSize(w, h)
	t.actor.SetSize(w, h)
}

func (t *ActorTransform) SetSize3(s mgl32.Vec3) {
	t.Transform.SetSize3(s)
	t.actor.SetSize(s[0], s[1])
}

func (t *ActorTransform) Width() float32  { return t.actor.Width() }
func (t *ActorTransform) Height() float32 { return t.actor.Height() }

func (t *ActorTransform) Origin() mgl32.Vec3 {
	return mgl32.Vec3{t.actor.OriginX(), t.actor.OriginY(), t.origin[2]}
}

func (t *ActorTransform) SetOrigin(x, y float32) {
	t.Transform.SetOrigin(x, y)
	t.actor.SetOrigin(x, y)
}

func (t *ActorTransform) SetOrigin3(o mgl32.Vec3) {
	t.Transform.SetOrigin3(o)
	t.actor.SetOrigin(o[0], o[1])
}

func (t *ActorTransform) Matrix() mgl32.Mat4 {
	return modelMatrix(t.Position(), t.Rotation(), t.Scale(), t.Origin())
}
