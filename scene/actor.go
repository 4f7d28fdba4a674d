package scene

import "math"

// Actor is an externally owned 2D node whose spatial state an ActorTransform
// mirrors. Rotation is in degrees.
type Actor interface {
	X() float32
	Y() float32
	SetPosition(x, y float32)
	Rotation() float32
	SetRotation(degrees float32)
	ScaleX() float32
	ScaleY() float32
	SetScale(x, y float32)
	Width() float32
	Height() float32
	SetSize(width, height float32)
	OriginX() float32
	OriginY() float32
	SetOrigin(x, y float32)
}

// Acter is an actor that advances its own animations. Scenes call Act once per
// frame, after the update passes.
type Acter interface {
	Act(dt float64)
}

// Action animates an actor over time. Act returns true once the action is
// finished.
type Action interface {
	Act(a Actor, dt float64) bool
}

// BasicActor is a plain Actor that runs queued actions in parallel.
type BasicActor struct {
	x, y             float32
	rotation         float32
	scaleX, scaleY   float32
	width, height    float32
	originX, originY float32

	actions []Action
}

// NewBasicActor returns an actor at the origin with unit scale.
func NewBasicActor() *BasicActor {
	return &BasicActor{scaleX: 1, scaleY: 1}
}

func (a *BasicActor) X() float32 { return a.x }
func (a *BasicActor) Y() float32 { return a.y }
func (a *BasicActor) SetPosition(x, y float32) {
	a.x, a.y = x, y
}
func (a *BasicActor) Rotation() float32 { return a.rotation }
func (a *BasicActor) SetRotation(degrees float32) {
	a.rotation = degrees
}
func (a *BasicActor) ScaleX() float32 { return a.scaleX }
func (a *BasicActor) ScaleY() float32 { return a.scaleY }
func (a *BasicActor) SetScale(x, y float32) {
	a.scaleX, a.scaleY = x, y
}
func (a *BasicActor) Width() float32  { return a.width }
func (a *BasicActor) Height() float32 { return a.height }
func (a *BasicActor) SetSize(width, height float32) {
	a.width, a.height = width, height
}
func (a *BasicActor) OriginX() float32 { return a.originX }
func (a *BasicActor) OriginY() float32 { return a.originY }
func (a *BasicActor) SetOrigin(x, y float32) {
	a.originX, a.originY = x, y
}

// AddAction queues an action. Actions run concurrently.
func (a *BasicActor) AddAction(action Action) {
	a.actions = append(a.actions, action)
}

// HasActions reports whether any action is still running.
func (a *BasicActor) HasActions() bool {
	return len(a.actions) > 0
}

// ClearActions drops every running action.
func (a *BasicActor) ClearActions() {
	a.actions = nil
}

// Act advances every action and drops the finished ones.
func (a *BasicActor) Act(dt float64) {
	if len(a.actions) == 0 {
		return
	}
	actions := a.actions
	a.actions = nil
	running := actions[:0]
	for _, action := range actions {
		if !action.Act(a, dt) {
			running = append(running, action)
		}
	}
	clear(actions[len(running):])
	// Actions queued while acting run from the next call.
	a.actions = append(running, a.actions...)
}

// tween interpolates linearly from the actor's state when it first runs.
type tween struct {
	duration float64
	elapsed  float64
	started  bool
	begin    func(a Actor)
	apply    func(a Actor, t float32)
}

func (tw *tween) Act(a Actor, dt float64) bool {
	if !tw.started {
		tw.started = true
		tw.begin(a)
	}
	tw.elapsed += dt
	t := float32(1)
	if tw.duration > 0 {
		t = float32(math.Min(tw.elapsed/tw.duration, 1))
	}
	tw.apply(a, t)
	return t >= 1
}

func lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}

// MoveTo moves the actor to (x, y) over duration seconds.
func MoveTo(x, y float32, duration float64) Action {
	var fromX, fromY float32
	return &tween{
		duration: duration,
		begin: func(a Actor) {
			fromX, fromY = a.X(), a.Y()
		},
		apply: func(a Actor, t float32) {
			a.SetPosition(lerp(fromX, x, t), lerp(fromY, y, t))
		},
	}
}

// RotateBy rotates the actor by degrees over duration seconds.
func RotateBy(degrees float32, duration float64) Action {
	var from float32
	return &tween{
		duration: duration,
		begin: func(a Actor) {
			from = a.Rotation()
		},
		apply: func(a Actor, t float32) {
			a.SetRotation(from + degrees*t)
		},
	}
}

// ScaleTo scales the actor to (x, y) over duration seconds.
func ScaleTo(x, y float32, duration float64) Action {
	var fromX, fromY float32
	return &tween{
		duration: duration,
		begin: func(a Actor) {
			fromX, fromY = a.ScaleX(), a.ScaleY()
		},
		apply: func(a Actor, t float32) {
			a.SetScale(lerp(fromX, x, t), lerp(fromY, y, t))
		},
	}
}
