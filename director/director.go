// Package director drives a stack of scenes through the frame phase API.
//
// A Director owns the scenes pushed onto it. Pushing over a stackable scene
// pauses and keeps it, so a later Pop resumes it where it left off; any
// other outgoing scene is destroyed once the switch (and its transition, if
// any) completes. Swaps requested while a frame is running are applied
// after that frame's Update, so a scene is never destroyed mid-phase.
package director

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/plus3/scenekit/scene"
)

var (
	ErrNilScene     = errors.New("director: nil scene")
	ErrSceneInStack = errors.New("director: scene is already on the stack")
	ErrEmptyStack   = errors.New("director: no scene to pop")
)

// Option configures a Director.
type Option func(*Director)

// WithTransition animates the switch to the initial scene.
func WithTransition(t Transition) Option {
	return func(d *Director) { d.initialTransition = t }
}

// WithLogger overrides the context logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Director) { d.logger = logger }
}

type activeTransition struct {
	transition Transition
	from, to   *scene.Scene
	retain     bool
}

// Director manages the scene stack and forwards frame phases to the scene
// on top of it.
type Director struct {
	ctx    *scene.Context
	logger *slog.Logger

	stack []*scene.Scene

	width, height int
	sized         bool

	inFrame bool
	pending []func()

	transition        *activeTransition
	initialTransition Transition
}

// New creates a director showing initial. initial may be nil, in which case
// the director starts empty.
func New(ctx *scene.Context, initial *scene.Scene, opts ...Option) *Director {
	d := &Director{ctx: ctx}
	if ctx != nil {
		d.logger = ctx.Logger
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.logger = d.logger.With("component", "director")

	if initial != nil {
		if err := d.Push(initial, d.initialTransition); err != nil {
			d.logger.Warn("initial scene rejected", "scene", initial.Name(), "error", err)
		}
	}
	return d
}

func (d *Director) Context() *scene.Context { return d.ctx }

// Current returns the scene on top of the stack, or nil.
func (d *Director) Current() *scene.Scene {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

// Depth returns the number of scenes on the stack.
func (d *Director) Depth() int { return len(d.stack) }

// Empty reports whether no scene is left to drive.
func (d *Director) Empty() bool { return len(d.stack) == 0 }

// Transitioning reports whether a transition is in progress.
func (d *Director) Transitioning() bool { return d.transition != nil }

// Push makes next the current scene. A stackable current scene is kept
// underneath; any other is destroyed once the switch completes.
func (d *Director) Push(next *scene.Scene, t Transition) error {
	return d.swap(next, t, true)
}

// Switch makes next the current scene and always disposes the outgoing one.
func (d *Director) Switch(next *scene.Scene, t Transition) error {
	return d.swap(next, t, false)
}

// Pop destroys the current scene and resumes the one beneath it, if any.
func (d *Director) Pop(t Transition) error {
	if len(d.stack) == 0 {
		return ErrEmptyStack
	}
	d.schedule(func() { d.pop(t) })
	return nil
}

func (d *Director) swap(next *scene.Scene, t Transition, allowRetain bool) error {
	switch {
	case next == nil:
		return ErrNilScene
	case next.Destroyed():
		return scene.ErrSceneDestroyed
	case slices.Contains(d.stack, next):
		return ErrSceneInStack
	}
	d.schedule(func() {
		// The scene may have been pushed or destroyed by an earlier
		// pending request.
		if next.Destroyed() || slices.Contains(d.stack, next) {
			return
		}
		d.push(next, t, allowRetain)
	})
	return nil
}

func (d *Director) schedule(fn func()) {
	if d.inFrame {
		d.pending = append(d.pending, fn)
		return
	}
	fn()
}

func (d *Director) push(next *scene.Scene, t Transition, allowRetain bool) {
	d.finishTransition()

	from := d.Current()
	retain := allowRetain && from != nil && from.Stackable()
	if retain || from == nil {
		d.stack = append(d.stack, next)
	} else {
		d.stack[len(d.stack)-1] = next
	}
	d.begin(from, next, t, retain)
}

func (d *Director) pop(t Transition) {
	d.finishTransition()
	if len(d.stack) == 0 {
		return
	}

	from := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	to := d.Current()
	if to == nil {
		from.Pause()
		from.Destroy()
		d.logger.Info("popped last scene", "scene", from.Name())
		return
	}
	d.begin(from, to, t, false)
}

// begin pauses from, brings to up to date and either starts t or completes
// the switch immediately.
func (d *Director) begin(from, to *scene.Scene, t Transition, retain bool) {
	if from != nil {
		from.Pause()
		from.PauseForTransition()
		if t != nil {
			from.TransitionedFromThisScene(to)
			to.TransitionedToThisScene(from)
		}
	}
	if d.sized {
		to.Resize(d.width, d.height)
	}
	to.Resume()

	d.logger.Info("switched scene",
		"from", sceneName(from),
		"to", to.Name(),
		"retained", retain,
		"depth", len(d.stack),
		"transition", t != nil,
	)

	if t == nil || from == nil {
		d.complete(from, retain)
		return
	}
	d.transition = &activeTransition{transition: t, from: from, to: to, retain: retain}
	t.Start(from, to)
}

func (d *Director) finishTransition() {
	if d.transition == nil {
		return
	}
	at := d.transition
	d.transition = nil
	d.complete(at.from, at.retain)
}

func (d *Director) complete(from *scene.Scene, retain bool) {
	if from == nil || retain {
		return
	}
	from.Destroy()
}

// Resize records the size and forwards it to the current scene.
func (d *Director) Resize(width, height int) {
	d.width, d.height, d.sized = width, height, true
	if cur := d.Current(); cur != nil {
		cur.Resize(width, height)
	}
}

// Size returns the last size passed to Resize.
func (d *Director) Size() (width, height int) { return d.width, d.height }

// Update advances the transition and updates the current scene. Swaps
// requested during the update are applied before it returns.
func (d *Director) Update(dt float64) {
	d.inFrame = true
	if at := d.transition; at != nil && at.transition.Advance(dt) {
		d.transition = nil
		d.complete(at.from, at.retain)
	}
	if cur := d.Current(); cur != nil {
		cur.Update(dt)
	}
	d.inFrame = false
	d.flush()
}

func (d *Director) flush() {
	for len(d.pending) > 0 {
		pending := d.pending
		d.pending = nil
		for _, fn := range pending {
			fn()
		}
	}
}

// Render draws the current scene, or the transition while one runs.
func (d *Director) Render() {
	cur := d.Current()
	if cur == nil {
		return
	}
	d.inFrame = true
	if at := d.transition; at != nil {
		at.transition.Render(at.from, at.to)
	} else {
		cur.Render()
	}
	d.inFrame = false
	d.flush()
}

func (d *Director) Pause() {
	if cur := d.Current(); cur != nil {
		cur.Pause()
	}
}

func (d *Director) Resume() {
	if cur := d.Current(); cur != nil {
		cur.Resume()
	}
}

// Destroy tears down every scene, top of the stack first.
func (d *Director) Destroy() {
	d.pending = nil
	d.finishTransition()
	for i := len(d.stack) - 1; i >= 0; i-- {
		s := d.stack[i]
		s.Pause()
		s.Destroy()
	}
	d.stack = nil
	d.logger.Info("destroyed")
}

// Run drives Update and Render at a fixed interval until ctx is cancelled
// or the stack empties. The scenes are destroyed before Run returns.
func (d *Director) Run(ctx context.Context, interval time.Duration) {
	defer d.Destroy()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			d.Update(dt)
			d.Render()
			if d.Empty() {
				return
			}
		}
	}
}

func sceneName(s *scene.Scene) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
