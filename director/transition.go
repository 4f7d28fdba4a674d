package director

import (
	"time"

	"github.com/plus3/scenekit/scene"
)

// Transition animates a switch from one scene to the next. While it runs the
// director updates only the incoming scene and delegates rendering to the
// transition.
type Transition interface {
	// Start is called once, after the incoming scene has been resumed.
	Start(from, to *scene.Scene)
	// Advance moves the transition forward and reports whether it is done.
	Advance(dt float64) bool
	// Render draws the in-between frame.
	Render(from, to *scene.Scene)
}

// Delay keeps showing the outgoing scene for a fixed duration, then cuts to
// the incoming one.
type Delay struct {
	Duration time.Duration

	elapsed time.Duration
}

// NewDelay returns a Delay transition of d.
func NewDelay(d time.Duration) *Delay {
	return &Delay{Duration: d}
}

func (d *Delay) Start(_, _ *scene.Scene) {
	d.elapsed = 0
}

func (d *Delay) Advance(dt float64) bool {
	d.elapsed += time.Duration(dt * float64(time.Second))
	return d.Done()
}

func (d *Delay) Done() bool {
	return d.elapsed >= d.Duration
}

// Progress returns how far through the delay the transition is, in [0, 1].
func (d *Delay) Progress() float64 {
	if d.Duration <= 0 {
		return 1
	}
	return min(1, float64(d.elapsed)/float64(d.Duration))
}

func (d *Delay) Render(from, to *scene.Scene) {
	if from != nil && !from.Destroyed() && !d.Done() {
		from.Render()
		return
	}
	to.Render()
}
