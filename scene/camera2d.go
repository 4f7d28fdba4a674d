package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/scenekit/render"
)

// Camera2D is an orthographic camera centered on its entity's position. It
// clears the screen and opens a sprite batch before the scene renders, and
// closes the batch afterwards.
type Camera2D struct {
	BaseCamera

	zoom       float32
	background color.Color
	batch      render.SpriteBatch
}

// NewCamera2D creates a camera over viewport that recenters on resize.
func NewCamera2D(viewport *Viewport) *Camera2D {
	return &Camera2D{
		BaseCamera: NewBaseCamera(viewport, true),
		zoom:       1,
		background: color.RGBA{A: 255},
	}
}

func (c *Camera2D) Zoom() float32 { return c.zoom }

// SetZoom scales the visible area. Values above 1 show more of the world.
func (c *Camera2D) SetZoom(zoom float32) {
	if zoom > 0 {
		c.zoom = zoom
	}
}

func (c *Camera2D) Background() color.Color { return c.background }

func (c *Camera2D) SetBackground(bg color.Color) { c.background = bg }

// SpriteBatch returns the batch renderer units draw into, or nil before the
// first render.
func (c *Camera2D) SpriteBatch() render.SpriteBatch { return c.batch }

// Projection returns the orthographic projection for the visible area.
func (c *Camera2D) Projection() mgl32.Mat4 {
	left, bottom, right, top := c.Bounds()
	return mgl32.Ortho2D(left, right, bottom, top)
}

// Bounds returns the visible world rectangle.
func (c *Camera2D) Bounds() (left, bottom, right, top float32) {
	p := c.position()
	hw := c.viewport.WorldWidth() * c.zoom / 2
	hh := c.viewport.WorldHeight() * c.zoom / 2
	return p[0] - hw, p[1] - hh, p[0] + hw, p[1] + hh
}

// Overlaps reports whether the world rectangle intersects the visible area.
func (c *Camera2D) Overlaps(x, y, width, height float32) bool {
	left, bottom, right, top := c.Bounds()
	return x < right && x+width > left && y < top && y+height > bottom
}

// PreRender clears the target, confines drawing to the viewport's screen
// rectangle and begins the sprite batch. Backends without a sprite batch
// only get the clear.
func (c *Camera2D) PreRender(f *Frame) {
	backend := f.Scene.Context().Backend
	if c.batch == nil {
		c.batch = backend.NewSpriteBatch()
	}
	backend.Clear(c.background, false)
	if vs, ok := backend.(render.ViewportSetter); ok {
		vs.SetViewport(c.Viewport().ScreenRect())
	}
	if c.batch != nil {
		c.batch.Begin(c.Projection())
	}
}

func (c *Camera2D) PostRender(*Frame) {
	if c.batch != nil && c.batch.Drawing() {
		c.batch.End()
	}
}

func (c *Camera2D) Detach() { c.release() }

func (c *Camera2D) Destroy() { c.release() }

func (c *Camera2D) release() {
	if c.batch == nil {
		return
	}
	c.batch.Dispose()
	c.batch = nil
}
