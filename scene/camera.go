package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// MainCameraTag is the tag of every scene's camera entity.
const MainCameraTag = "MainCamera"

// Camera is the unit that owns a scene's projection. Each scene has exactly
// one, attached to its camera entity.
type Camera interface {
	Unit

	Viewport() *Viewport
	Projection() mgl32.Mat4
	ViewportWidth() float32
	ViewportHeight() float32
	UpdateViewport(width, height int)
}

// BackgroundSetter is a camera that clears the screen with a color.
type BackgroundSetter interface {
	SetBackground(c color.Color)
}

// BaseCamera provides the viewport handling shared by camera implementations.
// Embedders supply Projection.
type BaseCamera struct {
	BaseUnit

	viewport       *Viewport
	centerOnResize bool
}

// NewBaseCamera returns a camera base over viewport. When centerOnResize is
// set the camera entity is moved to the middle of the world on every resize.
func NewBaseCamera(viewport *Viewport, centerOnResize bool) BaseCamera {
	if viewport == nil {
		panic("scene: camera requires a viewport")
	}
	return BaseCamera{viewport: viewport, centerOnResize: centerOnResize}
}

func (c *BaseCamera) Viewport() *Viewport { return c.viewport }

func (c *BaseCamera) ViewportWidth() float32 { return c.viewport.WorldWidth() }

func (c *BaseCamera) ViewportHeight() float32 { return c.viewport.WorldHeight() }

func (c *BaseCamera) CenterOnResize() bool { return c.centerOnResize }

func (c *BaseCamera) SetCenterOnResize(center bool) { c.centerOnResize = center }

// UpdateViewport resizes the viewport to the screen and recenters the camera
// when configured to.
func (c *BaseCamera) UpdateViewport(width, height int) {
	c.viewport.Update(width, height)
	if !c.centerOnResize {
		return
	}
	if t := c.Transform(); t != nil {
		t.SetPosition(c.viewport.WorldWidth()/2, c.viewport.WorldHeight()/2)
	}
}

// position returns the camera entity's position, or the origin when detached.
func (c *BaseCamera) position() mgl32.Vec3 {
	if t := c.Transform(); t != nil {
		return t.Position()
	}
	return mgl32.Vec3{}
}
