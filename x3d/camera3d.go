// Package x3d provides a perspective camera and a model renderer unit.
package x3d

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/scenekit/config"
	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

// Camera3D is a perspective camera. It clears color and depth and opens a
// model batch before the scene renders.
type Camera3D struct {
	scene.BaseCamera

	fov       float32
	near, far float32

	eye, target, up mgl32.Vec3

	background  color.Color
	environment *render.Environment
	batch       render.ModelBatch
}

// NewCamera3D creates a camera at (5, 5, 5) looking at the origin. fov is
// the vertical field of view in degrees.
func NewCamera3D(viewport *scene.Viewport, fov, near, far float32) *Camera3D {
	return &Camera3D{
		BaseCamera:  scene.NewBaseCamera(viewport, false),
		fov:         fov,
		near:        near,
		far:         far,
		eye:         mgl32.Vec3{5, 5, 5},
		up:          mgl32.Vec3{0, 1, 0},
		background:  color.Black,
		environment: render.DefaultEnvironment(),
	}
}

// NewCamera3DFromSettings sizes the camera from s.
func NewCamera3DFromSettings(s config.Settings) *Camera3D {
	vp := scene.NewViewport(scene.ScalingExtend, s.ViewportWidth, s.ViewportHeight)
	return NewCamera3D(vp, s.CameraFieldOfView, s.CameraNear, s.CameraFar)
}

func (c *Camera3D) FieldOfView() float32 { return c.fov }

func (c *Camera3D) SetFieldOfView(fov float32) { c.fov = fov }

func (c *Camera3D) ClipRange() (near, far float32) { return c.near, c.far }

func (c *Camera3D) SetClipRange(near, far float32) {
	c.near, c.far = near, far
}

func (c *Camera3D) Eye() mgl32.Vec3 { return c.eye }

func (c *Camera3D) Target() mgl32.Vec3 { return c.target }

// LookAt points the camera from eye at target.
func (c *Camera3D) LookAt(eye, target mgl32.Vec3) {
	c.eye, c.target = eye, target
}

func (c *Camera3D) SetUp(up mgl32.Vec3) { c.up = up }

func (c *Camera3D) Environment() *render.Environment { return c.environment }

func (c *Camera3D) SetEnvironment(env *render.Environment) { c.environment = env }

func (c *Camera3D) SetBackground(bg color.Color) { c.background = bg }

// ModelBatch returns the batch model renderers draw into, or nil.
func (c *Camera3D) ModelBatch() render.ModelBatch { return c.batch }

// View returns the world-to-camera matrix.
func (c *Camera3D) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.target, c.up)
}

// Projection returns the combined perspective and view matrix.
func (c *Camera3D) Projection() mgl32.Mat4 {
	aspect := float32(1)
	if h := c.ViewportHeight(); h > 0 {
		aspect = c.ViewportWidth() / h
	}
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far).Mul4(c.View())
}

func (c *Camera3D) PreRender(f *scene.Frame) {
	backend := f.Scene.Context().Backend
	if c.batch == nil {
		c.batch = backend.NewModelBatch()
	}
	backend.Clear(c.background, true)
	if vs, ok := backend.(render.ViewportSetter); ok {
		vs.SetViewport(c.Viewport().ScreenRect())
	}
	if c.batch != nil {
		c.batch.Begin(c.Projection())
	}
}

func (c *Camera3D) PostRender(*scene.Frame) {
	if c.batch != nil {
		c.batch.End()
	}
}

func (c *Camera3D) Detach() { c.release() }

func (c *Camera3D) Destroy() { c.release() }

func (c *Camera3D) release() {
	if c.batch == nil {
		return
	}
	c.batch.Dispose()
	c.batch = nil
}
