// Package x2d provides 2D renderer units and helpers for building sprite
// entities.
package x2d

import (
	"image/color"

	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

// BatchCamera is a camera that exposes the sprite batch it opens each frame.
// scene.Camera2D implements it.
type BatchCamera interface {
	scene.Camera
	SpriteBatch() render.SpriteBatch
}

// Culler reports whether a world rectangle is visible.
type Culler interface {
	Overlaps(x, y, width, height float32) bool
}

// SpriteRenderer draws a texture region at its entity's transform using the
// scene's main camera.
type SpriteRenderer struct {
	scene.BaseUnit

	region render.Region
	units  scene.WorldUnits

	Color   color.Color
	FlipX   bool
	FlipY   bool
	Visible bool
	// Cull skips drawing when the entity is outside the camera's view.
	Cull bool

	camera BatchCamera
}

// NewSpriteRenderer creates a visible renderer for region. On attach the
// entity is resized to the region's world size.
func NewSpriteRenderer(region render.Region, units scene.WorldUnits) *SpriteRenderer {
	return &SpriteRenderer{
		region:  region,
		units:   units,
		Color:   color.White,
		Visible: true,
	}
}

func (r *SpriteRenderer) Region() render.Region { return r.region }

// SetRegion replaces the drawn region and resizes the entity to fit it.
func (r *SpriteRenderer) SetRegion(region render.Region) {
	r.region = region
	r.SetWorldSize()
}

// SetOpacity sets the alpha of the tint color.
func (r *SpriteRenderer) SetOpacity(opacity float32) {
	cr, cg, cb, _ := r.Color.RGBA()
	a := uint8(max(0, min(1, opacity)) * 255)
	r.Color = color.NRGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: a}
}

// SetCamera pins the renderer to c instead of the scene's main camera.
func (r *SpriteRenderer) SetCamera(c BatchCamera) {
	r.camera = c
}

// SetWorldSize sizes the entity to the region in world units and moves its
// origin to the center. It does nothing while the renderer is detached.
func (r *SpriteRenderer) SetWorldSize() {
	t := r.Transform()
	if t == nil || r.region == nil {
		return
	}
	w, h := r.units.RegionSize(r.region)
	t.SetSize(w, h)
	t.SetOrigin(w/2, h/2)
}

func (r *SpriteRenderer) Attach() {
	r.SetWorldSize()
}

func (r *SpriteRenderer) Detach() {
	r.camera = nil
}

func (r *SpriteRenderer) MainCameraChanged(scene.Camera) {
	r.camera = nil
}

func (r *SpriteRenderer) resolveCamera() BatchCamera {
	if r.camera != nil && r.camera.Scene() == r.Scene() {
		return r.camera
	}
	s := r.Scene()
	if s == nil {
		return nil
	}
	r.camera, _ = s.MainCamera().(BatchCamera)
	return r.camera
}

func (r *SpriteRenderer) Render(*scene.Frame) {
	if !r.Visible || r.region == nil {
		return
	}
	cam := r.resolveCamera()
	if cam == nil {
		return
	}
	batch := cam.SpriteBatch()
	if batch == nil || !batch.Drawing() {
		return
	}

	t := r.Transform()
	pos, size := t.Position(), t.Size()
	if r.Cull {
		if c, ok := cam.(Culler); ok && !c.Overlaps(pos.X(), pos.Y(), size.X(), size.Y()) {
			return
		}
	}

	scale, origin := t.Scale(), t.Origin()
	batch.Draw(r.region, render.DrawOptions{
		X:        pos.X(),
		Y:        pos.Y(),
		OriginX:  origin.X(),
		OriginY:  origin.Y(),
		Width:    size.X(),
		Height:   size.Y(),
		ScaleX:   scale.X(),
		ScaleY:   scale.Y(),
		Rotation: t.Angle(),
		FlipX:    r.FlipX,
		FlipY:    r.FlipY,
		Color:    r.Color,
	})
}
