// Package ebitenrender implements render.Backend on top of Ebiten images.
//
// Cameras hand the backend an orthographic projection in world units; the
// backend maps normalized device coordinates onto the current target so
// that +Y points up in world space and down on screen.
package ebitenrender

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/scenekit/render"
)

// Backend draws into a target image set once per frame with SetTarget.
type Backend struct {
	target   *ebiten.Image
	viewport image.Rectangle
}

func NewBackend() *Backend {
	return &Backend{}
}

// SetTarget sets the image subsequent draws go to. Hosts call it at the
// start of every Draw with the screen image.
func (b *Backend) SetTarget(target *ebiten.Image) {
	b.target = target
}

func (b *Backend) Target() *ebiten.Image { return b.target }

// Clear fills the target. Ebiten has no depth buffer so depth is ignored.
func (b *Backend) Clear(c color.Color, _ bool) {
	if b.target == nil {
		return
	}
	b.target.Fill(c)
}

func (b *Backend) NewSpriteBatch() render.SpriteBatch {
	return &spriteBatch{backend: b}
}

func (b *Backend) NewShapeRenderer() render.ShapeRenderer {
	return &shapeRenderer{backend: b}
}

// NewModelBatch returns nil; Ebiten has no 3D pipeline.
func (b *Backend) NewModelBatch() render.ModelBatch {
	return nil
}

// SetViewport confines later batches to a pixel rectangle of the target.
// An empty rectangle selects the whole target.
func (b *Backend) SetViewport(x, y, width, height int) {
	b.viewport = image.Rect(x, y, x+width, y+height)
}

// screen returns the image batches draw into and its pixel rectangle. The
// image is nil when no target is set.
func (b *Backend) screen() (*ebiten.Image, image.Rectangle) {
	if b.target == nil {
		return nil, image.Rectangle{}
	}
	bounds := b.target.Bounds()
	if b.viewport.Empty() {
		return b.target, bounds
	}
	r := b.viewport.Add(bounds.Min).Intersect(bounds)
	if r.Empty() || r == bounds {
		return b.target, bounds
	}
	return b.target.SubImage(r).(*ebiten.Image), r
}

// Region is a render.Region backed by an Ebiten image.
type Region struct {
	Image *ebiten.Image
}

// NewRegion wraps the part of img inside rect. An empty rect selects the
// whole image.
func NewRegion(img *ebiten.Image, rect image.Rectangle) *Region {
	if rect.Empty() {
		return &Region{Image: img}
	}
	return &Region{Image: img.SubImage(rect).(*ebiten.Image)}
}

func (r *Region) Width() int  { return r.Image.Bounds().Dx() }
func (r *Region) Height() int { return r.Image.Bounds().Dy() }

// screenMatrix maps world coordinates through projection onto the pixel
// rectangle r.
func screenMatrix(projection mgl32.Mat4, r image.Rectangle) mgl32.Mat4 {
	w, h := float32(r.Dx())/2, float32(r.Dy())/2
	cx, cy := float32(r.Min.X)+w, float32(r.Min.Y)+h
	return mgl32.Translate3D(cx, cy, 0).Mul4(mgl32.Scale3D(w, -h, 1)).Mul4(projection)
}

// geoM extracts the 2D affine part of m.
func geoM(m mgl32.Mat4) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.At(0, 0)))
	g.SetElement(0, 1, float64(m.At(0, 1)))
	g.SetElement(0, 2, float64(m.At(0, 3)))
	g.SetElement(1, 0, float64(m.At(1, 0)))
	g.SetElement(1, 1, float64(m.At(1, 1)))
	g.SetElement(1, 2, float64(m.At(1, 3)))
	return g
}
