// Package render defines the drawing contracts that cameras and renderer units
// depend on. Concrete backends (see package ebitenrender) implement them; the
// scene runtime never talks to a graphics API directly.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeType selects which debug-draw pass a shape belongs to.
type ShapeType int

const (
	ShapeLine ShapeType = iota
	ShapeFilled
	ShapePoint
)

// String returns the string representation of the shape type.
func (s ShapeType) String() string {
	switch s {
	case ShapeLine:
		return "line"
	case ShapeFilled:
		return "filled"
	case ShapePoint:
		return "point"
	default:
		return "unknown"
	}
}

// Region is a drawable texture region handle supplied by an asset loader.
type Region interface {
	Width() int
	Height() int
}

// Model is an opaque handle to a loaded 3D model.
type Model interface {
	Name() string
}

// DrawOptions places a region in world space. Rotation is in degrees,
// counter-clockwise around the origin.
type DrawOptions struct {
	X, Y             float32
	OriginX, OriginY float32
	Width, Height    float32
	ScaleX, ScaleY   float32
	Rotation         float32
	FlipX, FlipY     bool
	Color            color.Color
}

// SpriteBatch collects 2D draws between Begin and End.
type SpriteBatch interface {
	Begin(projection mgl32.Mat4)
	Draw(region Region, opts DrawOptions)
	End()
	Drawing() bool
	Dispose()
}

// ShapeRenderer draws debug primitives in world space.
type ShapeRenderer interface {
	Begin(projection mgl32.Mat4, shape ShapeType)
	SetColor(c color.Color)
	Line(x0, y0, x1, y1 float32)
	Rect(x, y, width, height float32)
	Circle(cx, cy, radius float32)
	Point(x, y float32)
	End()
	Dispose()
}

// ModelBatch collects 3D model draws between Begin and End.
type ModelBatch interface {
	Begin(projection mgl32.Mat4)
	Render(model Model, transform mgl32.Mat4, env *Environment)
	End()
	Dispose()
}

// Backend is the rendering surface owned by the frame driver.
type Backend interface {
	// Clear fills the current target with c. When depth is true the depth
	// buffer is cleared as well.
	Clear(c color.Color, depth bool)
	NewSpriteBatch() SpriteBatch
	NewShapeRenderer() ShapeRenderer
	// NewModelBatch returns nil when the backend has no 3D support.
	NewModelBatch() ModelBatch
}

// ViewportSetter is implemented by backends that can confine drawing to a
// pixel rectangle of the target. Cameras set it before beginning a batch.
type ViewportSetter interface {
	SetViewport(x, y, width, height int)
}
