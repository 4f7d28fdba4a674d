package x2d

import (
	"image/color"

	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

// DrawFunc draws an entity's debug shape in world space for the given pass.
type DrawFunc func(shapes render.ShapeRenderer, shape render.ShapeType, t scene.Spatial)

// DebugRenderer draws a debug shape during the scene's debug pass that
// matches its Shape. Debug passes only run when the scene has debug
// rendering enabled.
type DebugRenderer struct {
	scene.BaseUnit

	Shape render.ShapeType
	Color color.Color
	draw  DrawFunc
}

// NewDebugRenderer creates a renderer that calls draw for the given shape.
func NewDebugRenderer(shape render.ShapeType, c color.Color, draw DrawFunc) *DebugRenderer {
	if c == nil {
		c = color.White
	}
	return &DebugRenderer{Shape: shape, Color: c, draw: draw}
}

// NewBoxDebugRenderer outlines or fills the entity's bounds. As points it
// marks the four corners.
func NewBoxDebugRenderer(shape render.ShapeType, c color.Color) *DebugRenderer {
	return NewDebugRenderer(shape, c, drawBox)
}

// NewCircleDebugRenderer draws the largest circle that fits the entity's
// bounds. As a point it marks the center.
func NewCircleDebugRenderer(shape render.ShapeType, c color.Color) *DebugRenderer {
	return NewDebugRenderer(shape, c, drawCircle)
}

func (r *DebugRenderer) DrawDebugLine(shapes render.ShapeRenderer) {
	r.drawIf(render.ShapeLine, shapes)
}

func (r *DebugRenderer) DrawDebugFilled(shapes render.ShapeRenderer) {
	r.drawIf(render.ShapeFilled, shapes)
}

func (r *DebugRenderer) DrawDebugPoint(shapes render.ShapeRenderer) {
	r.drawIf(render.ShapePoint, shapes)
}

func (r *DebugRenderer) drawIf(shape render.ShapeType, shapes render.ShapeRenderer) {
	if r.Shape != shape || r.draw == nil {
		return
	}
	t := r.Transform()
	if t == nil {
		return
	}
	shapes.SetColor(r.Color)
	r.draw(shapes, shape, t)
}

// bounds returns the scaled rectangle of t, keeping the origin fixed.
func bounds(t scene.Spatial) (x, y, w, h float32) {
	pos, size, scale, origin := t.Position(), t.Size(), t.Scale(), t.Origin()
	w, h = size.X()*scale.X(), size.Y()*scale.Y()
	x = pos.X() + origin.X() - origin.X()*scale.X()
	y = pos.Y() + origin.Y() - origin.Y()*scale.Y()
	return x, y, w, h
}

func drawBox(shapes render.ShapeRenderer, shape render.ShapeType, t scene.Spatial) {
	x, y, w, h := bounds(t)
	if shape == render.ShapePoint {
		shapes.Point(x, y)
		shapes.Point(x+w, y)
		shapes.Point(x+w, y+h)
		shapes.Point(x, y+h)
		return
	}
	shapes.Rect(x, y, w, h)
}

func drawCircle(shapes render.ShapeRenderer, shape render.ShapeType, t scene.Spatial) {
	x, y, w, h := bounds(t)
	cx, cy := x+w/2, y+h/2
	if shape == render.ShapePoint {
		shapes.Point(cx, cy)
		return
	}
	shapes.Circle(cx, cy, min(w, h)/2)
}
