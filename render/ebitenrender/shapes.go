package ebitenrender

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/scenekit/render"
)

const (
	strokeWidth = 1
	pointRadius = 2
)

type shapeRenderer struct {
	backend *Backend
	dst     *ebiten.Image
	screen  mgl32.Mat4
	shape   render.ShapeType
	color   color.Color
	drawing bool
}

func (s *shapeRenderer) Begin(projection mgl32.Mat4, shape render.ShapeType) {
	dst, r := s.backend.screen()
	s.dst = dst
	s.screen = screenMatrix(projection, r)
	s.shape = shape
	s.drawing = true
	if s.color == nil {
		s.color = color.White
	}
}

func (s *shapeRenderer) SetColor(c color.Color) {
	if c == nil {
		c = color.White
	}
	s.color = c
}

func (s *shapeRenderer) project(x, y float32) (float32, float32) {
	p := s.screen.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return p.X(), p.Y()
}

func (s *shapeRenderer) ready() bool {
	return s.drawing && s.dst != nil
}

func (s *shapeRenderer) Line(x0, y0, x1, y1 float32) {
	if !s.ready() {
		return
	}
	ax, ay := s.project(x0, y0)
	bx, by := s.project(x1, y1)
	vector.StrokeLine(s.dst, ax, ay, bx, by, strokeWidth, s.color, true)
}

func (s *shapeRenderer) Rect(x, y, width, height float32) {
	if !s.ready() {
		return
	}
	ax, ay := s.project(x, y)
	bx, by := s.project(x+width, y+height)
	left, top := min(ax, bx), min(ay, by)
	w, h := abs(bx-ax), abs(by-ay)
	if s.shape == render.ShapeFilled {
		vector.DrawFilledRect(s.dst, left, top, w, h, s.color, true)
		return
	}
	vector.StrokeRect(s.dst, left, top, w, h, strokeWidth, s.color, true)
}

func (s *shapeRenderer) Circle(cx, cy, radius float32) {
	if !s.ready() {
		return
	}
	x, y := s.project(cx, cy)
	r := radius * abs(s.screen.At(0, 0))
	if s.shape == render.ShapeFilled {
		vector.DrawFilledCircle(s.dst, x, y, r, s.color, true)
		return
	}
	vector.StrokeCircle(s.dst, x, y, r, strokeWidth, s.color, true)
}

func (s *shapeRenderer) Point(x, y float32) {
	if !s.ready() {
		return
	}
	px, py := s.project(x, y)
	vector.DrawFilledCircle(s.dst, px, py, pointRadius, s.color, true)
}

func (s *shapeRenderer) End()     { s.drawing, s.dst = false, nil }
func (s *shapeRenderer) Dispose() { s.drawing, s.dst = false, nil }

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
