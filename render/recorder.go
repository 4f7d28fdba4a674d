package render

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Recorder is a Backend that draws nothing and records every call in order.
// It is used by tests and by headless runs where draw ordering matters more
// than pixels.
type Recorder struct {
	Calls []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) Clear(c color.Color, depth bool) {
	if depth {
		r.record("clear+depth")
		return
	}
	r.record("clear")
}

func (r *Recorder) NewSpriteBatch() SpriteBatch {
	return &recordingSpriteBatch{rec: r}
}

func (r *Recorder) NewShapeRenderer() ShapeRenderer {
	return &recordingShapeRenderer{rec: r}
}

func (r *Recorder) NewModelBatch() ModelBatch {
	return &recordingModelBatch{rec: r}
}

type recordingSpriteBatch struct {
	rec     *Recorder
	drawing bool
}

func (b *recordingSpriteBatch) Begin(projection mgl32.Mat4) {
	b.drawing = true
	b.rec.record("sprite.begin")
}

func (b *recordingSpriteBatch) Draw(region Region, opts DrawOptions) {
	b.rec.record("sprite.draw %dx%d@%.2f,%.2f", region.Width(), region.Height(), opts.X, opts.Y)
}

func (b *recordingSpriteBatch) End() {
	b.drawing = false
	b.rec.record("sprite.end")
}

func (b *recordingSpriteBatch) Drawing() bool {
	return b.drawing
}

func (b *recordingSpriteBatch) Dispose() {
	b.rec.record("sprite.dispose")
}

type recordingShapeRenderer struct {
	rec *Recorder
}

func (s *recordingShapeRenderer) Begin(projection mgl32.Mat4, shape ShapeType) {
	s.rec.record("shape.begin %s", shape)
}

func (s *recordingShapeRenderer) SetColor(c color.Color) {}

func (s *recordingShapeRenderer) Line(x0, y0, x1, y1 float32) {
	s.rec.record("shape.line")
}

func (s *recordingShapeRenderer) Rect(x, y, width, height float32) {
	s.rec.record("shape.rect")
}

func (s *recordingShapeRenderer) Circle(cx, cy, radius float32) {
	s.rec.record("shape.circle")
}

func (s *recordingShapeRenderer) Point(x, y float32) {
	s.rec.record("shape.point")
}

func (s *recordingShapeRenderer) End() {
	s.rec.record("shape.end")
}

func (s *recordingShapeRenderer) Dispose() {
	s.rec.record("shape.dispose")
}

type recordingModelBatch struct {
	rec *Recorder
}

func (m *recordingModelBatch) Begin(projection mgl32.Mat4) {
	m.rec.record("model.begin")
}

func (m *recordingModelBatch) Render(model Model, transform mgl32.Mat4, env *Environment) {
	m.rec.record("model.render %s", model.Name())
}

func (m *recordingModelBatch) End() {
	m.rec.record("model.end")
}

func (m *recordingModelBatch) Dispose() {
	m.rec.record("model.dispose")
}

// Discard is a Backend whose batches accept and drop every call.
type Discard struct{}

func (Discard) Clear(color.Color, bool)         {}
func (Discard) NewSpriteBatch() SpriteBatch     { return &discardBatch{} }
func (Discard) NewShapeRenderer() ShapeRenderer { return discardShapes{} }
func (Discard) NewModelBatch() ModelBatch       { return discardModels{} }

type discardBatch struct{ drawing bool }

func (b *discardBatch) Begin(mgl32.Mat4)         { b.drawing = true }
func (b *discardBatch) Draw(Region, DrawOptions) {}
func (b *discardBatch) End()                     { b.drawing = false }
func (b *discardBatch) Drawing() bool            { return b.drawing }
func (b *discardBatch) Dispose()                 {}

type discardShapes struct{}

func (discardShapes) Begin(mgl32.Mat4, ShapeType)             {}
func (discardShapes) SetColor(color.Color)                    {}
func (discardShapes) Line(float32, float32, float32, float32) {}
func (discardShapes) Rect(float32, float32, float32, float32) {}
func (discardShapes) Circle(float32, float32, float32)        {}
func (discardShapes) Point(float32, float32)                  {}
func (discardShapes) End()                                    {}
func (discardShapes) Dispose()                                {}

type discardModels struct{}

func (discardModels) Begin(mgl32.Mat4)                       {}
func (discardModels) Render(Model, mgl32.Mat4, *Environment) {}
func (discardModels) End()                                   {}
func (discardModels) Dispose()                               {}
