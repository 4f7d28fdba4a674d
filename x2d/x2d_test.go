package x2d_test

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
	"github.com/plus3/scenekit/x2d"
)

type region struct{ w, h int }

func (r region) Width() int  { return r.w }
func (r region) Height() int { return r.h }

// captureBackend records draw options so tests can inspect them.
type captureBackend struct {
	render.Discard
	draws  []render.DrawOptions
	shapes []string
}

func (b *captureBackend) NewSpriteBatch() render.SpriteBatch {
	return &captureBatch{backend: b}
}

func (b *captureBackend) NewShapeRenderer() render.ShapeRenderer {
	return &captureShapes{backend: b}
}

type captureBatch struct {
	backend *captureBackend
	drawing bool
}

func (c *captureBatch) Begin(mgl32.Mat4) { c.drawing = true }
func (c *captureBatch) End()             { c.drawing = false }
func (c *captureBatch) Drawing() bool    { return c.drawing }
func (c *captureBatch) Dispose()         {}
func (c *captureBatch) Draw(_ render.Region, opts render.DrawOptions) {
	c.backend.draws = append(c.backend.draws, opts)
}

type captureShapes struct {
	render.ShapeRenderer
	backend *captureBackend
}

func (c *captureShapes) Begin(mgl32.Mat4, render.ShapeType) {}
func (c *captureShapes) End()                               {}
func (c *captureShapes) SetColor(color.Color)               {}
func (c *captureShapes) Rect(x, y, w, h float32) {
	c.backend.shapes = append(c.backend.shapes, "rect")
}
func (c *captureShapes) Circle(x, y, r float32) {
	c.backend.shapes = append(c.backend.shapes, "circle")
}
func (c *captureShapes) Point(x, y float32) {
	c.backend.shapes = append(c.backend.shapes, "point")
}

func newScene(t *testing.T, opts ...scene.Option) (*scene.Scene, *captureBackend) {
	t.Helper()
	backend := &captureBackend{}
	s := scene.New(scene.NewTestContext(backend), opts...)
	s.Resize(640, 384)
	s.Resume()
	return s, backend
}

func TestNewSpriteEntity(t *testing.T) {
	s, _ := newScene(t)

	e := x2d.NewSpriteEntityAt(s, "coin", region{w: 64, h: 32}, 3, 4)

	sr := scene.Get[*x2d.SpriteRenderer](e)
	require.NotNil(t, sr)
	assert.Equal(t, mgl32.Vec3{2, 1, 0}, e.Transform().Size())
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, e.Transform().Origin())
	assert.Equal(t, float32(3), e.Transform().X())
	assert.Nil(t, e.Scene())
}

func TestSpriteRendererDraws(t *testing.T) {
	s, backend := newScene(t)
	e := x2d.NewSpriteEntityAt(s, "coin", region{w: 32, h: 32}, 5, 6)
	e.Transform().SetRotation(30)
	sr := scene.Get[*x2d.SpriteRenderer](e)
	sr.FlipX = true
	require.NoError(t, s.AddEntity(e))

	s.Render()

	require.Len(t, backend.draws, 1)
	got := backend.draws[0]
	assert.Equal(t, float32(5), got.X)
	assert.Equal(t, float32(6), got.Y)
	assert.Equal(t, float32(1), got.Width)
	assert.Equal(t, float32(0.5), got.OriginX)
	assert.Equal(t, float32(30), got.Rotation)
	assert.True(t, got.FlipX)

	t.Run("invisible", func(t *testing.T) {
		backend.draws = nil
		sr.Visible = false
		s.Render()
		assert.Empty(t, backend.draws)
		sr.Visible = true
	})

	t.Run("culled", func(t *testing.T) {
		backend.draws = nil
		sr.Cull = true
		e.Transform().SetPosition(100, 100)
		s.Render()
		assert.Empty(t, backend.draws)

		e.Transform().SetPosition(1, 1)
		s.Render()
		assert.Len(t, backend.draws, 1)
	})

	t.Run("opacity", func(t *testing.T) {
		sr.SetOpacity(0.5)
		_, _, _, a := sr.Color.RGBA()
		assert.InDelta(t, 0x7f7f, a, 0x101)
	})
}

func TestSpriteRendererFollowsCameraReplacement(t *testing.T) {
	s, backend := newScene(t)
	e := x2d.NewSpriteEntity(s, "hero", region{w: 32, h: 32})
	require.NoError(t, s.AddEntity(e))
	s.Render()
	require.Len(t, backend.draws, 1)

	require.NoError(t, s.SetMainCamera(scene.NewCamera2D(scene.NewViewport(scene.ScalingFit, 10, 10))))
	backend.draws = nil
	s.Render()
	assert.Len(t, backend.draws, 1)
}

func TestActorSpriteEntity(t *testing.T) {
	s, backend := newScene(t)
	actor := scene.NewBasicActor()
	e := x2d.NewActorSpriteEntity(s, "actor", region{w: 64, h: 64}, actor)
	require.NoError(t, s.AddEntity(e))

	assert.Equal(t, float32(2), actor.Width())

	actor.AddAction(scene.MoveTo(4, 0, 0))
	s.Update(0.016)
	s.Render()
	require.Len(t, backend.draws, 1)
	assert.Equal(t, float32(4), backend.draws[0].X)
}

func TestDebugRenderers(t *testing.T) {
	s, backend := newScene(t, scene.WithDebugRender(true))

	box := scene.NewEntity("box")
	box.Transform().SetSize(2, 2)
	require.NoError(t, box.AddUnit(x2d.NewBoxDebugRenderer(render.ShapeLine, color.White)))
	require.NoError(t, box.AddUnit(x2d.NewBoxDebugRenderer(render.ShapePoint, nil)))
	require.NoError(t, s.AddEntity(box))

	ball := scene.NewEntity("ball")
	require.NoError(t, ball.AddUnit(x2d.NewCircleDebugRenderer(render.ShapeFilled, color.Black)))
	require.NoError(t, s.AddEntity(ball))

	s.Render()

	assert.Equal(t, []string{"circle", "rect", "point", "point", "point", "point"}, backend.shapes)
}
