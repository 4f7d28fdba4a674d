package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scenekit/scene"
)

func TestTransform(t *testing.T) {
	tr := scene.NewTransform()

	tr.SetPosition(3, 4)
	tr.Translate(1, -1)
	assert.Equal(t, mgl32.Vec3{4, 3, 0}, tr.Position())

	tr.SetRotation(90)
	assert.Equal(t, float32(90), tr.Angle())
	assert.Equal(t, mgl32.Vec3{0, 0, 90}, tr.Rotation())

	tr.SetSize(2, 1)
	assert.Equal(t, float32(2), tr.Width())
	assert.Equal(t, float32(1), tr.Height())
}

func TestTransformMatrix(t *testing.T) {
	tr := scene.NewTransform()
	tr.SetPosition(10, 5)
	tr.SetOrigin(1, 1)
	tr.SetRotation(90)
	tr.SetScale(2, 2)

	// The origin is the pivot: it stays put relative to the position.
	pivot := tr.Matrix().Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	assert.InDelta(t, 11, pivot.X(), 1e-4)
	assert.InDelta(t, 6, pivot.Y(), 1e-4)

	corner := tr.Matrix().Mul4x1(mgl32.Vec4{2, 1, 0, 1})
	assert.InDelta(t, 11, corner.X(), 1e-4)
	assert.InDelta(t, 8, corner.Y(), 1e-4)
}

func TestActorTransform(t *testing.T) {
	actor := scene.NewBasicActor()
	actor.SetPosition(1, 2)
	e := scene.NewActorEntity("hero", actor)

	at, ok := e.Transform().(*scene.ActorTransform)
	require.True(t, ok)
	assert.Same(t, actor, at.Actor())
	assert.Same(t, at, scene.Get[*scene.ActorTransform](e))
	assert.Equal(t, float32(1), at.X())

	t.Run("setters write through", func(t *testing.T) {
		at.SetPosition(5, 3)
		assert.Equal(t, float32(5), actor.X())
		assert.Equal(t, float32(3), actor.Y())

		at.SetRotation(45)
		at.SetScale(2, 3)
		at.SetSize(4, 5)
		at.SetOrigin(2, 2.5)
		assert.Equal(t, float32(45), actor.Rotation())
		assert.Equal(t, float32(3), actor.ScaleY())
		assert.Equal(t, float32(5), actor.Height())
		assert.Equal(t, float32(2.5), actor.OriginY())

		at.Translate(1, 1)
		assert.Equal(t, float32(6), actor.X())
	})

	t.Run("getters read the actor", func(t *testing.T) {
		actor.SetPosition(-1, -2)
		actor.SetRotation(10)
		assert.Equal(t, mgl32.Vec3{-1, -2, 0}, at.Position())
		assert.Equal(t, float32(10), at.Angle())
	})

	t.Run("sync copies the actor", func(t *testing.T) {
		actor.SetPosition(7, 8)
		actor.SetScale(0.5, 0.5)
		at.Sync()
		assert.Equal(t, float32(7), at.Transform.X())
		assert.Equal(t, float32(0.5), at.Transform.Scale().X())
	})

	t.Run("synced every pre-update", func(t *testing.T) {
		s, _ := newTestScene()
		s.Resume()
		require.NoError(t, s.AddEntity(e))

		actor.SetPosition(42, 0)
		s.Update(0.016)
		assert.Equal(t, float32(42), at.Transform.X())
	})

	assert.Panics(t, func() { scene.NewActorTransform(nil) })
}

// chain queues a follow-up action the first time it runs.
type chain struct {
	next scene.Action
}

func (c *chain) Act(a scene.Actor, _ float64) bool {
	a.(*scene.BasicActor).AddAction(c.next)
	return true
}

func TestBasicActorActionsQueuedWhileActing(t *testing.T) {
	actor := scene.NewBasicActor()
	actor.AddAction(&chain{next: scene.MoveTo(7, 0, 0)})
	actor.AddAction(scene.RotateBy(90, 1))
	actor.AddAction(scene.ScaleTo(2, 2, 1))

	actor.Act(0.5)
	assert.True(t, actor.HasActions())
	assert.Zero(t, actor.X(), "queued actions wait for the next call")

	actor.Act(0.5)
	assert.Equal(t, float32(7), actor.X())
	assert.InDelta(t, 90, actor.Rotation(), 1e-4)
	assert.InDelta(t, 2, actor.ScaleX(), 1e-4)
	assert.False(t, actor.HasActions())
}
