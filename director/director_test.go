package director_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scenekit/director"
	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

type updateHook struct {
	scene.BaseUnit
	fn func()
}

func (h *updateHook) Update(*scene.Frame) { h.fn() }

func newContext() *scene.Context {
	return scene.NewTestContext(render.NewRecorder())
}

func onUpdate(t *testing.T, s *scene.Scene, fn func()) {
	t.Helper()
	e := scene.NewEntity("hook")
	require.NoError(t, e.AddUnit(&updateHook{fn: fn}))
	require.NoError(t, s.AddEntity(e))
}

func TestNewStartsInitialScene(t *testing.T) {
	ctx := newContext()
	first := scene.New(ctx, scene.WithName("first"))

	d := director.New(ctx, first)

	assert.Same(t, first, d.Current())
	assert.Equal(t, 1, d.Depth())
	assert.True(t, first.Active())

	d.Resize(800, 600)
	w, h := first.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestPushRetainsStackableScene(t *testing.T) {
	ctx := newContext()
	menu := scene.New(ctx, scene.WithName("menu"), scene.WithStackable(true))
	d := director.New(ctx, menu)
	d.Resize(640, 480)

	game := scene.New(ctx, scene.WithName("game"))
	require.NoError(t, d.Push(game, nil))

	assert.Equal(t, 2, d.Depth())
	assert.Same(t, game, d.Current())
	assert.False(t, menu.Active())
	assert.False(t, menu.Destroyed())
	assert.True(t, game.Active())
	w, _ := game.Size()
	assert.Equal(t, 640, w, "incoming scene is resized to the last known size")

	require.NoError(t, d.Pop(nil))
	assert.Same(t, menu, d.Current())
	assert.True(t, menu.Active())
	assert.True(t, game.Destroyed())
}

func TestPushDisposesNonStackableScene(t *testing.T) {
	ctx := newContext()
	splash := scene.New(ctx, scene.WithName("splash"))
	d := director.New(ctx, splash)

	menu := scene.New(ctx, scene.WithName("menu"))
	require.NoError(t, d.Push(menu, nil))

	assert.Equal(t, 1, d.Depth())
	assert.True(t, splash.Destroyed())
}

func TestSwitchNeverRetains(t *testing.T) {
	ctx := newContext()
	a := scene.New(ctx, scene.WithStackable(true))
	d := director.New(ctx, a)

	b := scene.New(ctx)
	require.NoError(t, d.Switch(b, nil))

	assert.Equal(t, 1, d.Depth())
	assert.True(t, a.Destroyed())
}

func TestSwapErrors(t *testing.T) {
	ctx := newContext()
	a := scene.New(ctx)
	d := director.New(ctx, a)

	assert.ErrorIs(t, d.Push(nil, nil), director.ErrNilScene)
	assert.ErrorIs(t, d.Push(a, nil), director.ErrSceneInStack)

	dead := scene.New(ctx)
	dead.Destroy()
	assert.ErrorIs(t, d.Switch(dead, nil), scene.ErrSceneDestroyed)

	require.NoError(t, d.Pop(nil))
	assert.True(t, d.Empty())
	assert.True(t, a.Destroyed())
	assert.ErrorIs(t, d.Pop(nil), director.ErrEmptyStack)
}

func TestSwapDuringUpdateIsDeferred(t *testing.T) {
	ctx := newContext()
	a := scene.New(ctx, scene.WithName("a"))
	b := scene.New(ctx, scene.WithName("b"))
	d := director.New(ctx, a)

	var destroyedDuringFrame bool
	switched := false
	onUpdate(t, a, func() {
		if switched {
			return
		}
		switched = true
		require.NoError(t, d.Switch(b, nil))
		destroyedDuringFrame = a.Destroyed() || d.Current() != a
	})

	d.Update(0.016)

	assert.False(t, destroyedDuringFrame)
	assert.Same(t, b, d.Current())
	assert.True(t, a.Destroyed())
}

func TestTransitionHooksAndDelay(t *testing.T) {
	ctx := newContext()
	var events []string
	a := scene.New(ctx, scene.WithName("a"), scene.WithTransitionHooks(scene.TransitionHooks{
		From:               func(next *scene.Scene) { events = append(events, "from:"+next.Name()) },
		PauseForTransition: func() { events = append(events, "pause") },
	}))
	b := scene.New(ctx, scene.WithName("b"), scene.WithTransitionHooks(scene.TransitionHooks{
		To: func(prev *scene.Scene) { events = append(events, "to:"+prev.Name()) },
	}))
	d := director.New(ctx, a)

	delay := director.NewDelay(100 * time.Millisecond)
	require.NoError(t, d.Switch(b, delay))

	assert.Equal(t, []string{"pause", "from:b", "to:a"}, events)
	assert.True(t, d.Transitioning())
	assert.False(t, a.Destroyed(), "outgoing scene lives until the transition ends")

	d.Update(0.05)
	assert.True(t, d.Transitioning())
	assert.InDelta(t, 0.5, delay.Progress(), 1e-9)

	d.Update(0.06)
	assert.False(t, d.Transitioning())
	assert.True(t, a.Destroyed())
}

func TestNoTransitionSkipsTransitionHooks(t *testing.T) {
	ctx := newContext()
	var events []string
	a := scene.New(ctx, scene.WithTransitionHooks(scene.TransitionHooks{
		From:               func(*scene.Scene) { events = append(events, "from") },
		PauseForTransition: func() { events = append(events, "pause") },
	}))
	d := director.New(ctx, a)

	require.NoError(t, d.Switch(scene.New(ctx), nil))
	assert.Equal(t, []string{"pause"}, events)
}

func TestDestroyTearsDownStack(t *testing.T) {
	ctx := newContext()
	a := scene.New(ctx, scene.WithStackable(true))
	b := scene.New(ctx)
	d := director.New(ctx, a)
	require.NoError(t, d.Push(b, nil))

	d.Destroy()

	assert.True(t, d.Empty())
	assert.True(t, a.Destroyed())
	assert.True(t, b.Destroyed())
}

func TestRunStopsWhenStackEmpties(t *testing.T) {
	ctx := newContext()
	a := scene.New(ctx)
	d := director.New(ctx, a)

	frames := 0
	onUpdate(t, a, func() {
		frames++
		if frames == 3 {
			require.NoError(t, d.Pop(nil))
		}
	})

	runCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	d.Run(runCtx, time.Millisecond)

	assert.Equal(t, 3, frames)
	assert.True(t, a.Destroyed())
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx := newContext()
	a := scene.New(ctx)
	d := director.New(ctx, a)

	runCtx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Run(runCtx, time.Hour)

	assert.True(t, a.Destroyed())
}
