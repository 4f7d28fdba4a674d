package ebitenhost_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scenekit/director"
	"github.com/plus3/scenekit/host/ebitenhost"
	"github.com/plus3/scenekit/render/ebitenrender"
	"github.com/plus3/scenekit/scene"
)

type countingOverlay struct {
	begins, ends int
	layouts      [][2]int
}

func (o *countingOverlay) BeginFrame()        { o.begins++ }
func (o *countingOverlay) EndFrame()          { o.ends++ }
func (o *countingOverlay) Draw(*ebiten.Image) {}
func (o *countingOverlay) Layout(w, h int)    { o.layouts = append(o.layouts, [2]int{w, h}) }

func TestGameForwardsToDirector(t *testing.T) {
	backend := ebitenrender.NewBackend()
	ctx := scene.NewTestContext(backend)
	s := scene.New(ctx)
	d := director.New(ctx, s)
	overlay := &countingOverlay{}
	g := ebitenhost.NewGame(d, backend, overlay)

	w, h := g.Layout(320, 200)
	g.Layout(320, 200)
	assert.Len(t, overlay.layouts, 2)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)
	sw, sh := s.Size()
	assert.Equal(t, 320, sw)
	assert.Equal(t, 200, sh)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, overlay.begins)
	assert.Equal(t, 1, overlay.ends)
	assert.Equal(t, int64(1), s.Stats().Frames)

	require.NoError(t, d.Pop(nil))
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}
