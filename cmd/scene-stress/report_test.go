package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestReportIncludesPhases(t *testing.T) {
	s := scene.New(scene.NewTestContext(render.Discard{}))
	rng := rand.New(rand.NewSource(7))
	var spawned int64
	for range 20 {
		e := scene.NewEntity("e")
		addRandomUnits(e, rng, 3, &spawned, s.WorldUnits())
		require.NoError(t, s.AddEntity(e))
	}
	s.Resume()
	for range 400 {
		s.Update(1.0 / 60)
		s.Render()
	}

	r := &Report{Entities: 20, Layers: 1, TotalFrames: 400, Phases: s.Stats(), FinalEntities: s.EntityCount()}
	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Scene Stress Test Report")
	assert.Contains(t, out, "| update | 400 |")
	assert.NotContains(t, out, "| destroy |")
	assert.Equal(t, 20, s.EntityCount(), "churned entities are replaced one for one")
}
