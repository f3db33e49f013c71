package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

func TestTerrain_Shape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.Terrain(4, 6, 0.35))
	require.NoError(t, err)

	assert.Equal(t, 24, g.VertexCount())
	assert.Equal(t, 4*5+3*6, g.EdgeCount())
	assert.True(t, g.HasEdge("0_0", "0_1"))
	assert.True(t, g.HasEdge("2_3", "3_3"))
	assert.False(t, g.HasEdge("0_0", "1_1"))

	varied := false
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, core.MinWeight)
		assert.LessOrEqual(t, e.Weight, core.MaxWeight)
		if e.Weight != core.MinWeight {
			varied = true
		}
	}
	assert.True(t, varied, "a noise field should not be perfectly flat")
}

func TestTerrain_Deterministic(t *testing.T) {
	build := func(seed int64) map[edgeKey]int64 {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Terrain(5, 5, 0.4))
		require.NoError(t, err)
		return edgeWeights(g)
	}
	assert.Equal(t, build(3), build(3))
}

func TestTerrain_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}

	_, err := builder.BuildGraph(nil, builder.Terrain(3, 3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(seeded, builder.Terrain(0, 3, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = builder.BuildGraph(seeded, builder.Terrain(2, 2, scale))
		assert.ErrorIs(t, err, builder.ErrInvalidScale, "scale=%v", scale)
	}
}
