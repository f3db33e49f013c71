// Package builder_test contains functional tests for the topology
// constructors: counts, edge sets, weights and composition.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// edgeKey identifies an edge by its endpoints in (U < V) order.
type edgeKey struct{ U, V string }

func key(u, v string) edgeKey {
	if v < u {
		u, v = v, u
	}

	return edgeKey{u, v}
}

// edgeWeights returns a map from edgeKey to weight for all edges in g.
func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.U, V: e.V}] = e.Weight
	}

	return m
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	const defaultWeight = builder.DefaultEdgeWeight

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, edges map[edgeKey]int64)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				for i := 0; i < 5; i++ {
					k := key(fmt.Sprint(i), fmt.Sprint((i+1)%5))
					assert.Equal(t, defaultWeight, edges[k], "cycle edge %v", k)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				for i := 0; i < 3; i++ {
					assert.Contains(t, edges, key(fmt.Sprint(i), fmt.Sprint(i+1)))
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				for i := 1; i < 4; i++ {
					assert.Contains(t, edges, key(builder.CenterVertexID, fmt.Sprint(i)))
				}
			},
		},
		{
			name:  "Wheel(4)",
			ctor:  builder.Wheel(4),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				assert.Contains(t, edges, key("0", "1"))
				assert.Contains(t, edges, key("3", "0"))
				assert.Contains(t, edges, key(builder.CenterVertexID, "2"))
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				for i := 0; i < 4; i++ {
					for j := i + 1; j < 4; j++ {
						assert.Contains(t, edges, key(fmt.Sprint(i), fmt.Sprint(j)))
					}
				}
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, edges map[edgeKey]int64) {
				assert.Contains(t, edges, key("0_0", "0_1"))
				assert.Contains(t, edges, key("0_2", "1_2"))
				assert.NotContains(t, edges, key("0_0", "1_1"))
			},
		},
		{
			name:  "RandomSparse(5,1)",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 10,
		},
		{
			name:  "RandomSparse(5,0)",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, edgeWeights(g))
			}
		})
	}
}

// TestBuilders_TooSmall checks each constructor's minimum size.
func TestBuilders_TooSmall(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Cycle":    builder.Cycle(2),
		"Path":     builder.Path(1),
		"Star":     builder.Star(1),
		"Wheel":    builder.Wheel(2),
		"Complete": builder.Complete(0),
		"Grid":     builder.Grid(0, 3),
		"Sparse":   builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

// TestBuildGraph_Errors covers structural failures.
func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	// An ID scheme producing whitespace names is rejected by core.
	bad := builder.WithIDScheme(func(i int) string { return fmt.Sprintf("v %d", i) })
	_, err = builder.BuildGraph([]builder.BuilderOption{bad}, builder.Path(2))
	assert.ErrorIs(t, err, core.ErrInvalidName)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

// TestBuildGraph_Composition reuses shared vertices and re-weights shared edges.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(7)},
		builder.Cycle(5), builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)

	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Star(3)))
	assert.True(t, g.HasEdge(builder.CenterVertexID, "C"))
	assert.Equal(t, 6, g.VertexCount())
}

// TestBuildGraph_Deterministic checks seeded builds are reproducible and
// weights stay inside the core range.
func TestBuildGraph_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)}
	}
	g1, err := builder.BuildGraph(opts(), builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(opts(), builder.RandomSparse(20, 0.3))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, core.MinWeight)
		assert.LessOrEqual(t, e.Weight, core.MaxWeight)
	}
}
