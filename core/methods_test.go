// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in validation rules for vertex/edge insertion.
//   - Check the symmetric-storage and sorted-order invariants.
//   - Distinguish lookup misses from zero-valued results.
package core_test

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrInvalidName)
	assert.ErrorIs(t, g.AddVertex("bad name"), core.ErrInvalidName)
	assert.ErrorIs(t, g.AddVertex(strings.Repeat("x", core.MaxNameLen+1)), core.ErrInvalidName)
	assert.Zero(t, g.VertexCount(), "failed inserts must not mutate")

	require.NoError(t, g.AddVertex(VertexA))
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexLower), "names are case-sensitive")

	assert.ErrorIs(t, g.AddVertex(VertexA), core.ErrDuplicateVertex)
	assert.Equal(t, 1, g.VertexCount())
}

func TestVertices_SortedRegardlessOfInsertOrder(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []string{"delta", "Bravo", "alpha", "_z", "9", "Charlie"} {
		require.NoError(t, g.AddVertex(n))
	}
	// Byte order: digits < upper < underscore < lower.
	assert.Equal(t, []string{"9", "Bravo", "Charlie", "_z", "alpha", "delta"}, g.Vertices())
}

func TestAddEdge_Validation(t *testing.T) {
	g := buildGraph(t, []string{VertexA, VertexB}, nil)

	cases := []struct {
		name   string
		u, v   string
		w      int64
		target error
	}{
		{"invalid u", "a b", VertexB, Weight1, core.ErrInvalidName},
		{"invalid v", VertexA, VertexEmpty, Weight1, core.ErrInvalidName},
		{"self loop", VertexA, VertexA, Weight1, core.ErrLoopNotAllowed},
		{"zero weight", VertexA, VertexB, Weight0, core.ErrBadWeight},
		{"weight above max", VertexA, VertexB, Weight101, core.ErrBadWeight},
		{"missing u", VertexC, VertexB, Weight1, core.ErrVertexNotFound},
		{"missing v", VertexA, VertexD, Weight1, core.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.u, tc.v, tc.w), tc.target)
			assert.Zero(t, g.EdgeCount())
			assert.False(t, g.HasEdge(VertexA, VertexB))
		})
	}

	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight100), "upper bound is inclusive")
	require.NoError(t, g.AddEdge(VertexB, VertexA, core.MinWeight), "lower bound is inclusive")
}

func TestAddEdge_SymmetryAndUpdate(t *testing.T) {
	g := buildGraph(t, []string{VertexA, VertexB, VertexC}, nil)

	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight3))
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.Equal(t, 1, g.EdgeCount())

	w1, err := g.EdgeWeight(VertexA, VertexB)
	require.NoError(t, err)
	w2, err := g.EdgeWeight(VertexB, VertexA)
	require.NoError(t, err)
	assert.Equal(t, Weight3, w1)
	assert.Equal(t, w1, w2)

	// Re-adding from the other side updates both directions.
	require.NoError(t, g.AddEdge(VertexB, VertexA, Weight7))
	assert.Equal(t, 1, g.EdgeCount(), "update must not change logical edge count")
	w1, _ = g.EdgeWeight(VertexA, VertexB)
	w2, _ = g.EdgeWeight(VertexB, VertexA)
	assert.Equal(t, Weight7, w1)
	assert.Equal(t, Weight7, w2)

	d, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestDegree_MissingVsZero(t *testing.T) {
	g := triangle(t)

	d, err := g.Degree(VertexD)
	require.NoError(t, err)
	assert.Zero(t, d, "isolated vertex has degree 0")

	_, err = g.Degree("Nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	ns, err := g.Neighbors(VertexD)
	require.NoError(t, err)
	assert.Empty(t, ns)

	_, err = g.Neighbors("Nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdgeWeight_Misses(t *testing.T) {
	g := triangle(t)

	_, err := g.EdgeWeight(VertexA, VertexD)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.EdgeWeight(VertexA, "Nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.EdgeWeight("Nope", VertexA)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasEdge("Nope", VertexA))
}

func TestNeighbors_Sorted(t *testing.T) {
	g := buildGraph(t,
		[]string{VertexA, VertexB, VertexC, VertexD},
		[]edgeSpec{{VertexA, VertexD, Weight1}, {VertexA, VertexB, Weight2}, {VertexC, VertexA, Weight3}},
	)
	ns, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{VertexB, Weight2}, {VertexC, Weight3}, {VertexD, Weight1}}, ns)
}

func TestEdges_EachOnceSmallerFirst(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, []core.Edge{
		{U: VertexA, V: VertexB, Weight: Weight1},
		{U: VertexA, V: VertexC, Weight: Weight10},
		{U: VertexB, V: VertexC, Weight: Weight2},
	}, g.Edges())
	assert.Len(t, g.Edges(), g.EdgeCount())
}

func TestAdjacent_Iterators(t *testing.T) {
	g := triangle(t)
	ix := g.Index()
	r, ok := ix.Lookup(VertexA)
	require.True(t, ok)
	h := ix.Handle(r)

	var fwd, back []string
	for nb, w := range g.Adjacent(h) {
		assert.Positive(t, w)
		fwd = append(fwd, g.Name(nb))
	}
	for nb := range g.AdjacentBackward(h) {
		back = append(back, g.Name(nb))
	}
	assert.Equal(t, []string{VertexB, VertexC}, fwd)
	assert.Equal(t, []string{VertexC, VertexB}, back)

	// Early break must not leak the read lock: a later write must succeed.
	for range g.Adjacent(h) {
		break
	}
	require.NoError(t, g.AddVertex("E"))

	// Out-of-range handles yield nothing.
	for range g.Adjacent(core.Handle(999)) {
		t.Fatal("unexpected neighbor")
	}
	assert.Empty(t, g.Name(core.Handle(-1)))
}

func TestClear(t *testing.T) {
	g := triangle(t)
	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	require.NoError(t, g.AddVertex(VertexA), "graph usable after Clear")
}

// TestRandomInsertions_Invariants checks symmetry, degree == len(neighbors)
// and sorted order over a seeded random workload with many updates.
func TestRandomInsertions_Invariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := core.NewGraph()
	const n = 60
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex("v"+strconv.Itoa(r.Intn(1000))+"_"+strconv.Itoa(i)))
	}
	names := g.Vertices()

	pairs := make(map[[2]string]bool)
	for i := 0; i < 400; i++ {
		u, v := names[r.Intn(n)], names[r.Intn(n)]
		w := int64(r.Intn(100) + 1)
		err := g.AddEdge(u, v, w)
		if u == v {
			require.ErrorIs(t, err, core.ErrLoopNotAllowed)
			continue
		}
		require.NoError(t, err)
		if u > v {
			u, v = v, u
		}
		pairs[[2]string{u, v}] = true
	}
	assert.Equal(t, len(pairs), g.EdgeCount())
	assert.True(t, sort.StringsAreSorted(g.Vertices()))

	for _, u := range names {
		ns, err := g.Neighbors(u)
		require.NoError(t, err)
		d, err := g.Degree(u)
		require.NoError(t, err)
		assert.Equal(t, len(ns), d)
		assert.True(t, sort.StringsAreSorted(neighborNames(ns)), "neighbors of %s sorted", u)
		for _, nb := range ns {
			assert.True(t, g.HasEdge(nb.Name, u))
			w, err := g.EdgeWeight(nb.Name, u)
			require.NoError(t, err)
			assert.Equal(t, nb.Weight, w)
		}
	}
}
