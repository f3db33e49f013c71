// Package core_test contains test helpers for wgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep vertex names and weights out of test bodies (no magic values).
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common vertex names used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexLower = "a"
	VertexUnder = "_x_1"
)

// Common weights used across core tests.
const (
	Weight0   int64 = 0
	Weight1   int64 = 1
	Weight2   int64 = 2
	Weight3   int64 = 3
	Weight7   int64 = 7
	Weight10  int64 = 10
	Weight100 int64 = 100
	Weight101 int64 = 101
)

// Common concurrency sizes.
const (
	NReaders = 50
	NRounds  = 100
)

// edgeSpec is a compact edge literal for fixtures.
type edgeSpec struct {
	u, v string
	w    int64
}

// buildGraph adds every vertex in names, then every edge, failing the test
// on the first error.
func buildGraph(t testing.TB, names []string, edges []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range names {
		require.NoError(t, g.AddVertex(n), "AddVertex(%s)", n)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w), "AddEdge(%s,%s,%d)", e.u, e.v, e.w)
	}

	return g
}

// triangle returns A–B(1), B–C(2), A–C(10) plus isolated D.
func triangle(t testing.TB) *core.Graph {
	t.Helper()

	return buildGraph(t,
		[]string{VertexC, VertexA, VertexD, VertexB},
		[]edgeSpec{{VertexA, VertexB, Weight1}, {VertexB, VertexC, Weight2}, {VertexA, VertexC, Weight10}},
	)
}

// neighborNames projects names out of a neighbor slice.
func neighborNames(ns []core.Neighbor) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Name
	}

	return out
}
