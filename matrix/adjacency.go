package matrix

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// AdjacencyMatrix is the symmetric weight matrix of a graph snapshot.
// Row and column i belong to the i-th vertex in name order; 0 means no edge.
type AdjacencyMatrix struct {
	Mat           *Dense
	VertexIndex   map[string]int // name → row/col
	vertexByIndex []string
}

// NewAdjacencyMatrix builds the adjacency matrix of g.
// Returns ErrGraphNil for a nil graph and ErrBadShape (wrapped) when g has
// no vertices.
// Complexity: O(V² + E).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix := g.Index()
	n := ix.Len()
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}

	rev := make([]string, n)
	copy(rev, ix.Names())
	idx := make(map[string]int, n)
	for i, name := range rev {
		idx[name] = i
	}
	for i := 0; i < n; i++ {
		for h, w := range g.Adjacent(ix.Handle(i)) {
			mat.data[i*n+ix.Rank(h)] = float64(w)
		}
	}

	return &AdjacencyMatrix{Mat: mat, VertexIndex: idx, vertexByIndex: rev}, nil
}

// VertexCount returns the matrix order.
func (am *AdjacencyMatrix) VertexCount() int { return len(am.vertexByIndex) }

// Vertices returns the names in row order.
func (am *AdjacencyMatrix) Vertices() []string {
	out := make([]string, len(am.vertexByIndex))
	copy(out, am.vertexByIndex)

	return out
}

// Neighbors returns the vertices adjacent to u, ascending by name.
func (am *AdjacencyMatrix) Neighbors(u string) ([]string, error) {
	i, ok := am.VertexIndex[u]
	if !ok {
		return nil, fmt.Errorf("Neighbors: %q: %w", u, ErrUnknownVertex)
	}
	var out []string
	n := am.Mat.c
	for j := 0; j < n; j++ {
		if am.Mat.data[i*n+j] != 0 {
			out = append(out, am.vertexByIndex[j])
		}
	}

	return out, nil
}

// ToGraph reconstructs a core.Graph from the matrix. Only the upper
// triangle is read, so an asymmetric matrix keeps its (i<j) weights.
func (am *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, name := range am.vertexByIndex {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("ToGraph: %w", err)
		}
	}
	n := am.Mat.c
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := am.Mat.data[i*n+j]
			if w == 0 {
				continue
			}
			if err := g.AddEdge(am.vertexByIndex[i], am.vertexByIndex[j], int64(w)); err != nil {
				return nil, fmt.Errorf("ToGraph: (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
