// Package prim_kruskal defines the spanning-tree result type, configuration
// options and sentinel errors for MST computation.
package prim_kruskal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrNilScratch is returned when Prim receives a nil heap.
var ErrNilScratch = errors.New("prim_kruskal: scratch heap is nil")

// ErrUnknownMethod is returned by Compute for a method other than
// MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// DefaultLabel heads Tree.Render output when no label is given.
const DefaultLabel = "MST(G)"

// Tree is a minimum spanning tree (or forest, for Kruskal on disconnected
// input).
//
//	Vertices  every vertex of the source graph, ascending.
//	Edges     selected edges, U < V, sorted by (U, V).
//	Total     sum of selected edge weights.
type Tree struct {
	Vertices []string
	Edges    []core.Edge
	Total    int64
}

// Render writes the tree as
//
//	MST(G) = (V,E)
//	V = {A, B, C}
//	E = {
//	  (A, B, 1),
//	  (B, C, 2)
//	}
//	Total Edge Weight: 3
//
// An empty edge set prints "E = {" and "}" on consecutive lines.
func (t *Tree) Render(w io.Writer, label string) error {
	if label == "" {
		label = DefaultLabel
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(label)
	bw.WriteString(" = (V,E)\n")
	core.WriteVertexSet(bw, t.Vertices)
	bw.WriteString("E = {\n")
	for i, e := range t.Edges {
		bw.WriteString("  ")
		core.WriteEdge(bw, e)
		if i < len(t.Edges)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("}\n")
	bw.WriteString("Total Edge Weight: ")
	bw.WriteString(strconv.FormatInt(t.Total, 10))
	bw.WriteByte('\n')

	return bw.Flush()
}

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use.
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: start vertex for Prim; "" means the smallest name.
//	                Ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim from the smallest vertex name.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
	}
}

// Compute selects and runs the MST algorithm based on the resolved options.
// h is used only by Prim and may be nil for Kruskal.
func Compute(g *core.Graph, h *scratch.MinHeap[int], opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	switch o.Method {
	case MethodPrim:
		return Prim(g, o.Root, h)
	case MethodKruskal:
		return Kruskal(g)
	default:
		return &Tree{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// newTree returns a tree over all of ix's vertices with no edges yet.
func newTree(ix *core.Index) *Tree {
	vs := make([]string, ix.Len())
	copy(vs, ix.Names())

	return &Tree{Vertices: vs, Edges: make([]core.Edge, 0, max(ix.Len()-1, 0))}
}

// addEdge appends the edge between ranks a and b with the smaller name first.
func (t *Tree) addEdge(ix *core.Index, a, b int, w int64) {
	if b < a {
		a, b = b, a
	}
	t.Edges = append(t.Edges, core.Edge{U: ix.Name(a), V: ix.Name(b), Weight: w})
	t.Total += w
}
