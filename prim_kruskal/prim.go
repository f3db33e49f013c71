// Package prim_kruskal provides Prim's Minimum Spanning Tree algorithm over a
// caller-owned min-heap with lazy deletion.
package prim_kruskal

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// Prim computes the minimum spanning tree of the component containing root.
// root == "" selects the lexicographically first vertex.
//
// Steps:
//  1. key[root]=0, every other key +∞, parent none.
//  2. Pop the minimum (key, rank) entry. Entries whose owner is already in
//     the tree are stale and skipped.
//  3. Mark the owner; if it has a parent, record (parent, owner, key).
//  4. For each neighbor outside the tree whose edge weight beats its key,
//     update key and parent and push a new entry.
//
// Ties on key pop the smaller rank first, which is the smaller name.
// The heap is cleared on entry and empty on every return path.
//
// Results:
//   - empty graph: empty tree, nil error.
//   - root not in g: empty tree, core.ErrVertexNotFound.
//   - disconnected graph: the spanning tree of root's component.
//
// Complexity: O((V + E) log V) time, O(V + E) heap entries worst case.
func Prim(g *core.Graph, root string, h *scratch.MinHeap[int]) (*Tree, error) {
	if g == nil {
		return &Tree{}, ErrGraphNil
	}
	if h == nil {
		return &Tree{}, ErrNilScratch
	}
	h.Clear()
	defer h.Clear()

	ix := g.Index()
	n := ix.Len()
	if n == 0 {
		return &Tree{}, nil
	}
	r0 := 0
	if root != "" {
		var ok bool
		if r0, ok = ix.Lookup(root); !ok {
			return &Tree{}, core.ErrVertexNotFound
		}
	}

	tree := newTree(ix)
	key := make([]int64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for i := range key {
		key[i] = math.MaxInt64
		parent[i] = -1
	}
	key[r0] = 0
	h.Push(r0, 0)

	for {
		u, k, ok := h.Pop()
		if !ok {
			break
		}
		if inTree[u] {
			continue
		}
		inTree[u] = true
		if parent[u] >= 0 {
			tree.addEdge(ix, parent[u], u, k)
		}
		for nh, w := range g.Adjacent(ix.Handle(u)) {
			v := ix.Rank(nh)
			if inTree[v] || w >= key[v] {
				continue
			}
			key[v] = w
			parent[v] = u
			h.Push(v, w)
		}
	}
	sortEdges(tree.Edges)

	return tree, nil
}

// sortEdges orders edges by (U, V).
func sortEdges(es []core.Edge) {
	slices.SortFunc(es, func(a, b core.Edge) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})
}
