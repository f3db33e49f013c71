// Package prim_kruskal provides Kruskal's algorithm for the minimum spanning
// forest using union-find with path halving and union by rank.
package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/wgraph/core"
)

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Take g.Edges() (sorted by (U, V)) and stably sort by weight, so equal
//     weights keep name order.
//  2. Scan edges, adding each one whose endpoints lie in different sets.
//  3. Stop once |V|-1 edges are chosen.
//
// On a connected graph the total equals Prim's. On disconnected input every
// component is spanned. An empty graph yields an empty tree.
//
// Complexity: O(E log E + E·α(V)) time, O(V) extra memory.
func Kruskal(g *core.Graph) (*Tree, error) {
	if g == nil {
		return &Tree{}, ErrGraphNil
	}
	ix := g.Index()
	n := ix.Len()
	if n == 0 {
		return &Tree{}, nil
	}

	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		default:
			return 0
		}
	})

	uf := newUnionFind(n)
	tree := newTree(ix)
	for _, e := range edges {
		u, _ := ix.Lookup(e.U)
		v, _ := ix.Lookup(e.V)
		if !uf.union(u, v) {
			continue
		}
		tree.addEdge(ix, u, v, e.Weight)
		if len(tree.Edges) == n-1 {
			break
		}
	}
	sortEdges(tree.Edges)

	return tree, nil
}

// unionFind is a disjoint-set forest over ranks 0..n-1.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges the sets of a and b, reporting false when they were already one.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}

	return true
}
