// File: index.go
// Role: Name resolution snapshot shared by every algorithm.
//
// An Index captures the sorted vertex list at one instant and numbers the
// vertices by rank: rank i is the i-th name in ascending order. Algorithms
// size their per-call arrays (visited, key, dist, parent) by Len() and work
// in ranks, so comparing ranks is the same as comparing names.
//
// An Index is a read-only borrow. Build it at the start of an algorithm call
// and drop it on return; it is not updated when the graph changes.

package core

import "sort"

// Index is a sorted, rank-addressed snapshot of a graph's vertices.
type Index struct {
	names   []string // rank -> name
	handles []Handle // rank -> handle
	ranks   []int    // handle -> rank
}

// Index builds a fresh snapshot. The vertex list is already sorted, so no
// sort is performed.
// Complexity: O(V).
func (g *Graph) Index() *Index {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := len(g.order)
	ix := &Index{
		names:   make([]string, n),
		handles: make([]Handle, n),
		ranks:   make([]int, len(g.verts)),
	}
	for r, h := range g.order {
		ix.names[r] = g.verts[h].name
		ix.handles[r] = h
		ix.ranks[h] = r
	}

	return ix
}

// Len returns the number of vertices in the snapshot.
func (ix *Index) Len() int { return len(ix.names) }

// Lookup returns the rank of name by binary search.
// Complexity: O(log V).
func (ix *Index) Lookup(name string) (rank int, ok bool) {
	rank = sort.SearchStrings(ix.names, name)
	if rank < len(ix.names) && ix.names[rank] == name {
		return rank, true
	}

	return -1, false
}

// Name returns the vertex name at rank.
func (ix *Index) Name(rank int) string { return ix.names[rank] }

// Handle returns the graph handle at rank.
func (ix *Index) Handle(rank int) Handle { return ix.handles[rank] }

// Rank returns the rank of handle h.
func (ix *Index) Rank(h Handle) int { return ix.ranks[h] }

// Names returns the sorted vertex names. The slice is shared with the
// snapshot and must not be modified.
func (ix *Index) Names() []string { return ix.names }
