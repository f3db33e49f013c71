// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree) and the handle-level
//       iterators that algorithms use instead of touching storage.
// Determinism:
//   - Neighbors() and Adjacent() yield neighbors in ascending name order.
//   - AdjacentBackward() yields them in descending name order.
// Concurrency:
//   - All reads hold the read lock; iterators hold it while yielding.

package core

import (
	"fmt"
	"iter"
)

// Neighbors returns the adjacency of name as (neighbor, weight) pairs,
// sorted by neighbor name.
//
// Errors:
//   - ErrVertexNotFound: name is absent (distinct from an empty result).
//
// Complexity: O(log V + deg).
func (g *Graph) Neighbors(name string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}
	adj := g.verts[h].adj
	out := make([]Neighbor, len(adj))
	for i, a := range adj {
		out[i] = Neighbor{Name: g.verts[a.to].name, Weight: a.weight}
	}

	return out, nil
}

// Degree returns the number of neighbors of name.
// A missing vertex yields ErrVertexNotFound, never a zero degree.
// Complexity: O(log V).
func (g *Graph) Degree(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return len(g.verts[h].adj), nil
}

// Adjacent yields (neighbor handle, weight) for h in ascending neighbor-name
// order. An out-of-range handle yields nothing.
//
// The read lock is held for the duration of the iteration, so the loop body
// must not mutate g.
func (g *Graph) Adjacent(h Handle) iter.Seq2[Handle, int64] {
	return func(yield func(Handle, int64) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()
		if h < 0 || int(h) >= len(g.verts) {
			return
		}
		for _, a := range g.verts[h].adj {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}

// AdjacentBackward is Adjacent in descending neighbor-name order.
func (g *Graph) AdjacentBackward(h Handle) iter.Seq2[Handle, int64] {
	return func(yield func(Handle, int64) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()
		if h < 0 || int(h) >= len(g.verts) {
			return
		}
		adj := g.verts[h].adj
		for i := len(adj) - 1; i >= 0; i-- {
			if !yield(adj[i].to, adj[i].weight) {
				return
			}
		}
	}
}
