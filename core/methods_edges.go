// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each logical edge once, smaller endpoint first,
//     sorted by (U, V).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"slices"
	"sort"
)

// AddEdge connects u and v with the given weight, or updates the weight of
// an existing u–v edge in both directions.
//
// Steps:
//  1. Validate both names, reject u == v, check weight range.
//  2. Resolve both endpoints (ErrVertexNotFound if either is absent).
//  3. Locate the sorted slot in both adjacency lists.
//  4. Existing edge: overwrite both weights, edge count unchanged.
//  5. New edge: reserve room in both lists, then insert both arcs and
//     increment the logical edge count.
//
// No state changes on error.
// Complexity: O(log V + deg(u) + deg(v)).
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if !ValidName(u) {
		return fmt.Errorf("%w: %q", ErrInvalidName, u)
	}
	if !ValidName(v) {
		return fmt.Errorf("%w: %q", ErrInvalidName, v)
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrBadWeight, weight, MinWeight, MaxWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	hu, ok := g.lookup(u)
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	hv, ok := g.lookup(v)
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	iu, foundU := g.arcSearch(hu, v)
	iv, foundV := g.arcSearch(hv, u)
	if foundU && foundV {
		g.verts[hu].adj[iu].weight = weight
		g.verts[hv].adj[iv].weight = weight

		return nil
	}

	// Grow both lists first so neither is written unless both can be.
	au := slices.Grow(g.verts[hu].adj, 1)
	av := slices.Grow(g.verts[hv].adj, 1)
	g.verts[hu].adj = slices.Insert(au, iu, arc{to: hv, weight: weight})
	g.verts[hv].adj = slices.Insert(av, iv, arc{to: hu, weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent. Symmetric by construction.
// Complexity: O(log V + log deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	hu, ok := g.lookup(u)
	if !ok {
		return false
	}
	_, found := g.arcSearch(hu, v)

	return found
}

// EdgeWeight returns the weight of the u–v edge.
//
// Errors:
//   - ErrVertexNotFound: u or v is absent.
//   - ErrEdgeNotFound: both exist but are not adjacent.
func (g *Graph) EdgeWeight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	hu, ok := g.lookup(u)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	if _, ok = g.lookup(v); !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	i, found := g.arcSearch(hu, v)
	if !found {
		return 0, fmt.Errorf("%w: %q-%q", ErrEdgeNotFound, u, v)
	}

	return g.verts[hu].adj[i].weight, nil
}

// Edges returns every logical edge exactly once with U < V, sorted by (U, V).
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for _, h := range g.order {
		u := g.verts[h].name
		for _, a := range g.verts[h].adj {
			v := g.verts[a.to].name
			if u < v {
				out = append(out, Edge{U: u, V: v, Weight: a.weight})
			}
		}
	}

	return out
}

// EdgeCount returns the number of logical edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// arcSearch finds name in h's adjacency list. When absent, i is the
// insertion point. Caller holds g.mu.
func (g *Graph) arcSearch(h Handle, name string) (i int, found bool) {
	adj := g.verts[h].adj
	i = sort.Search(len(adj), func(k int) bool {
		return g.verts[adj[k].to].name >= name
	})

	return i, i < len(adj) && g.verts[adj[i].to].name == name
}
