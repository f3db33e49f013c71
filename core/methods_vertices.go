// File: methods_vertices.go
// Role: Vertex lifecycle & queries, plus name validation.
//
// Determinism:
//   - Vertices() returns names sorted lexicographically ascending.
//
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.
package core

import (
	"fmt"
	"sort"
)

// ValidName reports whether name is acceptable as a vertex name:
// 1..MaxNameLen bytes, each one of [A-Za-z0-9_].
// Complexity: O(len(name)).
func ValidName(name string) bool {
	if len(name) == 0 || len(name) > MaxNameLen {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}

	return true
}

// AddVertex inserts a new vertex at its sorted position.
//
// Errors:
//   - ErrInvalidName: name fails ValidName.
//   - ErrDuplicateVertex: name already present.
//
// No state changes on error.
// Complexity: O(log V) search + O(V) slice insert.
func (g *Graph) AddVertex(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	pos, found := g.search(name)
	if found {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	h := Handle(len(g.verts))
	g.verts = append(g.verts, vertex{name: name})
	g.order = append(g.order, 0)
	copy(g.order[pos+1:], g.order[pos:])
	g.order[pos] = h

	return nil
}

// HasVertex reports whether a vertex with the given name exists.
// Complexity: O(log V).
func (g *Graph) HasVertex(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.search(name)

	return ok
}

// Vertices returns all vertex names in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	for i, h := range g.order {
		out[i] = g.verts[h].name
	}

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.verts)
}

// Name returns the name stored under handle h, or "" if h is out of range.
func (g *Graph) Name(h Handle) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if h < 0 || int(h) >= len(g.verts) {
		return ""
	}

	return g.verts[h].name
}

// Clear resets the graph to empty.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.verts = nil
	g.order = nil
	g.edgeCount = 0
	g.mu.Unlock()
}

// search returns the position of name in g.order and whether it is present.
// When absent, pos is the insertion point. Caller holds g.mu.
func (g *Graph) search(name string) (pos int, found bool) {
	pos = sort.Search(len(g.order), func(i int) bool {
		return g.verts[g.order[i]].name >= name
	})

	return pos, pos < len(g.order) && g.verts[g.order[pos]].name == name
}

// lookup returns the handle for name. Caller holds g.mu.
func (g *Graph) lookup(name string) (Handle, bool) {
	pos, ok := g.search(name)
	if !ok {
		return -1, false
	}

	return g.order[pos], true
}
