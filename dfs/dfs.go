// Package dfs implements iterative depth-first search on core.Graph using a
// caller-owned stack.
//
// Visiting rule: pop a vertex; if already visited, skip it; otherwise mark it,
// emit it, and push its unvisited neighbors in descending name order so the
// lexicographically smallest neighbor is popped first. A vertex may sit on the
// stack more than once; the visited check at pop time emits it exactly once.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the stack in the worst case, O(V) for marks.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// walker encapsulates state during one DFS call. Vertices are addressed by
// rank in ix.
type walker struct {
	graph   *core.Graph
	ix      *core.Index
	opts    Options
	stack   *scratch.Stack[int]
	visited []bool
}

func newWalker(g *core.Graph, s *scratch.Stack[int], opts Options) *walker {
	ix := g.Index()

	return &walker{
		graph:   g,
		ix:      ix,
		opts:    opts,
		stack:   s,
		visited: make([]bool, ix.Len()),
	}
}

// DFS performs depth-first search on g from start using s as the work stack.
// s is cleared on entry and is empty on every return path.
//
// A start vertex absent from g yields an empty, non-nil slice and no error.
// Returns ErrGraphNil, ErrNilScratch, or a wrapped OnVisit error; on a hook
// error the order discovered so far is returned.
func DFS(g *core.Graph, start string, s *scratch.Stack[int], opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if s == nil {
		return nil, ErrNilScratch
	}
	s.Clear()
	defer s.Clear()

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := newWalker(g, s, o)
	root, ok := w.ix.Lookup(start)
	if !ok {
		return []string{}, nil
	}
	order := make([]string, 0, w.ix.Len())
	err := w.run(root, -1, func(r int) error {
		order = append(order, w.ix.Name(r))
		return nil
	})

	return order, err
}

// run traverses from root. emit is called for every vertex as it is marked,
// before OnVisit. When stop is a valid rank, traversal ends as soon as stop
// is marked.
func (w *walker) run(root, stop int, emit func(r int) error) error {
	w.stack.Push(root)
	for {
		r, ok := w.stack.Pop()
		if !ok {
			return nil
		}
		if w.visited[r] {
			continue
		}
		w.visited[r] = true
		if err := emit(r); err != nil {
			return err
		}
		name := w.ix.Name(r)
		if err := w.opts.OnVisit(name); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", name, err)
		}
		if r == stop {
			return nil
		}
		for h := range w.graph.AdjacentBackward(w.ix.Handle(r)) {
			nr := w.ix.Rank(h)
			if w.visited[nr] || !w.opts.FilterNeighbor(name, w.ix.Name(nr)) {
				continue
			}
			w.stack.Push(nr)
		}
	}
}
