// Package bfs provides breadth-first search over a core.Graph, returning
// vertex names in discovery order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// walker encapsulates mutable BFS state. Vertices are addressed by rank in
// ix, so the queue and the depth table hold plain ints.
type walker struct {
	graph *core.Graph
	ix    *core.Index
	opts  Options
	queue *scratch.Queue[int]
	depth []int // -1 while undiscovered
	order []string
}

// BFS runs breadth-first search on g starting from start, using q as the
// work queue. Neighbors are enqueued in ascending name order and marked at
// enqueue time, so every vertex is emitted at most once.
//
// q is cleared on entry and is empty on every return path.
//
// A start vertex absent from g yields an empty, non-nil slice and no error.
// Returns ErrGraphNil, ErrNilScratch, ErrOptionViolation, or a wrapped
// OnVisit error; on a hook error the order discovered so far is returned.
//
// Complexity: O(V + E) time, O(V) extra memory.
func BFS(g *core.Graph, start string, q *scratch.Queue[int], opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if q == nil {
		return nil, ErrNilScratch
	}
	q.Clear()
	defer q.Clear()

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ix := g.Index()
	root, ok := ix.Lookup(start)
	if !ok {
		return []string{}, nil
	}

	w := &walker{
		graph: g,
		ix:    ix,
		opts:  o,
		queue: q,
		depth: make([]int, ix.Len()),
		order: make([]string, 0, ix.Len()),
	}
	for i := range w.depth {
		w.depth[i] = -1
	}

	w.enqueue(root, 0)
	err := w.loop()

	return w.order, err
}

// enqueue marks r discovered at depth d and adds it to the queue.
func (w *walker) enqueue(r, d int) {
	w.depth[r] = d
	w.queue.Enqueue(r)
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for {
		r, ok := w.queue.Dequeue()
		if !ok {
			return nil
		}
		if err := w.visit(r); err != nil {
			return err
		}
		w.enqueueNeighbors(r)
	}
}

// visit records the vertex in order and calls OnVisit.
func (w *walker) visit(r int) error {
	name := w.ix.Name(r)
	w.order = append(w.order, name)
	if err := w.opts.OnVisit(name, w.depth[r]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", name, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// undiscovered neighbor of r.
func (w *walker) enqueueNeighbors(r int) {
	next := w.depth[r] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	curr := w.ix.Name(r)
	for h := range w.graph.Adjacent(w.ix.Handle(r)) {
		nr := w.ix.Rank(h)
		if w.depth[nr] >= 0 {
			continue
		}
		if !w.opts.FilterNeighbor(curr, w.ix.Name(nr)) {
			continue
		}
		w.enqueue(nr, next)
	}
}
