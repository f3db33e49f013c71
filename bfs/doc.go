// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Return the names in discovery order.
//   - Supports functional options:
//   - OnVisit        (when emitting; may abort with an error)
//   - MaxDepth       (d>0 limit, d==0 no limit)
//   - FilterNeighbor (skip individual edges)
//
// Determinism
//
//	core.Graph.Adjacent yields neighbors in ascending name order and BFS
//	enqueues them in that order, marking each at enqueue time. The visit
//	sequence is therefore fully reproducible.
//
// Scratch
//
//	The caller owns the work queue and passes it in. BFS clears it on entry
//	and leaves it empty on every return path, so one queue can serve any
//	number of calls.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	q := scratch.NewQueue[int](0)
//	order, err := bfs.BFS(g, "A", q)
//	order, err = bfs.BFS(g, "A", q,
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(name string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrNilScratch      if the queue pointer is nil.
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//
// A missing start vertex is not an error: the result is an empty slice.
package bfs
