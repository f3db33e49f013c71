// Package dijkstra computes shortest paths on a core.Graph whose edge
// weights are positive integers.
//
// What
//
//   - ShortestPath: minimum-cost path between two named vertices.
//   - Distances:    all shortest distances and predecessors from one source.
//   - Path.String:  "A -> B -> C; Total edge cost = 3".
//
// Options (Distances only)
//
//   - WithMaxDistance(d):      vertices farther than d stay Unreachable.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are never relaxed.
//
// Scratch
//
//	The caller owns the min-heap. Every call clears it on entry and leaves
//	it empty on return. Heap entries are vertex ranks, and equal priorities
//	pop in rank order, which is name order.
//
// Determinism
//
//	Relaxation requires a strictly shorter distance, so the predecessor of
//	a vertex is the first settled neighbor that achieved its final
//	distance. Equal inputs always yield the same path.
//
// Complexity
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V) arrays plus O(E) heap entries in the worst case.
//
// Errors
//
//   - ErrGraphNil, ErrNilScratch for nil arguments.
//   - ErrNoPath when an endpoint is absent or unreachable (ShortestPath).
//   - core.ErrVertexNotFound, wrapped, for an absent source (Distances).
package dijkstra
