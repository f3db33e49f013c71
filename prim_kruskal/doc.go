// Package prim_kruskal computes minimum spanning trees on an undirected,
// weighted *core.Graph with Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - An MST of a connected weighted graph is a subset of edges that spans
//     every vertex with the least total weight.
//   - Prim is the primary method. Kruskal is a cross-check and the method of
//     choice when a spanning forest over every component is wanted.
//
// Algorithms Provided
//
//   - Prim(g, root, h) (*Tree, error)
//
//   - Strategy: grow one tree from root (default: the smallest name) with a
//     caller-owned scratch.MinHeap keyed by best connecting weight. Improved
//     keys are pushed as new entries; superseded entries are skipped when
//     popped (lazy deletion), so no index map or decrease-key is needed.
//
//   - Determinism: heap ties pop the smaller rank, i.e. the smaller name.
//
//   - Complexity: O((V+E) log V).
//
//   - Kruskal(g) (*Tree, error)
//
//   - Strategy: stably sort g.Edges() by weight and merge components with
//     union-find, stopping at |V|-1 edges.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Compute(g, h, opts...) dispatches by WithMethod(MethodPrim|MethodKruskal)
//     and WithRoot.
//
// Output
//
//	Tree.Vertices lists every graph vertex; Tree.Edges lists selected edges
//	with the smaller endpoint first, sorted by (U, V); Tree.Total is their
//	weight sum. Tree.Render prints the "MST(G) = (V,E)" block.
//
// Errors
//
//   - ErrGraphNil, ErrNilScratch (Prim only), ErrUnknownMethod (Compute).
//   - core.ErrVertexNotFound when an explicit Prim root is absent.
//
// An empty graph is not an error: both algorithms return an empty tree.
package prim_kruskal
