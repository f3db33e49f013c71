// Package core provides the in-memory graph store used by every algorithm
// in wgraph: an undirected, weighted graph keyed by vertex name.
//
// The Graph G = (V,E) enforces, after every successful mutation:
//
//   - unique vertex names, 1..256 bytes of [A-Za-z0-9_];
//   - no self-loops and no parallel edges;
//   - integer edge weights in [1,100];
//   - vertex list and every adjacency list strictly sorted by name;
//   - symmetric storage: u lists v iff v lists u, with the same weight.
//
// Sorted storage is what makes every algorithm deterministic: traversal
// order, tie-breaks and printed sets all follow byte-wise name order.
//
// Layout:
//
//	verts  []vertex  // arena addressed by Handle (append-only)
//	order  []Handle  // handles sorted by name
//	vertex.adj []arc // (neighbor Handle, weight), sorted by neighbor name
//
// Core Methods:
//
//	// Mutation
//	AddVertex(name string) error                 // O(V)
//	AddEdge(u, v string, weight int64) error     // O(log V + deg)
//	Clear()                                      // O(1)
//
//	// Point queries
//	HasVertex(name string) bool                  // O(log V)
//	HasEdge(u, v string) bool                    // O(log V + log deg)
//	Degree(name string) (int, error)             // O(log V)
//	EdgeWeight(u, v string) (int64, error)       // O(log V + log deg)
//	Neighbors(name string) ([]Neighbor, error)   // O(log V + deg)
//
//	// Enumeration
//	Vertices() []string                          // O(V), sorted
//	Edges() []Edge                               // O(V+E), U < V, sorted
//	VertexCount(), EdgeCount() int               // O(1)
//	Render(w io.Writer, label string) error      // (V,E) text block
//
//	// Algorithm access (read-only)
//	Index() *Index                               // rank snapshot, O(V)
//	Adjacent(h Handle) iter.Seq2[Handle, int64]  // ascending neighbors
//	AdjacentBackward(h Handle) ...               // descending neighbors
//	Name(h Handle) string
//
// Errors:
//
//	ErrInvalidName     – bad vertex name
//	ErrDuplicateVertex – AddVertex on an existing name
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrBadWeight       – weight outside [1,100]
//	ErrLoopNotAllowed  – u == v
//
// All errors are wrapped with the offending value; test with errors.Is.
// Failed operations leave the graph unchanged.
package core
