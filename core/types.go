// Package core defines the central Graph type: an undirected, weighted graph
// keyed by vertex name, with deterministic (lexicographic) enumeration.
//
// This file declares Graph, Handle, Neighbor, Edge, the validation limits,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidName      - vertex name is empty, too long, or has a bad character.
//	ErrDuplicateVertex  - AddVertex on a name that already exists.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrBadWeight        - edge weight outside [MinWeight, MaxWeight].
//	ErrLoopNotAllowed   - both endpoints of an edge are the same vertex.
package core

import (
	"errors"
	"sync"
)

// Validation limits for names and weights.
const (
	// MaxNameLen is the longest accepted vertex name, in bytes.
	MaxNameLen = 256

	// MinWeight and MaxWeight bound every edge weight (inclusive).
	MinWeight int64 = 1
	MaxWeight int64 = 100
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidName indicates a name that is empty, longer than MaxNameLen,
	// or contains a character outside [A-Za-z0-9_].
	ErrInvalidName = errors.New("core: invalid vertex name")

	// ErrDuplicateVertex indicates AddVertex was called with an existing name.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: edge weight out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Handle is the stable arena index of a vertex. Handles are dense:
// vertices are never removed, so a graph with V vertices uses 0..V-1.
type Handle int

// Neighbor is one entry of a vertex's adjacency, as seen by callers.
type Neighbor struct {
	Name   string
	Weight int64
}

// Edge is a logical undirected edge. U is always the lexicographically
// smaller endpoint.
type Edge struct {
	U      string
	V      string
	Weight int64
}

// arc is one physical adjacency entry. Every logical edge is stored as two
// reciprocal arcs with identical weight.
type arc struct {
	to     Handle
	weight int64
}

// vertex is an arena record. adj is kept sorted by the neighbor's name.
type vertex struct {
	name string
	adj  []arc
}

// Graph is the in-memory graph store.
//
// Storage:
//   - verts is an append-only arena addressed by Handle.
//   - order lists every handle sorted by vertex name; it is the single source
//     of deterministic enumeration order.
//   - edgeCount counts logical edges (one per unordered pair).
//
// mu guards all three. Readers may run concurrently; the algorithms in this
// module assume the graph is not mutated while they run.
type Graph struct {
	mu sync.RWMutex

	verts     []vertex
	order     []Handle
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}
