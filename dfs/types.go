// Package dfs defines options and errors for depth-first traversal,
// connectivity queries and component discovery over a core.Graph.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNilScratch is returned when a nil stack is passed to DFS.
	ErrNilScratch = errors.New("dfs: scratch stack is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, s, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit is invoked when a vertex is popped, marked and emitted.
	// Returning an error aborts traversal with that error.
	OnVisit func(name string) error

	// FilterNeighbor is called for each unvisited neighbor before it is
	// pushed. Return false to skip the edge curr–neighbor.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with a no-op hook and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(string) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
