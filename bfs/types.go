// Package bfs: options, hooks and sentinel errors for breadth-first search.
package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNilScratch is returned for a nil work queue.
	ErrNilScratch = errors.New("bfs: scratch queue is nil")

	// ErrOptionViolation wraps every rejected Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option mutates Options. Bad values are remembered and reported by BFS
// as ErrOptionViolation before any vertex is visited.
type Option func(*Options)

// Options tunes a single BFS call.
type Options struct {
	// OnVisit runs as each vertex is emitted, with its edge distance from
	// start. A non-nil error stops the search and is returned wrapped.
	OnVisit func(name string, depth int) error

	// MaxDepth > 0 keeps vertices farther than MaxDepth undiscovered.
	// 0 means unlimited.
	MaxDepth int

	// FilterNeighbor returning false hides the edge curr–neighbor from the
	// search. Neighbors are offered in ascending name order.
	FilterNeighbor func(curr, neighbor string) bool

	err error // first invalid option, if any
}

// DefaultOptions: unlimited depth, every edge followed, no hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithOnVisit installs the visit hook. nil keeps the no-op default.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search depth: d > 0 limits, d == 0 clears the
// limit, d < 0 is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative MaxDepth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter. nil keeps the accept-all default.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
