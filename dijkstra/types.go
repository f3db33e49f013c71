// Package dijkstra defines the path result, options and sentinel errors for
// single-source shortest paths over a core.Graph.
package dijkstra

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNilScratch is returned when a nil heap is passed.
	ErrNilScratch = errors.New("dijkstra: scratch heap is nil")

	// ErrNoPath is returned when either endpoint is absent or end is
	// unreachable from start.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance is the panic message for a negative WithMaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is the panic message for a non-positive WithInfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for vertices not reached.
const Unreachable int64 = math.MaxInt64

// Path is a shortest path: its vertices from start to end and the sum of
// edge weights along it.
type Path struct {
	Vertices []string
	Cost     int64
}

// String renders "A -> B -> C; Total edge cost = 3".
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(p.Vertices, " -> "))
	sb.WriteString("; Total edge cost = ")
	sb.WriteString(strconv.FormatInt(p.Cost, 10))

	return sb.String()
}

// Options tunes Distances.
type Options struct {
	MaxDistance      int64 // vertices farther than this are not settled
	InfEdgeThreshold int64 // edges with weight ≥ this are impassable
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// WithMaxDistance stops settling vertices beyond max. Panics on max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics on threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}
