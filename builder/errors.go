// Package: wgraph/builder
//
// errors.go - sentinel errors for graph constructors.
//
// Constructors wrap these with method context, e.g.
// "Cycle: n=2 < min=3: builder: parameter too small". Branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidScale indicates a non-positive or infinite sampling scale.
var ErrInvalidScale = errors.New("builder: scale must be positive and finite")
