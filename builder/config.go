// Package: wgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn  ("0","1","2",...)
//   - rng      = nil          (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn (DefaultEdgeWeight)

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; results are clamped to the core weight range.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// weight draws the next edge weight, clamped to [core.MinWeight, core.MaxWeight].
func (c builderConfig) weight() int64 {
	return clampWeight(c.weightFn(c.rng))
}

// ensureVertex adds id unless it is already present.
func ensureVertex(g *core.Graph, method, id string) error {
	if err := g.AddVertex(id); err != nil && !errors.Is(err, core.ErrDuplicateVertex) {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// connect adds or updates the edge u–v with the next configured weight.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
