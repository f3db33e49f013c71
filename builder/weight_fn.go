// Package: wgraph/builder
//
// weight_fn.go - edge weight generators.
//
// All generated weights pass through clampWeight, so fixtures always satisfy
// the core weight range [core.MinWeight, core.MaxWeight].

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wgraph/core"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn draws an edge weight; rng may be nil.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics when value is outside the
// core weight range.
func ConstantWeightFn(value int64) WeightFn {
	if value < core.MinWeight || value > core.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [%d,%d], got %d",
			core.MinWeight, core.MaxWeight, value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [min,max] after clamping both bounds
// to the core weight range. A nil rng yields DefaultEdgeWeight.
// Panics when max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	min, max = clampWeight(min), clampWeight(max)

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight selects ConstantWeightFn(w).
func WithConstantWeight(w int64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight selects UniformWeightFn(min, max).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

func clampWeight(w int64) int64 {
	switch {
	case w < core.MinWeight:
		return core.MinWeight
	case w > core.MaxWeight:
		return core.MaxWeight
	default:
		return w
	}
}
