// Package: wgraph/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p).
//
// Pairs (i,j), i<j, are visited in row-major order and each is kept with
// probability p. The weight is drawn only for kept pairs, so output is
// deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// RandomSparse builds G(n,p) over cfg.idFn(0..n-1) (n ≥ 1, 0 ≤ p ≤ 1).
// An RNG is required unless p is exactly 0 or 1.
// Complexity: O(n^2) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			if err := ensureVertex(g, MethodRandomSparse, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == MaxProbability
				if cfg.rng != nil && p > MinProbability && p < MaxProbability {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := connect(g, cfg, MethodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
