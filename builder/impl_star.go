// Package: wgraph/builder
//
// impl_star.go - star with hub CenterVertexID.
//
// Leaves: cfg.idFn(1..n-1). Spokes are emitted in leaf order.

package builder

import "github.com/katalvlaran/wgraph/core"

// Star builds a star with center "Center" and n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := ensureVertex(g, MethodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := ensureVertex(g, MethodStar, leaf); err != nil {
				return err
			}
			if err := connect(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
