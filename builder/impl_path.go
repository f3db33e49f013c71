// Package: wgraph/builder
//
// impl_path.go - simple path P_n.
//
// Vertices: cfg.idFn(0..n-1). Edges: (i-1)–i for i=1..n-1, in that order.

package builder

import "github.com/katalvlaran/wgraph/core"

// Path builds a simple path P_n (n ≥ 2).
// Complexity: O(n log n) with sorted insertion.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := ensureVertex(g, MethodPath, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
