// Package: wgraph/builder
//
// impl_complete.go - complete graph K_n.
//
// Edges are emitted for i<j in row-major order.

package builder

import "github.com/katalvlaran/wgraph/core"

// Complete builds the complete simple graph K_n (n ≥ 1).
// Complexity: O(n^2) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			if err := ensureVertex(g, MethodComplete, ids[i]); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
