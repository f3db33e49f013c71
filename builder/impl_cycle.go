// Package: wgraph/builder
//
// impl_cycle.go - simple cycle C_n.
//
// Vertices: cfg.idFn(0..n-1). Edges: i–(i+1)%n for i=0..n-1.

package builder

import "github.com/katalvlaran/wgraph/core"

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		return ring(g, cfg, MethodCycle, n)
	}
}

// ring adds vertices idFn(0..n-1) and the cycle edges over them.
func ring(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := ensureVertex(g, method, cfg.idFn(i)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if err := connect(g, cfg, method, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
			return err
		}
	}

	return nil
}
