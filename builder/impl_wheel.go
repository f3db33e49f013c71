// Package: wgraph/builder
//
// impl_wheel.go - wheel: a ring C_n plus hub CenterVertexID.
//
// Emission order: ring edges first (as Cycle), then spokes Center–idFn(i).

package builder

import "github.com/katalvlaran/wgraph/core"

// Wheel builds C_n plus a "Center" hub joined to every ring vertex (n ≥ 3).
// The result has n+1 vertices and 2n edges.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := ring(g, cfg, MethodWheel, n); err != nil {
			return err
		}
		if err := ensureVertex(g, MethodWheel, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
