// Package: wgraph/builder
//
// impl_grid.go - R×C 4-neighborhood grid.
//
// IDs use the fixed coordinate scheme "r_c" (cfg.idFn is not consulted).
// Emission order: row-major; right neighbor before bottom neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const gridIDFmt = "%d_%d"

// Grid builds a rows×cols grid (each ≥ 1).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := ensureVertex(g, MethodGrid, fmt.Sprintf(gridIDFmt, r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
