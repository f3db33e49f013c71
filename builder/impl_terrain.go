// Package: wgraph/builder
//
// impl_terrain.go - R×C grid over an OpenSimplex height field.
//
// Cells use the Grid ID scheme "r_c". The height of a cell is 2D simplex
// noise sampled at (c*scale, r*scale); moving between neighbors costs
// 1 + |Δh|·TerrainSlopeCost, so flat ground is cheap and ridges are
// expensive. cfg.weightFn is not consulted. The noise seed is drawn from
// cfg.rng, so output is deterministic for a fixed seed.

package builder

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/wgraph/core"
)

// TerrainSlopeCost scales a height difference (at most 2) into the
// core weight range.
const TerrainSlopeCost = float64(core.MaxWeight-core.MinWeight) / 2

// Terrain builds a rows×cols grid (each ≥ 1) whose weights follow the
// slope of a noise height field sampled every scale units (scale > 0).
// Requires an RNG (WithSeed or WithRand).
func Terrain(rows, cols int, scale float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodTerrain, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if !(scale > 0) || math.IsInf(scale, 1) {
			return fmt.Errorf("%s: scale=%v: %w", MethodTerrain, scale, ErrInvalidScale)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodTerrain, ErrNeedRandSource)
		}

		noise := opensimplex.New(cfg.rng.Int63())
		height := make([]float64, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				height[r*cols+c] = noise.Eval2(float64(c)*scale, float64(r)*scale)
				if err := ensureVertex(g, MethodTerrain, fmt.Sprintf(gridIDFmt, r, c)); err != nil {
					return err
				}
			}
		}

		link := func(r1, c1, r2, c2 int) error {
			dh := math.Abs(height[r1*cols+c1] - height[r2*cols+c2])
			w := clampWeight(core.MinWeight + int64(math.Round(dh*TerrainSlopeCost)))
			u, v := fmt.Sprintf(gridIDFmt, r1, c1), fmt.Sprintf(gridIDFmt, r2, c2)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s–%s, w=%d): %w", MethodTerrain, u, v, w, err)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(r, c, r, c+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(r, c, r+1, c); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
