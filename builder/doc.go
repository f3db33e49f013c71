// Package builder provides deterministic graph fixtures for core.Graph:
// canonical topologies composed through functional options.
//
// Components:
//
//   - BuildGraph / Apply: run Constructors in order against a fresh or
//     existing graph.
//   - Constructors: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn
//     ("A".."Z"), ExcelColumnIDFn ("A",…,"Z","AA",…), SymbolNumberIDFn.
//   - Edge-weight generators (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn. Every weight is clamped to [core.MinWeight, core.MaxWeight].
//   - Options: WithIDScheme, WithRand, WithSeed, WithWeightFn and shorthands.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Constructors reuse vertices that already exist; re-adding an edge
//     updates its weight. Composing Cycle(5) with Path(3) therefore yields
//     the 5-cycle, with the path edges re-weighted.
//   - Invalid sizes return ErrTooFewVertices; ID and weight schemes panic on
//     out-of-domain arguments.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSymbolIDs(), builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
//	    builder.Cycle(6),
//	)
package builder
