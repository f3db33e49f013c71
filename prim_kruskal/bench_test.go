package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/scratch"
)

// BenchmarkPrim_Complete measures Prim on K_100 with random weights.
func BenchmarkPrim_Complete(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 100)},
		builder.Complete(100),
	)
	if err != nil {
		b.Fatal(err)
	}
	h := scratch.NewMinHeap[int](0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, "", h)
	}
}

// BenchmarkKruskal_Complete is the Kruskal counterpart on the same graph.
func BenchmarkKruskal_Complete(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 100)},
		builder.Complete(100),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}
