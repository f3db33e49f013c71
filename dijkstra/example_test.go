package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/scratch"
)

// ExampleShortestPath finds the cheaper two-hop route over the direct edge.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	h := scratch.NewMinHeap[int](0)
	p, _ := dijkstra.ShortestPath(g, "A", "C", h)
	fmt.Println(p)

	_, err := dijkstra.ShortestPath(g, "A", "D", h)
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath))

	// Output:
	// A -> B -> C; Total edge cost = 3
	// true
}

// ExampleDistances lists distances from a single source.
func ExampleDistances() {
	g := core.NewGraph()
	for _, v := range []string{"hub", "north", "south", "far"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("hub", "north", 4)
	_ = g.AddEdge("hub", "south", 2)
	_ = g.AddEdge("south", "far", 7)

	dist, prev, _ := dijkstra.Distances(g, "hub", scratch.NewMinHeap[int](0))
	for _, v := range g.Vertices() {
		fmt.Printf("%s %d %q\n", v, dist[v], prev[v])
	}

	// Output:
	// far 9 "south"
	// hub 0 ""
	// north 4 "hub"
	// south 2 "hub"
}
