// Package wgraph is an in-memory undirected weighted graph with the classic
// algorithms over it and a line-oriented command shell in front.
//
// What is in here
//
//	core/         Graph store: named vertices, integer weights in [1,100],
//	              sorted adjacency, rank Index snapshots, (V,E) rendering
//	scratch/      caller-owned Stack, Queue and MinHeap reused by every algorithm
//	bfs/, dfs/    traversals in lexicographic discovery order, Connected,
//	              Reachable, Components, HasCycle
//	prim_kruskal/ minimum spanning tree (Prim with a lazy heap, Kruskal)
//	dijkstra/     shortest path and single-source distances
//	matrix/       adjacency matrix and all-pairs Floyd–Warshall distances
//	builder/      deterministic fixture graphs (path, cycle, star, wheel,
//	              complete, grid, random sparse, noise terrain)
//	shell/        the numeric command protocol (codes 1–11)
//	config/       viper-backed settings (.wgraph.yaml, WGRAPH_* env)
//	watch/        re-run trigger for edited script files
//	cmd/wgraph/   cobra CLI over shell
//
// Quick example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    C─────┘
//
//	g := core.NewGraph()
//	for _, v := range []string{"A", "B", "C"} {
//	    _ = g.AddVertex(v)
//	}
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 5)
//
//	p, _ := dijkstra.ShortestPath(g, "A", "C", scratch.NewMinHeap[int](0))
//	fmt.Println(p) // A -> B -> C; Total edge cost = 3
//
// Or, through the shell:
//
//	printf '1 A\n1 B\n2 A B 4\n10\n' | wgraph
package wgraph
