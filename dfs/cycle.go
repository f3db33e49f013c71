package dfs

import (
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// HasCycle reports whether the simple undirected graph g contains a cycle.
//
// A forest on V vertices with C components has exactly V-C edges; any
// additional edge closes a cycle. Components are found with the DFS
// visiting rule, so the cost is O(V + E). s is empty on return.
func HasCycle(g *core.Graph, s *scratch.Stack[int]) bool {
	if g == nil || s == nil {
		return false
	}
	comps := Components(g, s)
	v := 0
	for _, c := range comps {
		v += len(c)
	}

	return g.EdgeCount() > v-len(comps)
}
