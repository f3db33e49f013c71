package dfs

import (
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// Connected reports whether a path of zero or more edges joins src and dst.
//
// src == dst is reachable iff the vertex exists. Otherwise it runs the DFS
// visiting rule from src and stops as soon as dst is marked. A missing
// endpoint, nil graph or nil stack yields false. s is empty on return.
func Connected(g *core.Graph, src, dst string, s *scratch.Stack[int]) bool {
	if g == nil || s == nil {
		return false
	}
	s.Clear()
	defer s.Clear()

	w := newWalker(g, s, DefaultOptions())
	from, ok := w.ix.Lookup(src)
	if !ok {
		return false
	}
	to, ok := w.ix.Lookup(dst)
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	_ = w.run(from, to, func(int) error { return nil })

	return w.visited[to]
}
