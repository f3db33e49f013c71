package dfs

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// Reachable returns the set of vertices reachable from start, start
// included. An absent start, nil graph or nil stack yields an empty set.
// s is empty on return.
func Reachable(g *core.Graph, start string, s *scratch.Stack[int]) mapset.Set[string] {
	out := mapset.NewSet[string]()
	if g == nil || s == nil {
		return out
	}
	s.Clear()
	defer s.Clear()

	w := newWalker(g, s, DefaultOptions())
	root, ok := w.ix.Lookup(start)
	if !ok {
		return out
	}
	_ = w.run(root, -1, func(r int) error {
		out.Add(w.ix.Name(r))
		return nil
	})

	return out
}

// Components partitions g into connected components. Each component lists
// its vertices in DFS order from its lexicographically smallest member;
// components are ordered by that member. s is empty on return.
func Components(g *core.Graph, s *scratch.Stack[int]) [][]string {
	if g == nil || s == nil {
		return nil
	}
	s.Clear()
	defer s.Clear()

	w := newWalker(g, s, DefaultOptions())
	var comps [][]string
	for r := 0; r < w.ix.Len(); r++ {
		if w.visited[r] {
			continue
		}
		var comp []string
		_ = w.run(r, -1, func(v int) error {
			comp = append(comp, w.ix.Name(v))
			return nil
		})
		comps = append(comps, comp)
	}

	return comps
}
