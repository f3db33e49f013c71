// Package dijkstra finds minimum-cost paths with a lazy-deletion min-heap.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// search holds the per-call state of one run. Vertices are addressed by rank.
type search struct {
	g    *core.Graph
	ix   *core.Index
	h    *scratch.MinHeap[int]
	opts Options
	dist []int64
	prev []int
	done []bool
}

func newSearch(g *core.Graph, h *scratch.MinHeap[int], opts Options) *search {
	ix := g.Index()
	n := ix.Len()
	s := &search{
		g:    g,
		ix:   ix,
		h:    h,
		opts: opts,
		dist: make([]int64, n),
		prev: make([]int, n),
		done: make([]bool, n),
	}
	for i := range s.dist {
		s.dist[i] = Unreachable
		s.prev[i] = -1
	}

	return s
}

// run settles vertices from src in distance order. If stop is a valid rank,
// it returns as soon as stop is settled.
func (s *search) run(src, stop int) {
	s.dist[src] = 0
	s.h.Push(src, 0)
	for {
		u, d, ok := s.h.Pop()
		if !ok {
			return
		}
		if s.done[u] || d > s.dist[u] {
			continue
		}
		if d > s.opts.MaxDistance {
			return
		}
		s.done[u] = true
		if u == stop {
			return
		}
		for nh, w := range s.g.Adjacent(s.ix.Handle(u)) {
			if w >= s.opts.InfEdgeThreshold {
				continue
			}
			v := s.ix.Rank(nh)
			if s.done[v] {
				continue
			}
			if alt := d + w; alt < s.dist[v] {
				s.dist[v] = alt
				s.prev[v] = u
				s.h.Push(v, alt)
			}
		}
	}
}

// ShortestPath returns the minimum-cost path from start to end.
//
// Relaxation only replaces a distance that is strictly larger, so among
// equal-cost paths the first one discovered (ties popped in name order)
// is kept. The search ends as soon as end is settled.
//
// start == end (present) yields the single-vertex path with cost 0.
// An absent endpoint or an unreachable end yields ErrNoPath.
// h is cleared on entry and is empty on every return path.
func ShortestPath(g *core.Graph, start, end string, h *scratch.MinHeap[int]) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if h == nil {
		return nil, ErrNilScratch
	}
	h.Clear()
	defer h.Clear()

	s := newSearch(g, h, DefaultOptions())
	src, ok := s.ix.Lookup(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q not found", ErrNoPath, start)
	}
	dst, ok := s.ix.Lookup(end)
	if !ok {
		return nil, fmt.Errorf("%w: %q not found", ErrNoPath, end)
	}

	s.run(src, dst)
	if s.dist[dst] == Unreachable {
		return nil, fmt.Errorf("%w: %q unreachable from %q", ErrNoPath, end, start)
	}

	var rev []string
	for r := dst; r != -1; r = s.prev[r] {
		rev = append(rev, s.ix.Name(r))
	}
	p := &Path{Vertices: make([]string, len(rev)), Cost: s.dist[dst]}
	for i, name := range rev {
		p.Vertices[len(rev)-1-i] = name
	}

	return p, nil
}

// Distances computes shortest distances from source to every vertex, plus
// the predecessor of each reached vertex ("" for source and unreached).
// Unreached vertices map to Unreachable.
//
// Errors: ErrGraphNil, ErrNilScratch, core.ErrVertexNotFound (wrapped).
// h is empty on return.
func Distances(g *core.Graph, source string, h *scratch.MinHeap[int], opts ...Option) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if h == nil {
		return nil, nil, ErrNilScratch
	}
	h.Clear()
	defer h.Clear()

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s := newSearch(g, h, o)
	src, ok := s.ix.Lookup(source)
	if !ok {
		return nil, nil, fmt.Errorf("dijkstra: source %q: %w", source, core.ErrVertexNotFound)
	}
	s.run(src, -1)

	n := s.ix.Len()
	dist := make(map[string]int64, n)
	prev := make(map[string]string, n)
	for r := 0; r < n; r++ {
		name := s.ix.Name(r)
		if !s.done[r] {
			dist[name] = Unreachable
			prev[name] = ""
			continue
		}
		dist[name] = s.dist[r]
		if p := s.prev[r]; p >= 0 {
			prev[name] = s.ix.Name(p)
		} else {
			prev[name] = ""
		}
	}

	return dist, prev, nil
}
