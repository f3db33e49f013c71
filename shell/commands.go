package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// Command codes.
const (
	cmdAddVertex = iota + 1
	cmdAddEdge
	cmdDegree
	cmdHasEdge
	cmdBFS
	cmdDFS
	cmdConnected
	cmdMST
	cmdShortestPath
	cmdRender
	cmdQuit
)

// command describes one protocol entry. arity < 0 accepts any number of
// arguments; malformed is written when the count is wrong.
type command struct {
	arity     int
	malformed string
	run       func(s *Session, args []string) error
}

var commands = map[int]command{
	cmdAddVertex:    {arity: 1, run: (*Session).addVertex},
	cmdAddEdge:      {arity: 3, run: (*Session).addEdge},
	cmdDegree:       {arity: 1, run: (*Session).degree},
	cmdHasEdge:      {arity: 2, run: (*Session).hasEdge},
	cmdBFS:          {arity: 1, malformed: "\n", run: (*Session).bfs},
	cmdDFS:          {arity: 1, malformed: "\n", run: (*Session).dfs},
	cmdConnected:    {arity: 2, malformed: "0\n", run: (*Session).connected},
	cmdMST:          {arity: -1, run: (*Session).mst},
	cmdShortestPath: {arity: 2, malformed: "0\n", run: (*Session).shortestPath},
	cmdRender:       {arity: -1, run: (*Session).render},
}

func (s *Session) addVertex(args []string) error {
	return s.graph.AddVertex(args[0])
}

func (s *Session) addEdge(args []string) error {
	w, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadWeight, args[2])
	}

	return s.graph.AddEdge(args[0], args[1], w)
}

func (s *Session) degree(args []string) error {
	d, err := s.graph.Degree(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d\n", d)

	return nil
}

func (s *Session) hasEdge(args []string) error {
	s.writeBool(s.graph.HasEdge(args[0], args[1]))
	return nil
}

func (s *Session) bfs(args []string) error {
	order, err := bfs.BFS(s.graph, args[0], s.queue)
	s.out.WriteString(strings.Join(order, " "))
	s.out.WriteByte('\n')

	return err
}

func (s *Session) dfs(args []string) error {
	order, err := dfs.DFS(s.graph, args[0], s.stack)
	for _, name := range order {
		s.out.WriteString(name)
		s.out.WriteByte('\n')
	}
	s.out.WriteByte('\n')

	return err
}

func (s *Session) connected(args []string) error {
	s.writeBool(dfs.Connected(s.graph, args[0], args[1], s.stack))
	return nil
}

func (s *Session) mst(_ []string) error {
	tree, err := prim_kruskal.Compute(s.graph, s.heap, prim_kruskal.WithMethod(s.opts.MSTMethod))
	if err != nil {
		tree = &prim_kruskal.Tree{}
	}
	if rerr := tree.Render(s.out, s.opts.MSTLabel); rerr != nil {
		return rerr
	}

	return err
}

func (s *Session) shortestPath(args []string) error {
	p, err := dijkstra.ShortestPath(s.graph, args[0], args[1], s.heap)
	if err != nil {
		s.out.WriteString("0\n")
		return err
	}
	s.out.WriteString(p.String())
	s.out.WriteByte('\n')

	return nil
}

func (s *Session) render(_ []string) error {
	return s.graph.Render(s.out, s.opts.GraphLabel)
}

func (s *Session) writeBool(b bool) {
	if b {
		s.out.WriteString("1\n")
		return
	}
	s.out.WriteString("0\n")
}
