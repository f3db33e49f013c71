// Package shell executes the line-oriented graph command protocol against a
// single core.Graph.
//
// Each line is a decimal command code followed by whitespace-separated
// arguments:
//
//	1  name          add vertex
//	2  u v weight    add or update edge
//	3  name          print degree
//	4  u v           print 1 if the edge exists, else 0
//	5  start         BFS, names on one line
//	6  start         DFS, one name per line then a blank line
//	7  src dst       print 1 if dst is reachable from src, else 0
//	8                minimum spanning tree
//	9  src dst       shortest path and its cost, or 0
//	10               print the graph
//	11               stop
//
// Blank lines and unknown codes are skipped. A command with the wrong
// number of arguments prints nothing, except 5 and 6 (an empty line) and
// 7 and 9 ("0"). Extra arguments to 8, 10 and 11 are ignored.
//
// Nothing is written for rejected input beyond that; the reason is logged
// at Debug level on the Session's logger.
//
// Usage
//
//	sess := shell.New(shell.WithOutput(os.Stdout))
//	err := sess.Run(os.Stdin)
package shell
