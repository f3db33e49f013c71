// Package dfs implements depth-first traversal and the queries built on it:
// point-to-point connectivity, reachable sets, connected components and
// cycle presence on an undirected core.Graph.
//
// What:
//
//   - DFS: iterative traversal with a caller-owned scratch.Stack. The
//     visited check happens at pop time; unvisited neighbors are pushed in
//     descending name order so the smallest is explored first.
//   - Connected: the same visiting rule with an early stop at the target.
//   - Reachable: the reachable vertex set as a mapset.Set.
//   - Components: a DFS forest over every vertex in name order.
//   - HasCycle: compares the edge count with the forest bound V-C.
//
// Options:
//
//   - WithOnVisit(fn)         pre-order hook on emission; error aborts traversal.
//   - WithFilterNeighbor(fn)  skip edges curr–neighbor when fn returns false.
//
// Errors:
//
//   - ErrGraphNil    if g is nil.
//   - ErrNilScratch  if the stack is nil.
//   - any error returned by OnVisit, wrapped.
//
// Every function clears the stack on entry and leaves it empty on return.
package dfs
