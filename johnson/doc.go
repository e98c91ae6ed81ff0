// Package johnson computes all-pairs shortest paths on directed graphs with
// negative edge weights using Johnson's algorithm.
//
// Overview:
//
//   - One Bellman-Ford pass from a virtual source (vertex V, with zero-weight
//     edges to every vertex) yields potentials h, or reports a negative cycle.
//   - The potentials make every reduced cost w + h(u) − h(v) non-negative, so
//     one Dijkstra pass per vertex on the ORIGINAL graph suffices.
//   - Reduced distances are un-reweighted: real(i,j) = d(i,j) − h(i) + h(j).
//
// When to use:
//
//   - Sparse graphs with negative edges, where V·Dijkstra beats Floyd–Warshall.
//   - When predecessor matrices are needed for explicit path reconstruction.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrNegativeCycle:  fatal for the run; nil Result, no search performed.
//   - ErrVertexNotFound: Result.Distance / Result.Path / Reconstruct indices.
//   - ErrNoPath:         Reconstruct on an unreachable target.
//   - ErrBrokenChain:    Reconstruct on a malformed predecessor row.
//
// Determinism:
//
//   - Edges are visited in insertion order and Dijkstra settles ties by highest
//     index, so repeated runs on the same graph produce identical matrices.
//
// Complexity:
//
//   - Time:  O(V·E) + O(V·(V² + E)) with dijkstra.StrategyLinearScan (default),
//     O(V·E) + O(V·(V + E) log V) with dijkstra.StrategyHeap.
//   - Space: O(V²) for the result matrices plus O(V + E) for the augmented graph.
//
// Example:
//
//	res, err := johnson.Johnson(g, johnson.WithLogger(logger))
//	if errors.Is(err, johnson.ErrNegativeCycle) { ... }
//	d, _ := res.Distance(0, 3)
//	path, _ := res.Path(0, 3)
package johnson
