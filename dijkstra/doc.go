// Package dijkstra provides Dijkstra's single-source shortest-path search on
// dense integer graphs, with optional potential-based reweighting so that it
// can serve as the inner loop of Johnson's all-pairs algorithm.
//
// Overview:
//
//   - Dijkstra settles vertices in order of increasing tentative distance and
//     relaxes their outgoing edges with the reduced cost w' = w + h(u) − h(v).
//   - When h comes from a successful Bellman-Ford run on the augmented graph,
//     every w' is non-negative and the label-setting invariant holds.
//   - Results are reduced distances; true costs are d − h(source) + h(target).
//
// Selection and tie-break:
//
//   - The vertex settled next has the smallest tentative distance.
//   - Among several unvisited vertices tied at that distance, the one with the
//     HIGHEST index is settled first. Predecessor rows depend on this order, and
//     it is kept stable so that repeated runs are bit-identical.
//
// Strategies:
//
//   - StrategyLinearScan (default): O(V) scan per selection, O(V² + E) total.
//     Best for dense graphs, and the complexity bound callers can rely on.
//   - StrategyHeap: lazy-decrease-key binary heap ordered by (distance asc,
//     index desc), O((V + E) log V) total. Same settle order, same output.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source outside [0, V).
//   - ErrBadPotentials:  h shorter than V or with an unreachable entry.
//   - ErrNegativeWeight: some reduced edge cost is negative (O(E) pre-scan).
//   - ErrBadStrategy:    unknown Strategy (panics in WithStrategy, error in ParseStrategy).
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist []core.Distance, prev []int, err error)
//
//	  - opts:
//	      • Source(int):                 starting vertex, default 0.
//	      • WithPotentials([]core.Distance): reweighting vector.
//	      • WithStrategy(Strategy):      selection strategy.
//	  - dist: reduced distance per vertex, core.Infinity() if unreachable.
//	  - prev: predecessor per vertex, core.NoVertex for source/unreachable.
package dijkstra
