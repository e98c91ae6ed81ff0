// Package apsp is an all-pairs shortest-path toolkit for directed graphs with
// negative edge weights, built around Johnson's algorithm.
//
// 🚀 What is in the box?
//
//	• core/        — fixed-size directed graph over [0, V), Distance type
//	• bellmanford/ — single-source shortest paths, negative-cycle detection, potentials
//	• dijkstra/    — single-source search with potentials, linear-scan or heap selection
//	• johnson/     — the all-pairs orchestrator and path reconstruction
//	• matrix/      — dense Distances/Predecessors tables, Floyd–Warshall cross-check
//	• bfs/         — hop-count search and reachability
//	• builder/     — seeded generators (random sparse, cycle, path, complete)
//	• graphio/     — edge-list and HCL readers, text report writer
//	• cmd/johnson  — command-line front end
//
// ✨ Guarantees
//
//   - Deterministic: same graph and insertion order ⇒ bit-identical matrices.
//   - Explicit unreachability: core.Distance is never a magic number.
//   - Negative cycles abort a run with a sentinel error and no partial output.
//
// Quick example (the long route is cheaper than the direct edge):
//
//	0 ──(−5)──▶ 1 ──(2)──▶ 2 ──(3)──▶ 3
//	└────────────────(10)─────────────▲
//
//	g := core.MustGraph(4)
//	_ = g.AddEdge(0, 1, -5)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(2, 3, 3)
//	_ = g.AddEdge(0, 3, 10)
//	res, _ := johnson.Johnson(g)
//	d, _ := res.Distance(0, 3) // 0
//
//	go install github.com/katalvlaran/apsp/cmd/johnson@latest
package apsp
