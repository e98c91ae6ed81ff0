// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex hop distance (-1 if unreached)
//   - Parent: per-vertex predecessor in the BFS tree (core.NoVertex if none)
//   - Supports a visit hook (OnVisit, may abort with an error), neighbor
//     filtering (WithFilterNeighbor) and a MaxDepth limit.
//   - Reachable(g, s) reduces a run to a per-vertex reachability vector.
//
// Why
//
//   - Reachability is independent of edge weights, so it cross-checks the
//     unreachable entries of an all-pairs distance matrix: INF at (s, v)
//     must coincide with v not being reachable from s.
//
// Determinism
//
//	Neighbors are enqueued in edge insertion order, so the visit sequence
//	is fully reproducible.
//
// Complexity
//
//	Time O(V + E), memory O(V).
package bfs
