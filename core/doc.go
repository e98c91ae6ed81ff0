// Package core provides the graph store used by every algorithm in apsp: a
// dense, integer-indexed, directed, weighted graph with a fixed vertex count.
//
// The Graph G = (V,E):
//
//   - Vertices are the integers [0, V); V is fixed by NewGraph.
//   - Edges are directed triples (u, v, w) with signed int64 weights,
//     |w| ≤ MaxAbsWeight.
//   - Parallel edges are independent entries, never merged.
//   - Self-loops are accepted unless WithoutLoops() is given.
//   - Outgoing edges are kept per vertex in insertion order, so every
//     traversal (EdgesFrom, Neighbors, Edges) is reproducible.
//   - A sync.RWMutex guards the adjacency so a Graph can be filled and read
//     from several goroutines.
//
// Why a dense index instead of string IDs?
//
//   - Shortest-path tables are V×V matrices; dense indices address them directly.
//   - Augmentation with a virtual source is simply "vertex V".
//
// Core Methods:
//
//	// Construction
//	NewGraph(v int, opts ...GraphOption) (*Graph, error) // O(V)
//	AddEdge(u, v int, w int64) error                     // O(1) amortized
//
//	// Query
//	EdgesFrom(u int) iter.Seq2[int, int64] // restartable (to, weight) sequence
//	Neighbors(u int) ([]Edge, error)       // O(deg(u)) copy
//	Edges() []Edge                         // O(V+E), From asc
//	VertexCount() int                      // O(1)
//	EdgeCount() int                        // O(1)
//	OutDegree(u int) int                   // O(1)
//	Stats() GraphStats                     // O(V+E)
//
//	// Derivation
//	Clone() *Graph                         // O(V+E) deep copy
//	Augment() (*Graph, int)                // O(V+E) graph + virtual source
//
// Distance:
//
//	Finite(x) / Infinity()   – explicit reachable / unreachable cost
//	Add, Less, LessOrEqual   – arithmetic and ordering with +∞ semantics
//
// Errors:
//
//	ErrNegativeVertexCount – NewGraph(v<0)
//	ErrInvalidVertex       – endpoint outside [0, V); the edge is not added
//	ErrWeightOutOfRange    – |w| > MaxAbsWeight; the edge is not added
//	ErrLoopNotAllowed      – u==v with WithoutLoops()
package core
