// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, EdgesFrom, Neighbors, Edges,
//       EdgeCount, OutDegree.
// Determinism:
//   - Per-vertex edges are returned in insertion order.
//   - Edges() returns edges grouped by From asc, insertion order within a group.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"iter"
)

// AddEdge appends the directed edge u→v with weight w.
//
// Steps:
//  1. Validate endpoints against [0, V); ErrInvalidVertex otherwise.
//  2. Validate |w| ≤ MaxAbsWeight; ErrWeightOutOfRange otherwise.
//  3. Reject u==v when loops are disabled (ErrLoopNotAllowed).
//  4. Append to adj[u] under the write lock.
//
// A rejected edge is simply not added; the graph stays valid and the caller
// may continue adding edges.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("%w: edge %d→%d(%d) outside [0,%d)", ErrInvalidVertex, u, v, w, g.n)
	}
	if w > MaxAbsWeight || w < -MaxAbsWeight {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrWeightOutOfRange, u, v, w)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[u] = append(g.adj[u], arc{to: v, weight: w})
	g.edgeCount++

	return nil
}

// EdgesFrom returns the outgoing (destination, weight) pairs of u.
//
// The sequence is restartable: every range over it yields the same pairs in
// insertion order. Out-of-range u yields nothing. The read lock is held only
// while the bucket header is snapshotted, since buckets are append-only.
func (g *Graph) EdgesFrom(u int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if u < 0 || u >= g.n {
			return
		}
		g.mu.RLock()
		bucket := g.adj[u]
		g.mu.RUnlock()

		for _, a := range bucket {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}

// Neighbors returns a copy of u's outgoing edges in insertion order.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, u)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adj[u]))
	for i, a := range g.adj[u] {
		out[i] = Edge{From: u, To: a.to, Weight: a.weight}
	}

	return out, nil
}

// Edges returns every edge, grouped by From ascending and in insertion order
// within each group. Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, bucket := range g.adj {
		for _, a := range bucket {
			out = append(out, Edge{From: u, To: a.to, Weight: a.weight})
		}
	}

	return out
}

// EdgeCount returns the total number of edges, counting parallel edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// OutDegree returns the number of outgoing edges of u, or 0 if u is out of range.
func (g *Graph) OutDegree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u])
}
