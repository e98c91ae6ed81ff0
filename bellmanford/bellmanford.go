// Package bellmanford implements the Bellman-Ford shortest-path algorithm on
// integer-weighted directed graphs that may contain negative edge weights.
//
// Complexity:
//
//   - Time:  O(V·E). Exactly V-1 relaxation rounds over every edge, then one
//     detection scan. There is no early exit; the bound is part of the contract.
//   - Space: O(V) for the distance and predecessor slices.
//
// Notes on implementation choices:
//
//   - Edges are scanned in vertex order, then insertion order, so results are
//     reproducible for a fixed graph.
//   - Unreachable vertices carry core.Infinity() and are never used as relaxation
//     origins, so +∞ never participates in arithmetic.
package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// BellmanFord computes shortest distances from the source vertex
// (Options.Source) to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the shortest distance from Source, or core.Infinity()
//     when v is unreachable.
//   - prev: prev[v] is the predecessor of v on one shortest path, or
//     core.NoVertex for the source and unreachable vertices.
//   - err:  ErrNilGraph, ErrVertexNotFound, or ErrNegativeCycle. On
//     ErrNegativeCycle no distances are returned.
//
// Complexity: O(V·E) time, O(V) space.
func BellmanFord(g *core.Graph, opts ...Option) ([]core.Distance, []int, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	r := newRunner(g, cfg.Source)
	for round := 1; round < r.n; round++ {
		r.relaxAll()
	}
	if u, v, ok := r.findViolation(); ok {
		return nil, nil, fmt.Errorf("%w: edge %d→%d still relaxes after %d rounds",
			ErrNegativeCycle, u, v, r.n-1)
	}

	return r.dist, r.prev, nil
}

// Potentials runs BellmanFord on an augmented graph from its virtual source
// and returns the potential vector h of length aug.VertexCount().
//
// Every finite h satisfies h(v) ≤ h(u) + w for every edge (u, v, w), so the
// reduced cost w + h(u) − h(v) is non-negative.
func Potentials(aug *core.Graph, source int) ([]core.Distance, error) {
	h, _, err := BellmanFord(aug, Source(source))
	if err != nil {
		return nil, err
	}

	return h, nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	g    *core.Graph     // The input graph; read-only.
	n    int             // Vertex count.
	dist []core.Distance // dist[v] = best known distance from the source.
	prev []int           // prev[v] = predecessor on that path.
}

// newRunner initializes dist(source)=0, everything else unreachable.
func newRunner(g *core.Graph, source int) *runner {
	n := g.VertexCount()
	r := &runner{
		g:    g,
		n:    n,
		dist: make([]core.Distance, n), // zero Distance is unreachable
		prev: make([]int, n),
	}
	for v := range r.prev {
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = core.Finite(0)

	return r
}

// relaxAll performs one full round over every edge.
func (r *runner) relaxAll() {
	var cand core.Distance
	for u := 0; u < r.n; u++ {
		if r.dist[u].IsInf() {
			continue
		}
		for v, w := range r.g.EdgesFrom(u) {
			// dist[u] may shrink mid-bucket through a negative self-loop.
			cand = r.dist[u].Add(w)
			if cand.Less(r.dist[v]) {
				r.dist[v] = cand
				r.prev[v] = u
			}
		}
	}
}

// findViolation scans every edge once more and reports the first edge that
// could still be relaxed.
func (r *runner) findViolation() (int, int, bool) {
	for u := 0; u < r.n; u++ {
		if r.dist[u].IsInf() {
			continue
		}
		for v, w := range r.g.EdgesFrom(u) {
			if r.dist[u].Add(w).Less(r.dist[v]) {
				return u, v, true
			}
		}
	}

	return 0, 0, false
}
