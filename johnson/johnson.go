package johnson

import (
	"fmt"

	"github.com/katalvlaran/apsp/bellmanford"
	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/matrix"
)

// Johnson computes all-pairs shortest paths of g, which may contain negative
// edge weights but no negative-weight cycle.
//
// Stages:
//  1. Augment g with a virtual source V and zero-weight edges to every vertex.
//  2. Bellman-Ford from V yields potentials h, or ErrNegativeCycle. On
//     failure the run stops here: no search runs and no matrices are returned.
//  3. For every u in [0, V), Dijkstra on the original graph with h fills row u.
//  4. Every finite entry is un-reweighted: real(i,j) = d(i,j) − h(i) + h(j).
//
// g is only read. Complexity: O(V·E) + O(V·(V²+E)) with the linear-scan
// strategy, O(V·E) + O(V·(V+E) log V) with the heap strategy.
func Johnson(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	log := cfg.Logger
	n := g.VertexCount()

	// 1) Augmented graph; dropped when this function returns.
	aug, src := g.Augment()

	// 2) Potentials.
	log.Debug("running Bellman-Ford", "vertices", aug.VertexCount(), "edges", aug.EdgeCount())
	h, err := bellmanford.Potentials(aug, src)
	if err != nil {
		log.Warn("negative cycle detected, aborting")
		return nil, fmt.Errorf("johnson: %w", err)
	}
	log.Debug("no negative cycles, running Dijkstra per vertex", "strategy", cfg.Strategy.String())

	dist, err := matrix.NewDistances(n)
	if err != nil {
		return nil, err
	}
	prev, err := matrix.NewPredecessors(n)
	if err != nil {
		return nil, err
	}

	// 3) One search per source, written row by row.
	for u := 0; u < n; u++ {
		d, p, err := dijkstra.Dijkstra(g,
			dijkstra.Source(u),
			dijkstra.WithPotentials(h),
			dijkstra.WithStrategy(cfg.Strategy),
		)
		if err != nil {
			// Unreachable after a successful solve; surfaced rather than hidden.
			return nil, fmt.Errorf("johnson: row %d: %w", u, err)
		}

		dRow, _ := dist.Row(u)
		pRow, _ := prev.Row(u)
		copy(pRow, p)

		// 4) Undo reweighting.
		for v, dv := range d {
			if dv.IsInf() {
				continue
			}
			dRow[v] = core.Finite(dv.Int64() - h[u].Int64() + h[v].Int64())
		}
	}
	log.Info("all-pairs shortest paths computed", "vertices", n, "edges", g.EdgeCount())

	return &Result{Dist: dist, Prev: prev, Potentials: h}, nil
}
