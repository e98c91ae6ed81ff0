// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) over a core.Graph with deterministic loop order.
//   - Independent of Johnson's reweighting, so it serves as a cross-check.
//
// Contract:
//   - Unreachable pairs stay core.Infinity(); the diagonal starts at 0 (or a
//     negative self-loop weight) and any negative diagonal is a negative cycle.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// Operation name constants for unified error wrapping.
const opFloydWarshall = "FloydWarshall"

// initDistances converts g into its one-hop distance table:
//
//	diag = 0 (or the smallest self-loop weight when negative);
//	(u,v) = minimum weight over parallel edges u→v; +∞ otherwise.
//
// Complexity: O(n² + E).
func initDistances(g *core.Graph) *Distances {
	n := g.VertexCount()
	d := &Distances{n: n, data: make([]core.Distance, n*n)}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = core.Finite(0)
	}
	for _, e := range g.Edges() {
		cell := &d.data[e.From*n+e.To]
		if w := core.Finite(e.Weight); w.Less(*cell) {
			*cell = w
		}
	}

	return d
}

// floydWarshallInPlace runs APSP closure on d in place.
//
// Loop order is fixed (k → i → j). After each k the diagonal is checked so a
// negative cycle aborts before values can run away.
// Time: O(n³); Extra space: O(1).
func floydWarshallInPlace(d *Distances) error {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       core.Distance
		cand         core.Distance
	)

	for k = 0; k < n; k++ { // outer: intermediate vertex k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if ik.IsInf() { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if kj.IsInf() {
					continue
				}
				cand = ik.Add(kj.Int64())
				if cand.Less(data[baseI+j]) { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
		for i = 0; i < n; i++ {
			if data[i*n+i].Less(core.Finite(0)) {
				return fmt.Errorf("%w: vertex %d after pivot %d", ErrNegativeCycle, i, k)
			}
		}
	}

	return nil
}

// FloydWarshall computes all-pairs shortest distances of g.
//
// Contract:
//   - Parallel edges collapse to their minimum weight; self-loops only matter
//     when negative.
//   - Unreachable pairs are core.Infinity().
//
// Errors: ErrGraphNil, ErrNegativeCycle.
//
// Complexity: Time O(n³ + E), Space O(n²).
func FloydWarshall(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opFloydWarshall, ErrGraphNil)
	}
	d := initDistances(g)
	for i := 0; i < d.n; i++ {
		if d.data[i*d.n+i].Less(core.Finite(0)) {
			return nil, matrixErrorf(opFloydWarshall,
				fmt.Errorf("%w: negative self-loop on %d", ErrNegativeCycle, i))
		}
	}
	if err := floydWarshallInPlace(d); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}

	return d, nil
}
