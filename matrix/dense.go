// SPDX-License-Identifier: MIT

// Package matrix - square row-major tables for all-pairs results.
//
// Purpose:
//   - Distances holds an n×n table of core.Distance (zero value = unreachable).
//   - Predecessors holds an n×n table of vertex indices (core.NoVertex = none).
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Rows are exposed as sub-slices of the flat buffer so producers can fill
//     them row by row without copying.
//
// Complexity quicksheet:
//   - New*: O(n²) init; At/Set: O(1); Row: O(1); Equal: O(n²).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// Distances is an n×n row-major table of core.Distance.
type Distances struct {
	n    int
	data []core.Distance // offset = i*n + j
}

// NewDistances returns an n×n table with every entry unreachable.
func NewDistances(n int) (*Distances, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDistances(%d): %w", n, ErrBadShape)
	}

	return &Distances{n: n, data: make([]core.Distance, n*n)}, nil
}

// Size returns n.
func (d *Distances) Size() int { return d.n }

// At returns entry (i, j).
func (d *Distances) At(i, j int) (core.Distance, error) {
	if err := checkIndex(d.n, i, j); err != nil {
		return core.Distance{}, fmt.Errorf("Distances.%s(%d,%d): %w", ctxAt, i, j, err)
	}

	return d.data[i*d.n+j], nil
}

// Set writes entry (i, j).
func (d *Distances) Set(i, j int, v core.Distance) error {
	if err := checkIndex(d.n, i, j); err != nil {
		return fmt.Errorf("Distances.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	d.data[i*d.n+j] = v

	return nil
}

// Row returns row i as a slice aliasing the table: writes through it are
// visible in d.
func (d *Distances) Row(i int) ([]core.Distance, error) {
	if i < 0 || i >= d.n {
		return nil, fmt.Errorf("Distances.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return d.data[i*d.n : (i+1)*d.n : (i+1)*d.n], nil
}

// Equal reports whether d and o have the same size and identical entries.
func (d *Distances) Equal(o *Distances) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	for k := range d.data {
		if d.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Diff returns the first (i, j) at which d and o disagree, or ok=false when
// they are equal. Sizes must match.
func (d *Distances) Diff(o *Distances) (i, j int, ok bool, err error) {
	if d.n != o.n {
		return 0, 0, false, matrixErrorf("Distances.Diff", ErrDimensionMismatch)
	}
	for k := range d.data {
		if d.data[k] != o.data[k] {
			return k / d.n, k % d.n, true, nil
		}
	}

	return 0, 0, false, nil
}

// Predecessors is an n×n row-major table of vertex indices.
type Predecessors struct {
	n    int
	data []int // offset = i*n + j
}

// NewPredecessors returns an n×n table with every entry core.NoVertex.
func NewPredecessors(n int) (*Predecessors, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewPredecessors(%d): %w", n, ErrBadShape)
	}
	p := &Predecessors{n: n, data: make([]int, n*n)}
	for k := range p.data {
		p.data[k] = core.NoVertex
	}

	return p, nil
}

// Size returns n.
func (p *Predecessors) Size() int { return p.n }

// At returns entry (i, j): the predecessor of j on a shortest path from i.
func (p *Predecessors) At(i, j int) (int, error) {
	if err := checkIndex(p.n, i, j); err != nil {
		return core.NoVertex, fmt.Errorf("Predecessors.%s(%d,%d): %w", ctxAt, i, j, err)
	}

	return p.data[i*p.n+j], nil
}

// Set writes entry (i, j).
func (p *Predecessors) Set(i, j, v int) error {
	if err := checkIndex(p.n, i, j); err != nil {
		return fmt.Errorf("Predecessors.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	p.data[i*p.n+j] = v

	return nil
}

// Row returns row i as a slice aliasing the table.
func (p *Predecessors) Row(i int) ([]int, error) {
	if i < 0 || i >= p.n {
		return nil, fmt.Errorf("Predecessors.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return p.data[i*p.n : (i+1)*p.n : (i+1)*p.n], nil
}

// Equal reports whether p and o have the same size and identical entries.
func (p *Predecessors) Equal(o *Predecessors) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.n != o.n {
		return false
	}
	for k := range p.data {
		if p.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

func checkIndex(n, i, j int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrOutOfRange
	}

	return nil
}
