package johnson

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/apsp/core"
)

// Reconstruct returns the vertices of the shortest path source → … → target
// encoded in prev, a predecessor row computed from source.
//
// The walk goes backward from target through prev until it reaches
// core.NoVertex, then the collected list is reversed. It is iterative, so path
// length is bounded by V, not by stack depth.
//
// Errors:
//   - ErrVertexNotFound: source or target outside [0, len(prev)).
//   - ErrNoPath:         target ≠ source and prev[target] is NoVertex.
//   - ErrBrokenChain:    the walk exceeds len(prev) steps or ends elsewhere than source.
//
// source == target yields [source].
func Reconstruct(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, fmt.Errorf("%w: %d→%d with %d vertices", ErrVertexNotFound, source, target, n)
	}
	if source == target {
		return []int{source}, nil
	}
	if prev[target] == core.NoVertex {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
	}

	path := []int{target}
	for cur := prev[target]; cur != core.NoVertex; cur = prev[cur] {
		if cur < 0 || cur >= n || len(path) >= n {
			return nil, fmt.Errorf("%w: %d→%d", ErrBrokenChain, source, target)
		}
		path = append(path, cur)
	}
	if path[len(path)-1] != source {
		return nil, fmt.Errorf("%w: %d→%d ends at %d", ErrBrokenChain, source, target, path[len(path)-1])
	}
	slices.Reverse(path)

	return path, nil
}
