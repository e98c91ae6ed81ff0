// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; option constructors panic instead.
//
// Priority when several validations fail:
//   • ErrTooFewVertices      — size checks first.
//   • ErrInvalidProbability  — then probability ranges.
//   • ErrNeedRandSource      — then RNG presence for stochastic paths.
//   • ErrConstructFailed     — graph store rejected an emitted edge.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic path (RandomSparse with
// 0<p<1, WithPotentialShift) ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the graph store rejected an edge, most
// often because a weight function produced a value beyond core.MaxAbsWeight.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats an error prefixed with the constructor name; %w verbs
// in format stay matchable with errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
