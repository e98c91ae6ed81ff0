// Package builder generates deterministic directed test graphs for the
// all-pairs solvers.
//
// The package offers:
//
//   - Topologies:
//     – RandomSparse(n, p):  Erdős–Rényi-like digraph, no loops.
//     – Cycle(n):            directed ring.
//     – Path(n):             directed chain.
//     – Complete(n):         all ordered pairs.
//   - Options (BuilderOption):
//     – WithSeed / WithRand: RNG for stochastic choices.
//     – WithWeightFn:        per-edge weight generator (WeightFn).
//     – WithPotentialShift:  negative edges without negative cycles.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical graph, edge order included.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Generators return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//
// Example:
//
//	g, err := builder.RandomSparse(100, 0.05,
//		builder.WithSeed(42),
//		builder.WithUniformWeight(0, 50),
//		builder.WithPotentialShift(20),
//	)
package builder
