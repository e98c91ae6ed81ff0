// Package graphio reads graphs into core.Graph and writes all-pairs reports.
//
// Readers:
//
//   - ReadEdgeList: "V E" followed by E triples "u v w", whitespace separated.
//   - LoadHCL / ParseHCL: a single labelled `graph` block with `vertices` and
//     repeated `edge { from, to, weight }` blocks.
//
// Both readers share one rejection policy: an edge naming an unknown vertex
// or carrying a weight beyond core.MaxAbsWeight is logged at Warn, counted in
// Stats.Skipped, and dropped; the rest of the input is still read. Input that
// cannot be tokenized or decoded is ErrMalformedInput.
//
// Writer:
//
//   - WriteReport: the distance matrix (INF for unreachable) and, optionally,
//     every reachable path with its cost.
package graphio
