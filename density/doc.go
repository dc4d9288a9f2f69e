// Package density implements the three greedy dense-subgraph estimators
// that run over one B×B sketch row: a single-seed grow (GlobalDensity),
// a whole-row greedy peel (PeelDensity), and a top-K seeded grow
// (TopKDensity). All three operate on a row-major B×B slice supplied by
// the caller. GlobalDensity and PeelDensity allocate O(B) auxiliary
// state; TopKDensity also builds a sorted list of all B² cells.
//
// These kernels are pure functions, not types: there is no state to
// carry between calls, and callers are free to run them concurrently
// over independent sketch rows.
package density
