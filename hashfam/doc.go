// Package hashfam provides a pairwise-independent affine hash family used
// to project arbitrary node identifiers into the fixed-size bucket space
// that backs a Count-Min-Sketch-of-matrices.
//
// A Family holds r independent affine hash functions
//
//	h_i(x) = (x*a_i + b_i) mod B
//
// with a_i drawn from [1,B) (never zero, so each h_i behaves like a
// permutation on residues) and b_i from [0,B). Coefficients are fixed at
// construction; Family carries no mutable state afterward and is safe for
// concurrent read-only use across goroutines (it never changes after
// New returns).
//
// Errors:
//
//	ErrInvalidRows    - rows <= 0.
//	ErrInvalidBuckets - buckets <= 0.
package hashfam
