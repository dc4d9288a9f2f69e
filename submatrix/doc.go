// Package submatrix maintains a single growing/shrinking dense submatrix
// of one sketch row: a subset R of row indices and C of column indices,
// together with cached row sums, column sums, and a grand total that stay
// consistent with the underlying B×B matrix across add/delete/decay calls.
//
// This is the hardest component of the engine. Submatrix holds no
// reference to the matrix it tracks — every operation takes the current
// M []float64 (row-major, B×B) as an explicit parameter, so the caller
// (typically the sketch package, via Sketch.Row) controls the matrix's
// lifetime and any mutation ordering. Mutating M between calls is only
// safe if the caller subsequently resolves the Submatrix by calling
// CheckAndAdd/CheckAndDel until CheckAndDel returns false, per the cache-
// consistency invariant (I1 in the design notes).
//
// R and C are represented as dense presence []bool arrays of length B
// paired with dense []float64 cached-sum arrays, rather than maps: for
// B in the low thousands this is simpler and faster than a hash map, per
// the module's design notes on set representation.
package submatrix
