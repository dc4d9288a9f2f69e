// Package sketch implements the Count-Min-Sketch-of-matrices (CMSM): r
// independent B×B count matrices, each indexed by a pair of hashfam.Family
// buckets, that together approximate the decayed edge-weight history of a
// directed graph stream.
//
// A Sketch owns one contiguous []float64 buffer of length r*B*B, with row i
// occupying the half-open slice [i*B*B, (i+1)*B*B); within a row, cell
// (u,v) lives at offset u*B+v. A contiguous buffer keeps Decay/Clear
// single vectorizable passes, rather than r*B separate row allocations.
//
// Sketch is not safe for concurrent mutation: it is owned exclusively by
// one detector instance, per the single-threaded cooperative scheduling
// model of this module (see the detector package).
package sketch
