// Package anograph is a streaming anomaly-scoring engine for dynamic
// graphs, built on a Count-Min-Sketch-of-matrices (CMSM) and three
// greedy dense-subgraph density estimators.
//
// What is anograph?
//
//	A compact library that turns a stream or snapshot of timestamped
//	edges into anomaly scores, without ever materializing the full
//	graph:
//
//	  - hashfam  — affine hash families shared by every sketch row
//	  - sketch   — the CMSM itself: r rows of B x B count matrices
//	  - submatrix — a density-preserving tracked dense block, with
//	    cached row/col sums for O(B) incremental growth and shrink
//	  - density  — pure greedy kernels (global grow, peel, top-K grow)
//	    that turn a sketch row into a density score
//	  - detector — the user-facing façades: GlobalEdge and LocalEdge
//	    score one edge at a time from a stream, BatchGraph scores a
//	    whole edge-list snapshot
//
// Why choose anograph?
//
//   - Streaming-first    — edges are learned and scored incrementally,
//     with exponential decay so stale structure fades out
//   - Bounded memory     — fixed r x B x B sketch regardless of graph size
//   - Pure Go            — no cgo, no external services
//
// Under the hood, everything is organized under five subpackages:
//
//	hashfam/   — deterministic or random affine hash coefficients
//	sketch/    — the Count-Min-Sketch-of-matrices
//	submatrix/ — density-preserving dense-block tracking
//	density/   — GlobalDensity, PeelDensity, TopKDensity kernels
//	detector/  — GlobalEdge, LocalEdge, BatchGraph
//
// Runnable examples are the Example functions in each subpackage's
// example_test.go.
package anograph
