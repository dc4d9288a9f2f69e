// Package detector wires hashfam, sketch, submatrix, and density behind
// the two-method learn_one/score_one contract: GlobalEdge scores a
// single edge via a fresh greedy grow per row, LocalEdge maintains D
// densest submatrices per row and scores by neighborhood likelihood,
// and BatchGraph scores a whole edge batch by greedy peeling (or a
// top-K seeded variant) after re-ingesting it into a cleared sketch.
//
// A dynamically-typed "global"/"local" detector tag and a string-typed
// scoring method are common in reference implementations of this kind
// of engine; here those become two distinct concrete types and a Method
// enum, so a caller's choice is a compile-time type or a constant rather
// than a string compared at runtime.
//
// All three constructors accept the same functional Option: WithHash
// forwards coefficient/RNG injection down to the underlying sketch, and
// WithVerbose turns on stdlib log.Printf diagnostics for decay events
// (GlobalEdge, LocalEdge) and submatrix growth/shrink churn (LocalEdge).
package detector
