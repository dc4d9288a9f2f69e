package hashfam

import "errors"

// ErrInvalidRows indicates that a non-positive row count was requested.
var ErrInvalidRows = errors.New("hashfam: rows must be > 0")

// ErrInvalidBuckets indicates that a non-positive bucket count was requested.
var ErrInvalidBuckets = errors.New("hashfam: buckets must be > 0")

// ErrCoefficientLength indicates WithCoefficients was given a or b slices
// whose length does not match the requested row count.
var ErrCoefficientLength = errors.New("hashfam: coefficient slice length must equal rows")
