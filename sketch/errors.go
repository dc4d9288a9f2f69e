package sketch

import "errors"

// ErrInvalidRows indicates that a non-positive row count was requested.
var ErrInvalidRows = errors.New("sketch: rows must be > 0")

// ErrInvalidBuckets indicates that a non-positive bucket count was requested.
var ErrInvalidBuckets = errors.New("sketch: buckets must be > 0")

// ErrInvalidDecay indicates a decay factor outside the half-open
// interval (0,1].
var ErrInvalidDecay = errors.New("sketch: decay factor must be in (0,1]")
