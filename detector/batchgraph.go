package detector

import (
	"log"

	"github.com/frankiz22/anograph/density"
	"github.com/frankiz22/anograph/sketch"
)

// BatchGraph scores a whole edge-list snapshot by re-ingesting it into
// a freshly cleared sketch and taking the minimum, across rows, of
// either the greedy-peel density or a top-K seeded grow density.
type BatchGraph struct {
	h       *sketch.Sketch
	verbose bool
}

// NewBatchGraph constructs a BatchGraph detector with r sketch rows and
// B buckets per axis.
func NewBatchGraph(rows, buckets int, opts ...Option) (*BatchGraph, error) {
	if rows <= 0 || buckets <= 0 {
		return nil, ErrBadDim
	}

	cfg := newConfig(opts)
	h, err := sketch.New(rows, buckets, cfg.hash...)
	if err != nil {
		return nil, err
	}

	return &BatchGraph{h: h, verbose: cfg.verbose}, nil
}

// LearnOne is a no-op; BatchGraph carries no state across calls beyond
// what ScoreOne rebuilds from scratch each time, per the contract.
func (d *BatchGraph) LearnOne(BatchEdges) {}

// ScoreOne clears the sketch, re-inserts every edge in b, and returns
// the minimum row score under the requested method. MethodTopK requires
// a single k argument; any other count, or an unrecognized method, is
// an ErrInvalidArgument failure.
func (d *BatchGraph) ScoreOne(b BatchEdges, method Method, k ...int) (float64, error) {
	d.h.Clear()
	for p := range b.Src {
		d.h.Insert(b.Src[p], b.Dst[p], 1)
	}
	if d.verbose {
		log.Printf("detector: BatchGraph rebuilt sketch from %d edges", len(b.Src))
	}

	buckets := d.h.Buckets()

	switch method {
	case MethodNormal:
		min := density.PeelDensity(d.h.Row(0), buckets)
		for i := 1; i < d.h.Rows(); i++ {
			if c := density.PeelDensity(d.h.Row(i), buckets); c < min {
				min = c
			}
		}

		return min, nil

	case MethodTopK:
		if len(k) != 1 {
			return 0, ErrMissingK
		}

		min := density.TopKDensity(d.h.Row(0), buckets, k[0])
		for i := 1; i < d.h.Rows(); i++ {
			if c := density.TopKDensity(d.h.Row(i), buckets, k[0]); c < min {
				min = c
			}
		}

		return min, nil

	default:
		return 0, ErrUnknownMethod
	}
}
