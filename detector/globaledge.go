package detector

import (
	"log"

	"github.com/frankiz22/anograph/density"
	"github.com/frankiz22/anograph/sketch"
)

// GlobalEdge scores a single incoming edge by the density of the
// densest subgraph containing it in each sketch row, taking the
// minimum across rows.
type GlobalEdge struct {
	h        *sketch.Sketch
	decay    float64
	lastTime int64
	verbose  bool
}

// NewGlobalEdge constructs a GlobalEdge detector with r sketch rows, B
// buckets per axis, and a temporal decay factor applied whenever a
// strictly newer timestamp is observed.
func NewGlobalEdge(rows, buckets int, decay float64, opts ...Option) (*GlobalEdge, error) {
	if rows <= 0 || buckets <= 0 {
		return nil, ErrBadDim
	}
	if decay <= 0 || decay > 1 {
		return nil, ErrBadDecay
	}

	cfg := newConfig(opts)
	h, err := sketch.New(rows, buckets, cfg.hash...)
	if err != nil {
		return nil, err
	}

	return &GlobalEdge{h: h, decay: decay, verbose: cfg.verbose}, nil
}

// LearnOne decays the sketch on a strictly newer timestamp, then
// inserts the edge with unit weight.
func (d *GlobalEdge) LearnOne(e Edge) {
	if e.Time > d.lastTime {
		_ = d.h.Decay(d.decay)
		if d.verbose {
			log.Printf("detector: GlobalEdge decayed sketch by %.3g at time %d", d.decay, e.Time)
		}
	}
	d.lastTime = e.Time
	d.h.Insert(e.Src, e.Dst, 1)
}

// ScoreOne returns min_i global_density(H.count[i], hash(src,i), hash(dst,i)).
func (d *GlobalEdge) ScoreOne(e Edge) float64 {
	b := d.h.Buckets()
	min := density.GlobalDensity(d.h.Row(0), b, int(d.h.Hash(e.Src, 0)), int(d.h.Hash(e.Dst, 0)))
	for i := 1; i < d.h.Rows(); i++ {
		c := density.GlobalDensity(d.h.Row(i), b, int(d.h.Hash(e.Src, i)), int(d.h.Hash(e.Dst, i)))
		if c < min {
			min = c
		}
	}

	return min
}
