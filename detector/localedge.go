package detector

import (
	"log"

	"github.com/frankiz22/anograph/sketch"
	"github.com/frankiz22/anograph/submatrix"
)

// LocalEdge incrementally maintains D densest submatrices per sketch
// row and scores an incoming edge by the summed likelihood of the
// query against each row's D submatrices, taking the minimum across
// rows.
type LocalEdge struct {
	h        *sketch.Sketch
	decay    float64
	lastTime int64
	densest  [][]*submatrix.Submatrix // densest[i][k], k in [0,D)
	verbose  bool
}

// NewLocalEdge constructs a LocalEdge detector with r sketch rows, B
// buckets per axis, a temporal decay factor, and d maintained densest
// submatrices per row, each seeded at the diagonal cell (k,k).
func NewLocalEdge(rows, buckets int, decay float64, d int, opts ...Option) (*LocalEdge, error) {
	if rows <= 0 || buckets <= 0 || d <= 0 {
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

	densest := make([][]*submatrix.Submatrix, rows)
	for i := range densest {
		row := make([]*submatrix.Submatrix, d)
		for k := 0; k < d; k++ {
			row[k] = submatrix.New(buckets, k, k, 0)
		}
		densest[i] = row
	}

	return &LocalEdge{h: h, decay: decay, densest: densest, verbose: cfg.verbose}, nil
}

// LearnOne decays the sketch (and every maintained submatrix in
// lockstep, to keep cached sums consistent) on a strictly newer
// timestamp, then inserts the edge with unit weight. The submatrices
// themselves are only grown or shrunk during ScoreOne.
func (d *LocalEdge) LearnOne(e Edge) {
	if e.Time > d.lastTime {
		_ = d.h.Decay(d.decay)
		for _, row := range d.densest {
			for _, s := range row {
				s.Decay(d.decay)
			}
		}
		if d.verbose {
			log.Printf("detector: LocalEdge decayed sketch and %d submatrices by %.3g at time %d", len(d.densest)*len(d.densest[0]), d.decay, e.Time)
		}
	}
	d.lastTime = e.Time
	d.h.Insert(e.Src, e.Dst, 1)
}

// ScoreOne updates each row's D submatrices toward (hash(src,i),
// hash(dst,i)) and returns the minimum, across rows, of the summed
// likelihood of the query against those submatrices.
func (d *LocalEdge) ScoreOne(e Edge) float64 {
	var min float64
	for i := 0; i < d.h.Rows(); i++ {
		m := d.h.Row(i)
		u, v := d.h.Hash(e.Src, i), d.h.Hash(e.Dst, i)

		var rowScore float64
		for k, s := range d.densest[i] {
			if s.CheckAndAdd(int(u), int(v), m) {
				if d.verbose {
					log.Printf("detector: LocalEdge row %d slot %d grew to admit (%d,%d)", i, k, u, v)
				}
				shrinks := 0
				for s.CheckAndDel(m) {
					shrinks++
				}
				if d.verbose && shrinks > 0 {
					log.Printf("detector: LocalEdge row %d slot %d shrank %d time(s) after growth", i, k, shrinks)
				}
			}
			rowScore += s.Likelihood(int(u), int(v), m)
		}

		if i == 0 || rowScore < min {
			min = rowScore
		}
	}

	return min
}
