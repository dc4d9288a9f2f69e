package sketch

import "github.com/frankiz22/anograph/hashfam"

// Sketch is a Count-Min-Sketch-of-matrices: r independent B×B float64
// count matrices sharing one hashfam.Family.
type Sketch struct {
	rows, buckets int
	count         []float64 // len == rows*buckets*buckets, row i at [i*b*b, (i+1)*b*b)
	hashes        *hashfam.Family
}

// New constructs an empty Sketch with the given row and bucket counts.
// Hash coefficients are configured via hashfam.Option (WithSeed/WithRand).
//
// Complexity: O(rows*buckets^2) time and memory for the zeroed buffer.
func New(rows, buckets int, opts ...hashfam.Option) (*Sketch, error) {
	if rows <= 0 {
		return nil, ErrInvalidRows
	}
	if buckets <= 0 {
		return nil, ErrInvalidBuckets
	}

	hashes, err := hashfam.New(rows, buckets, opts...)
	if err != nil {
		return nil, err
	}

	return &Sketch{
		rows:    rows,
		buckets: buckets,
		count:   make([]float64, rows*buckets*buckets),
		hashes:  hashes,
	}, nil
}

// Rows returns the number of sketch rows r.
func (s *Sketch) Rows() int { return s.rows }

// Buckets returns the per-axis bucket count B.
func (s *Sketch) Buckets() int { return s.buckets }

// Hash exposes the i-th row's hash function, h_i(x), for callers that
// need to locate the bucket pair for a node (detectors, density kernels).
func (s *Sketch) Hash(x uint64, row int) uint64 { return s.hashes.Hash(x, row) }

// offset computes the flat index of cell (u,v) within row i.
func (s *Sketch) offset(i int, u, v uint64) int {
	bb := s.buckets * s.buckets
	return i*bb + int(u)*s.buckets + int(v)
}

// Insert adds weight w to cell (h_i(src), h_i(dst)) of every row i.
//
// Complexity: O(r).
func (s *Sketch) Insert(src, dst uint64, w float64) {
	for i := 0; i < s.rows; i++ {
		u, v := s.hashes.Hash(src, i), s.hashes.Hash(dst, i)
		s.count[s.offset(i, u, v)] += w
	}
}

// Remove subtracts weight w from cell (h_i(src), h_i(dst)) of every row i.
// Provided for test scaffolding and symmetry with Insert.
//
// Complexity: O(r).
func (s *Sketch) Remove(src, dst uint64, w float64) {
	for i := 0; i < s.rows; i++ {
		u, v := s.hashes.Hash(src, i), s.hashes.Hash(dst, i)
		s.count[s.offset(i, u, v)] -= w
	}
}

// At returns the raw count at row i, cell (u,v).
func (s *Sketch) At(i int, u, v uint64) float64 {
	return s.count[s.offset(i, u, v)]
}

// PointQuery returns min_i count[i][h_i(src)][h_i(dst)], the standard
// Count-Min point estimate for the edge weight between src and dst.
//
// Complexity: O(r).
func (s *Sketch) PointQuery(src, dst uint64) float64 {
	min := s.At(0, s.hashes.Hash(src, 0), s.hashes.Hash(dst, 0))
	for i := 1; i < s.rows; i++ {
		v := s.At(i, s.hashes.Hash(src, i), s.hashes.Hash(dst, i))
		if v < min {
			min = v
		}
	}

	return min
}

// Decay multiplies every cell by gamma in (0,1]. Callers that maintain
// per-row submatrices (see the submatrix package) must decay those in
// lockstep to keep cached sums consistent with the decayed matrix.
//
// Complexity: O(r*B^2).
func (s *Sketch) Decay(gamma float64) error {
	if gamma <= 0 || gamma > 1 {
		return ErrInvalidDecay
	}
	for idx := range s.count {
		s.count[idx] *= gamma
	}

	return nil
}

// Clear zeroes every cell in every row.
//
// Complexity: O(r*B^2).
func (s *Sketch) Clear() {
	for idx := range s.count {
		s.count[idx] = 0
	}
}

// Row returns a slice aliasing row i's B×B block of the backing buffer,
// row-major (cell (u,v) at offset u*B+v). The returned slice is a view,
// not a copy: density kernels and submatrices read the sketch only
// through this explicit parameter, never by holding a reference to the
// Sketch itself, per the module's resource-ownership model.
func (s *Sketch) Row(i int) []float64 {
	bb := s.buckets * s.buckets

	return s.count[i*bb : (i+1)*bb]
}
