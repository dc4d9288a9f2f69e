package submatrix

import "math"

// Submatrix tracks a growing/shrinking dense block of one B×B sketch row.
//
// rowPresent[i]/colPresent[j] record membership in R/C; rowSum[i] caches
// Σ_{k∈C} M[i][k] for i∈R, colSum[j] caches Σ_{k∈R} M[k][j] for j∈C, and
// total caches Σ_{i∈R,j∈C} M[i][j]. b is the row/col extent of the matrix
// this Submatrix was built against; every M passed to its methods must be
// a row-major b*b slice.
type Submatrix struct {
	b              int
	rowPresent     []bool
	colPresent     []bool
	rowSum, colSum []float64
	total          float64
	nRows, nCols   int
}

// New creates a Submatrix seeded as the single cell (seedRow, seedCol)
// with the given initial value, per the local detector's initialization
// of D submatrices at distinct diagonal seeds (k,k).
//
// Complexity: O(b) time and memory.
func New(b int, seedRow, seedCol int, value float64) *Submatrix {
	s := &Submatrix{
		b:          b,
		rowPresent: make([]bool, b),
		colPresent: make([]bool, b),
		rowSum:     make([]float64, b),
		colSum:     make([]float64, b),
	}
	s.rowPresent[seedRow] = true
	s.colPresent[seedCol] = true
	s.rowSum[seedRow] = value
	s.colSum[seedCol] = value
	s.total = value
	s.nRows = 1
	s.nCols = 1

	return s
}

// Rows returns the row indices currently in R, in ascending order.
func (s *Submatrix) Rows() []int {
	out := make([]int, 0, s.nRows)
	for i := 0; i < s.b; i++ {
		if s.rowPresent[i] {
			out = append(out, i)
		}
	}

	return out
}

// Cols returns the column indices currently in C, in ascending order.
func (s *Submatrix) Cols() []int {
	out := make([]int, 0, s.nCols)
	for j := 0; j < s.b; j++ {
		if s.colPresent[j] {
			out = append(out, j)
		}
	}

	return out
}

// Total returns the cached grand sum of the submatrix.
func (s *Submatrix) Total() float64 { return s.total }

// Density returns total / √(|R|·|C|). Undefined (NaN/Inf) when either R
// or C is empty; callers are expected to guard against that.
func (s *Submatrix) Density() float64 {
	return s.total / math.Sqrt(float64(s.nRows*s.nCols))
}

// AddRow admits row i into R with cached sum v, and updates the cached
// sum of every column already in C to include M[i][:]. Requires i ∉ R.
//
// Complexity: O(b).
func (s *Submatrix) AddRow(i int, v float64, m []float64) {
	for k := 0; k < s.b; k++ {
		if s.colPresent[k] {
			s.colSum[k] += m[i*s.b+k]
		}
	}
	s.rowPresent[i] = true
	s.rowSum[i] = v
	s.nRows++
}

// AddCol admits column j into C with cached sum v, and updates the
// cached sum of every row already in R to include M[:][j]. Requires
// j ∉ C.
//
// Complexity: O(b).
func (s *Submatrix) AddCol(j int, v float64, m []float64) {
	for k := 0; k < s.b; k++ {
		if s.rowPresent[k] {
			s.rowSum[k] += m[k*s.b+j]
		}
	}
	s.colPresent[j] = true
	s.colSum[j] = v
	s.nCols++
}

// DelRow removes row i from R and subtracts its contribution from every
// column's cached sum. Requires i ∈ R.
//
// Complexity: O(b).
func (s *Submatrix) DelRow(i int, m []float64) {
	for k := 0; k < s.b; k++ {
		if s.colPresent[k] {
			s.colSum[k] -= m[i*s.b+k]
		}
	}
	s.rowPresent[i] = false
	s.rowSum[i] = 0
	s.nRows--
}

// DelCol removes column j from C and subtracts its contribution from
// every row's cached sum. Requires j ∈ C.
//
// Complexity: O(b).
func (s *Submatrix) DelCol(j int, m []float64) {
	for k := 0; k < s.b; k++ {
		if s.rowPresent[k] {
			s.rowSum[k] -= m[k*s.b+j]
		}
	}
	s.colPresent[j] = false
	s.colSum[j] = 0
	s.nCols--
}

// addBoth admits a brand-new (i,j) pair into R and C simultaneously.
// It is NOT simply AddRow followed by AddCol: composing those generic
// operations would sweep row i's own contribution into colSum[j] and
// then sweep column j's contribution back into rowSum[i] a second time,
// double-counting the shared cell M[i][j]. Instead, every *other*
// existing row/column picks up its one contribution from the new column/
// row, and the two brand-new cached sums are written directly to their
// final values (rowVal, colVal — each already includes M[i][j] exactly
// once, computed by the caller).
func (s *Submatrix) addBoth(i, j int, rowVal, colVal float64, m []float64) {
	for k := 0; k < s.b; k++ {
		if s.colPresent[k] {
			s.colSum[k] += m[i*s.b+k]
		}
	}
	for k := 0; k < s.b; k++ {
		if s.rowPresent[k] {
			s.rowSum[k] += m[k*s.b+j]
		}
	}
	s.rowPresent[i] = true
	s.colPresent[j] = true
	s.rowSum[i] = rowVal
	s.colSum[j] = colVal
	s.nRows++
	s.nCols++
}

// CheckAndAdd evaluates whether admitting the edge (i,j) would strictly
// increase the submatrix's density and, if so, applies the structural
// change. If both i and j are already members, no structural change is
// made but the caches are bumped by 1 to reflect the unit edge the
// caller's paired sketch Insert is expected to add at (i,j); CheckAndAdd
// does not touch the sketch itself. In the detector package the Insert
// happens in LocalEdge.LearnOne; LocalEdge.ScoreOne, which calls
// CheckAndAdd, does not insert.
//
// Complexity: O(b).
func (s *Submatrix) CheckAndAdd(i, j int, m []float64) bool {
	ri := s.rowPresent[i]
	ci := s.colPresent[j]

	if ri && ci {
		s.total += 1
		s.rowSum[i] += 1
		s.colSum[j] += 1

		return false
	}

	var sRow, sCol float64
	newNRows, newNCols := s.nRows, s.nCols
	if !ri {
		for k := 0; k < s.b; k++ {
			if s.colPresent[k] {
				sRow += m[i*s.b+k]
			}
		}
		newNRows++
	}
	if !ci {
		for k := 0; k < s.b; k++ {
			if s.rowPresent[k] {
				sCol += m[k*s.b+j]
			}
		}
		newNCols++
	}

	var totalPrime float64
	if !ri && !ci {
		totalPrime = s.total + sRow + sCol + m[i*s.b+j]
	} else {
		totalPrime = s.total + sRow + sCol
	}

	if s.Density() < totalPrime/math.Sqrt(float64(newNRows*newNCols)) {
		switch {
		case !ri && !ci:
			s.addBoth(i, j, sRow+m[i*s.b+j], sCol+m[i*s.b+j], m)
		case !ri:
			s.AddRow(i, sRow, m)
		case !ci:
			s.AddCol(j, sCol, m)
		}
		s.total = totalPrime

		return true
	}

	return false
}

// CheckAndDel considers removing the minimum-sum row and the minimum-sum
// column (each only when the corresponding set has more than one member)
// and deletes at most one of them: a candidate is removed only if the
// current density strictly exceeds the density left after removing it AND
// the other candidate's resulting density is strictly lower than this
// one's. Ties (with the current density or between candidates) refuse to
// delete.
//
// Complexity: O(b).
func (s *Submatrix) CheckAndDel(m []float64) bool {
	minRowIdx, minRowVal := -1, math.Inf(1)
	if s.nRows > 1 {
		for k := 0; k < s.b; k++ {
			if s.rowPresent[k] && s.rowSum[k] < minRowVal {
				minRowIdx, minRowVal = k, s.rowSum[k]
			}
		}
	}

	minColIdx, minColVal := -1, math.Inf(1)
	if s.nCols > 1 {
		for k := 0; k < s.b; k++ {
			if s.colPresent[k] && s.colSum[k] < minColVal {
				minColIdx, minColVal = k, s.colSum[k]
			}
		}
	}

	rowDelDensity := math.Inf(1)
	if minRowIdx != -1 {
		rowDelDensity = (s.total - minRowVal) / math.Sqrt(float64((s.nRows-1)*s.nCols))
	}
	colDelDensity := math.Inf(1)
	if minColIdx != -1 {
		colDelDensity = (s.total - minColVal) / math.Sqrt(float64(s.nRows*(s.nCols-1)))
	}

	cur := s.Density()
	switch {
	case cur > rowDelDensity && colDelDensity < rowDelDensity:
		s.DelRow(minRowIdx, m)
		s.total -= minRowVal

		return true
	case cur > colDelDensity && rowDelDensity < colDelDensity:
		s.DelCol(minColIdx, m)
		s.total -= minColVal

		return true
	}

	return false
}

// Decay multiplies total and every cached row/column sum by gamma. The
// caller must also decay the underlying matrix M by the same gamma (see
// sketch.Sketch.Decay) so the caches stay consistent with it.
//
// Complexity: O(b).
func (s *Submatrix) Decay(gamma float64) {
	s.total *= gamma
	for k := 0; k < s.b; k++ {
		if s.rowPresent[k] {
			s.rowSum[k] *= gamma
		}
		if s.colPresent[k] {
			s.colSum[k] *= gamma
		}
	}
}

// Likelihood returns the mean of the row-i and column-j neighborhood
// cells within the tracked submatrix: how consistent the query (i,j) is
// with this submatrix's row/column profile. Returns 0 when both the row
// and column neighborhoods are empty.
//
// Complexity: O(b).
func (s *Submatrix) Likelihood(i, j int, m []float64) float64 {
	var score float64
	for k := 0; k < s.b; k++ {
		if s.rowPresent[k] {
			score += m[k*s.b+j]
		}
	}
	for k := 0; k < s.b; k++ {
		if s.colPresent[k] {
			score += m[i*s.b+k]
		}
	}

	ctr := s.nRows + s.nCols
	if ctr > 0 && s.rowPresent[i] && s.colPresent[j] {
		score -= m[i*s.b+j]
		ctr--
	}

	if ctr <= 0 {
		return 0
	}

	return score / float64(ctr)
}
