package density

import "sort"

// TopKDensity runs GlobalDensity seeded at each of the k highest-valued
// cells of the b×b row-major matrix m (ties broken by the cell's
// original row-major position, i.e. a stable sort), and returns the
// best density found across all k seeds. Callers must supply k; there
// is no built-in default.
//
// Complexity: O(b^2 log b) for the sort plus O(k*b^2) for the seeded
// greedy grows.
func TopKDensity(m []float64, b, k int) float64 {
	type cell struct {
		idx int
		val float64
	}

	cells := make([]cell, len(m))
	for idx, v := range m {
		cells[idx] = cell{idx: idx, val: v}
	}
	sort.SliceStable(cells, func(a, bIdx int) bool {
		return cells[a].val > cells[bIdx].val
	})

	if k > len(cells) {
		k = len(cells)
	}

	var best float64
	for n := 0; n < k; n++ {
		s := cells[n].idx / b
		d := cells[n].idx % b
		if g := GlobalDensity(m, b, s, d); n == 0 || g > best {
			best = g
		}
	}

	return best
}
