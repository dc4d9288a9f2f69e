package density

import "math"

// PeelDensity computes the density of the densest subgraph of the b×b
// row-major matrix m by greedy peeling: starting from the whole matrix,
// repeatedly remove whichever currently-active row or column has the
// smaller marginal sum, tracking the best density seen along the way.
//
// The very first density value uses total/sqrt(marked_rows*marked_rows)
// rather than total/sqrt(marked_rows*marked_cols); both counts equal b
// at that point so the two are numerically identical, but the formula
// is kept literal rather than normalized, since later iterations use
// the mixed row/col form and collapsing them into one expression would
// obscure that the initial term is a distinct case.
//
// Steps:
//  1. Mark every row and column active; seed row_sum/col_sum from m and
//     total from their sum.
//  2. For up to 2*b iterations, find the active row and active column
//     with the smallest marginal sum, and peel whichever is smaller
//     (ties favor the row), subtracting its contribution over the
//     still-active opposite axis from total and from the opposite
//     axis's sums, then set its own sum to +Inf so future scans skip
//     it.
//  3. Stop early once either axis is fully peeled. Track the running
//     maximum of total/sqrt(marked_rows*marked_cols).
//
// Complexity: O(b^2) time, O(b) memory.
func PeelDensity(m []float64, b int) float64 {
	rowFlag := make([]bool, b)
	colFlag := make([]bool, b)
	rowSum := make([]float64, b)
	colSum := make([]float64, b)

	var total float64
	for i := 0; i < b; i++ {
		rowFlag[i] = true
		colFlag[i] = true
		var s float64
		for j := 0; j < b; j++ {
			s += m[i*b+j]
		}
		rowSum[i] = s
		total += s
	}
	for j := 0; j < b; j++ {
		var s float64
		for i := 0; i < b; i++ {
			s += m[i*b+j]
		}
		colSum[j] = s
	}

	markedRows, markedCols := b, b
	best := total / math.Sqrt(float64(markedRows*markedRows))

	for iter := 0; iter < 2*b; iter++ {
		minRow, minRowVal := -1, math.Inf(1)
		for i := 0; i < b; i++ {
			if rowFlag[i] && rowSum[i] < minRowVal {
				minRow, minRowVal = i, rowSum[i]
			}
		}
		minCol, minColVal := -1, math.Inf(1)
		for j := 0; j < b; j++ {
			if colFlag[j] && colSum[j] < minColVal {
				minCol, minColVal = j, colSum[j]
			}
		}

		if minRow == -1 && minCol == -1 {
			break
		}

		if minRow != -1 && (minCol == -1 || rowSum[minRow] <= colSum[minCol]) {
			var dec float64
			for k := 0; k < b; k++ {
				if colFlag[k] {
					dec += m[minRow*b+k]
					colSum[k] -= m[minRow*b+k]
				}
			}
			total -= dec
			rowFlag[minRow] = false
			rowSum[minRow] = math.Inf(1)
			markedRows--
		} else {
			var dec float64
			for k := 0; k < b; k++ {
				if rowFlag[k] {
					dec += m[k*b+minCol]
					rowSum[k] -= m[k*b+minCol]
				}
			}
			total -= dec
			colFlag[minCol] = false
			colSum[minCol] = math.Inf(1)
			markedCols--
		}

		if markedRows == 0 || markedCols == 0 {
			break
		}

		density := total / math.Sqrt(float64(markedRows*markedCols))
		if density > best {
			best = density
		}
	}

	return best
}
