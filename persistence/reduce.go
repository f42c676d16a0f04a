package persistence

// reduce performs the standard left-to-right column reduction in place.
//
// For each column j: while an earlier column owns j's pivot row, XOR
// that column into j and recompute the pivot; stop when the pivot is
// unique among processed columns or the column empties. The pivot-owner
// table makes each lookup O(1), so the cost is the XOR work itself.
//
// The loop carries a strict left-to-right data dependency — column j's
// fate depends on the already-reduced state of every column before it —
// so the reduction is inherently sequential.
//
// Complexity: O(n³) worst case, near-linear on sparse inputs.
func (m *boundaryMatrix) reduce() {
	n := len(m.cols)
	owner := make([]int, n) // pivot row → owning column
	for i := range owner {
		owner[i] = -1
	}
	for j := 0; j < n; j++ {
		for {
			low := m.low(j)
			if low < 0 {
				break // column became zero: j creates a feature
			}
			k := owner[low]
			if k < 0 {
				owner[low] = j // pivot is unique: j kills feature low

				break
			}
			m.cols[j] = xorColumns(m.cols[j], m.cols[k])
		}
	}
}
