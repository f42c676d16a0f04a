package persistence

import (
	"strconv"

	"github.com/katalvlaran/homotopia/filtration"
	"github.com/katalvlaran/homotopia/simplex"
)

// boundaryMatrix is the sparse GF(2) boundary matrix of a filtration,
// in column-major form: cols[j] holds the sorted filtration positions
// of simplex j's codimension-1 faces. It is transient, function-local
// state scoped to a single computation — never retained across calls.
type boundaryMatrix struct {
	// cols[j] is the sorted row-index set of column j.
	cols [][]int

	// dims[j] is the dimension of the simplex at position j.
	dims []int

	// scales[j] is the birth scale of the simplex at position j.
	scales []float64
}

// buildBoundaryMatrix indexes simplices by filtration position and
// records, for each simplex, the positions of its boundary faces.
// The filtration must already satisfy the validity invariant; a face
// without a position yields ErrMissingFace.
//
// Complexity: O(Σ k_i²) over simplex sizes. Memory: O(total faces).
func buildBoundaryMatrix(f filtration.Filtration) (*boundaryMatrix, error) {
	n := len(f)
	m := &boundaryMatrix{
		cols:   make([][]int, n),
		dims:   make([]int, n),
		scales: make([]float64, n),
	}
	position := make(map[string]int, n)
	for j, step := range f {
		position[simplexKey(step.Simplex)] = j
		m.dims[j] = step.Simplex.Dimension()
		m.scales[j] = step.Scale
	}
	for j, step := range f {
		faces := step.Simplex.Faces()
		if faces == nil {
			continue // vertices have empty columns
		}
		col := make([]int, 0, len(faces))
		for _, face := range faces {
			i, ok := position[simplexKey(face)]
			if !ok {
				return nil, ErrMissingFace
			}
			col = append(col, i)
		}
		// Faces of a canonical simplex map to distinct positions;
		// sort to keep the column's low() at the end.
		insertionSort(col)
		m.cols[j] = col
	}

	return m, nil
}

// low returns the largest row index of column j, or -1 for a zero
// column.
func (m *boundaryMatrix) low(j int) int {
	col := m.cols[j]
	if len(col) == 0 {
		return -1
	}

	return col[len(col)-1]
}

// rank counts non-zero columns. Meaningful after reduce.
func (m *boundaryMatrix) rank() int {
	r := 0
	for j := range m.cols {
		if len(m.cols[j]) > 0 {
			r++
		}
	}

	return r
}

// xorColumns returns the symmetric difference of two sorted row-index
// sets — entrywise GF(2) addition.
func xorColumns(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // equal entries cancel mod 2
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// insertionSort sorts the short face-position slices in place; columns
// start at k+1 entries, so this beats sort.Ints on the hot path.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// simplexKey renders a canonical simplex as a compact map key.
func simplexKey(s simplex.Simplex) string {
	buf := make([]byte, 0, 4*len(s))
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}
