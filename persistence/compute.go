package persistence

import (
	"math"

	"github.com/katalvlaran/homotopia/diagram"
	"github.com/katalvlaran/homotopia/filtration"
)

// Compute turns a filtration into persistence diagrams, one per
// homology dimension 0..f.MaxDimension().
//
// The filtration is validated first: either a complete, self-consistent
// set of diagrams is produced, or the structured validation failure is
// returned before reduction begins — never a partial result. The
// computation is deterministic and side-effect-free; all intermediate
// state (the boundary matrix and its reduced form) is function-local.
//
// Errors: ErrEmptyFiltration, filtration.ErrInvalidFiltration (as a
// *filtration.ValidationError).
//
// Complexity: O(n³) worst-case reduction over n steps; the filtration
// build usually dominates in practice.
func Compute(f filtration.Filtration) ([]diagram.Diagram, error) {
	if len(f) == 0 {
		return nil, ErrEmptyFiltration
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	m, err := buildBoundaryMatrix(f)
	if err != nil {
		return nil, err
	}
	m.reduce()

	return m.extractPairs(f.MaxDimension()), nil
}

// MatrixRank reduces f's boundary matrix and counts its non-zero
// columns.
//
// Errors: ErrEmptyFiltration, filtration.ErrInvalidFiltration.
// Complexity: as Compute.
func MatrixRank(f filtration.Filtration) (int, error) {
	if len(f) == 0 {
		return 0, ErrEmptyFiltration
	}
	if err := f.Validate(); err != nil {
		return 0, err
	}
	m, err := buildBoundaryMatrix(f)
	if err != nil {
		return 0, err
	}
	m.reduce()

	return m.rank(), nil
}

// extractPairs reads the reduced matrix into diagrams.
//
// Every column j with a surviving pivot row i emits the finite pair
// (scale[i], scale[j]) in the dimension of simplex i. Every position
// that is neither a pivot row of a later column nor a non-zero column
// itself is an unpaired feature: (its own scale, never) in its own
// dimension.
func (m *boundaryMatrix) extractPairs(maxDimension int) []diagram.Diagram {
	n := len(m.cols)
	diagrams := make([]diagram.Diagram, maxDimension+1)
	for d := range diagrams {
		diagrams[d].Dimension = d
	}
	paired := make([]bool, n)
	for j := 0; j < n; j++ {
		i := m.low(j)
		if i < 0 {
			continue
		}
		paired[i] = true
		paired[j] = true
		d := m.dims[i]
		diagrams[d].Pairs = append(diagrams[d].Pairs, diagram.Pair{
			Birth: m.scales[i],
			Death: m.scales[j],
		})
	}
	for p := 0; p < n; p++ {
		if paired[p] {
			continue
		}
		d := m.dims[p]
		diagrams[d].Pairs = append(diagrams[d].Pairs, diagram.Pair{
			Birth: m.scales[p],
			Death: math.Inf(1),
		})
	}

	return diagrams
}
