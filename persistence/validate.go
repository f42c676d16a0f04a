package persistence

import (
	"fmt"

	"github.com/katalvlaran/homotopia/filtration"
)

// ValidateBoundaryProperty independently re-derives the double boundary
// of every simplex in f and checks that each resulting face's total
// incidence count is even — the GF(2) statement of ∂∂ = 0.
//
// This is an internal consistency oracle for the whole engine, not a
// hot-path check: Compute never calls it. A violation would mean the
// face enumeration itself is broken.
//
// Errors: ErrEmptyFiltration; ErrBoundaryViolation (wrapped with the
// offending simplex and face).
//
// Complexity: O(Σ k_i³) over simplex sizes.
func ValidateBoundaryProperty(f filtration.Filtration) error {
	if len(f) == 0 {
		return ErrEmptyFiltration
	}
	for _, step := range f {
		if step.Simplex.Dimension() < 2 {
			continue // double boundary is trivially empty below dimension 2
		}
		counts := make(map[string]int)
		for _, outer := range step.Simplex.Boundary() {
			for _, inner := range outer.Face.Boundary() {
				counts[simplexKey(inner.Face)]++
			}
		}
		for face, c := range counts {
			if c%2 != 0 {
				return fmt.Errorf("simplex %v: face [%s] appears %d times in ∂∂: %w",
					step.Simplex, face, c, ErrBoundaryViolation)
			}
		}
	}

	return nil
}
