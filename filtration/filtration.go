package filtration

import (
	"sort"

	"github.com/katalvlaran/homotopia/simplex"
)

// ComplexAt returns the simplicial complex alive at scale epsilon:
// every simplex born at or before epsilon, grouped by dimension.
//
// Pure function: repeated calls with the same epsilon yield identical
// results and never mutate f.
//
// Complexity: O(len(f)).
func (f Filtration) ComplexAt(epsilon float64) map[int][]simplex.Simplex {
	out := make(map[int][]simplex.Simplex)
	for _, step := range f {
		if step.Scale <= epsilon {
			d := step.Simplex.Dimension()
			out[d] = append(out[d], step.Simplex)
		}
	}

	return out
}

// CriticalValues returns the sorted set of distinct birth scales —
// the only scales at which the complex actually changes.
//
// Complexity: O(n log n).
func (f Filtration) CriticalValues() []float64 {
	seen := make(map[float64]struct{}, len(f))
	for _, step := range f {
		seen[step.Scale] = struct{}{}
	}
	out := make([]float64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Float64s(out)

	return out
}

// MaxDimension returns the largest simplex dimension present, or -1
// for an empty filtration.
//
// Complexity: O(n).
func (f Filtration) MaxDimension() int {
	maxDim := -1
	for _, step := range f {
		if d := step.Simplex.Dimension(); d > maxDim {
			maxDim = d
		}
	}

	return maxDim
}

// Validate checks the invariants the persistence engine relies on:
//
//	(a) the sequence is non-empty;
//	(b) every simplex is canonical (strictly increasing vertices) and
//	    appears exactly once;
//	(c) scales are non-decreasing along the sequence;
//	(d) every codimension-1 face of every simplex appears at an earlier
//	    position (hence, by (c), at an equal-or-earlier scale).
//
// An empty sequence returns ErrEmptyFiltration. Any other failure
// returns a *ValidationError naming the first offending step and its
// missing or out-of-order face; errors.Is against ErrInvalidFiltration
// matches. A filtration failing Validate must never be fed into the
// reduction: a duplicate step, in particular, would silently shadow
// its earlier copy in the boundary position table.
//
// Complexity: O(Σ k_i²) over simplex sizes.
func (f Filtration) Validate() error {
	if len(f) == 0 {
		return ErrEmptyFiltration
	}
	seen := make(map[string]struct{}, len(f))
	prev := 0.0
	for i, step := range f {
		if step.Simplex.Dimension() < 0 {
			return &ValidationError{Index: i, Step: step, Reason: "empty simplex in filtration"}
		}
		if !canonical(step.Simplex) {
			return &ValidationError{Index: i, Step: step, Reason: "simplex not in canonical form"}
		}
		if i > 0 && step.Scale < prev {
			return &ValidationError{Index: i, Step: step, Reason: "scale decreased"}
		}
		prev = step.Scale
		if _, ok := seen[key(step.Simplex)]; ok {
			return &ValidationError{Index: i, Step: step, Reason: "duplicate simplex"}
		}
		for _, face := range step.Simplex.Faces() {
			if _, ok := seen[key(face)]; !ok {
				return &ValidationError{
					Index:  i,
					Step:   step,
					Face:   face,
					Reason: "face missing or born after its coface",
				}
			}
		}
		seen[key(step.Simplex)] = struct{}{}
	}

	return nil
}

// canonical reports whether the vertex sequence is strictly increasing.
func canonical(s simplex.Simplex) bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}

	return true
}
