package diagram

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one diagram. Total, Max, Mean, and Entropy are
// computed over finite, non-zero-persistence pairs only: zero-length
// features (birth == death) and never-dying features are excluded to
// avoid degenerate log(0) and undefined-length cases.
type Stats struct {
	// Count is the total number of pairs, degenerate ones included.
	Count int

	// Finite is the number of finite, non-zero-persistence pairs.
	Finite int

	// Infinite is the number of never-dying pairs.
	Infinite int

	// Total is the sum of finite persistences.
	Total float64

	// Max is the largest finite persistence (0 if none).
	Max float64

	// Mean is the average finite persistence (0 if none).
	Mean float64

	// Entropy is the Shannon entropy of the normalized persistence
	// distribution (0 if total persistence is 0).
	Entropy float64
}

// Persistences returns death − birth per pair, in pair order, with
// +Inf marking never-dying features.
//
// Complexity: O(n).
func (d Diagram) Persistences() []float64 {
	out := make([]float64, len(d.Pairs))
	for i, p := range d.Pairs {
		out[i] = p.Persistence()
	}

	return out
}

// TotalPersistence returns the sum of finite, non-zero persistences.
//
// Complexity: O(n).
func (d Diagram) TotalPersistence() float64 {
	return floats.Sum(d.finitePersistences())
}

// Entropy returns the Shannon entropy (natural log) of the normalized
// finite persistence distribution. Degenerate inputs — no finite
// pairs, or zero total persistence — yield 0, never NaN.
//
// Complexity: O(n).
func (d Diagram) Entropy() float64 {
	ps := d.finitePersistences()
	total := floats.Sum(ps)
	if len(ps) == 0 || total == 0 {
		return 0
	}
	floats.Scale(1/total, ps)

	return stat.Entropy(ps)
}

// SummaryStatistics computes every Stats field in one pass over the
// diagram plus one pass over the finite persistences.
//
// Complexity: O(n).
func (d Diagram) SummaryStatistics() Stats {
	s := Stats{Count: len(d.Pairs)}
	ps := d.finitePersistences()
	s.Finite = len(ps)
	for _, p := range d.Pairs {
		if p.IsInfinite() {
			s.Infinite++
		}
	}
	if len(ps) == 0 {
		return s
	}
	s.Total = floats.Sum(ps)
	s.Max = floats.Max(ps)
	s.Mean = stat.Mean(ps, nil)
	if s.Total > 0 {
		q := make([]float64, len(ps))
		copy(q, ps)
		floats.Scale(1/s.Total, q)
		s.Entropy = stat.Entropy(q)
	}

	return s
}

// ToPersistenceBirthCoordinates re-expresses every pair as a
// (birth, persistence) coordinate, the standard rotated view used by
// external TDA tooling. Never-dying pairs carry +Inf persistence.
//
// Complexity: O(n).
func (d Diagram) ToPersistenceBirthCoordinates() [][2]float64 {
	out := make([][2]float64, len(d.Pairs))
	for i, p := range d.Pairs {
		out[i] = [2]float64{p.Birth, p.Persistence()}
	}

	return out
}

// finitePersistences collects finite, strictly positive persistences.
func (d Diagram) finitePersistences() []float64 {
	out := make([]float64, 0, len(d.Pairs))
	for _, p := range d.Pairs {
		v := p.Persistence()
		if !math.IsInf(v, 1) && v > 0 {
			out = append(out, v)
		}
	}

	return out
}
