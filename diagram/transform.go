package diagram

import "math"

// FilterByPersistence retains pairs whose persistence lies in
// [minPersistence, maxPersistence]. A never-dying pair is retained only
// when the upper bound is itself unbounded (+Inf).
//
// Errors: ErrBadRange when min > max or either bound is NaN.
// Complexity: O(n).
func (d Diagram) FilterByPersistence(minPersistence, maxPersistence float64) (Diagram, error) {
	if math.IsNaN(minPersistence) || math.IsNaN(maxPersistence) || minPersistence > maxPersistence {
		return Diagram{}, ErrBadRange
	}
	out := Diagram{Dimension: d.Dimension}
	for _, p := range d.Pairs {
		v := p.Persistence()
		if p.IsInfinite() {
			if math.IsInf(maxPersistence, 1) && minPersistence <= v {
				out.Pairs = append(out.Pairs, p)
			}

			continue
		}
		if minPersistence <= v && v <= maxPersistence {
			out.Pairs = append(out.Pairs, p)
		}
	}

	return out, nil
}

// DefaultProjectionFactor scales the largest observed finite death into
// the default cap used by ProjectInfinite.
const DefaultProjectionFactor = 1.5

// ProjectInfinite replaces every infinite death with a finite cap,
// producing a diagram safe for tooling that cannot represent +Inf.
//
// maxDeath ≤ 0 (or NaN) selects the default cap: 1.5× the largest
// observed finite death; if the diagram has no finite death, 1.5× the
// largest birth; for an all-zero diagram, 1.
//
// Complexity: O(n).
func (d Diagram) ProjectInfinite(maxDeath float64) Diagram {
	limit := maxDeath
	if math.IsNaN(limit) || limit <= 0 {
		limit = d.defaultCap()
	}
	out := Diagram{Dimension: d.Dimension, Pairs: make([]Pair, len(d.Pairs))}
	for i, p := range d.Pairs {
		if p.IsInfinite() {
			death := limit
			if death < p.Birth {
				death = p.Birth // keep birth ≤ death
			}
			out.Pairs[i] = Pair{Birth: p.Birth, Death: death}

			continue
		}
		out.Pairs[i] = p
	}

	return out
}

// defaultCap derives the projection cap from observed scales.
func (d Diagram) defaultCap() float64 {
	maxFinite, maxBirth := 0.0, 0.0
	for _, p := range d.Pairs {
		if !p.IsInfinite() && p.Death > maxFinite {
			maxFinite = p.Death
		}
		if p.Birth > maxBirth {
			maxBirth = p.Birth
		}
	}
	switch {
	case maxFinite > 0:
		return DefaultProjectionFactor * maxFinite
	case maxBirth > 0:
		return DefaultProjectionFactor * maxBirth
	default:
		return 1
	}
}
