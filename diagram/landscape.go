package diagram

import "sort"

// PersistenceLandscape evaluates the level-k persistence landscape
// λ_k at every t in tValues.
//
// At each t, every finite pair contributes the "tent" value
// max(0, min(t − birth, death − t)); λ_k(t) is the k-th largest tent
// (0 when fewer than k features are active at t). Never-dying pairs are
// excluded — project them first if they should contribute.
//
// Errors: ErrBadLevel for k < 1.
// Complexity: O(len(tValues)·n log n).
func (d Diagram) PersistenceLandscape(tValues []float64, k int) ([]float64, error) {
	if k < 1 {
		return nil, ErrBadLevel
	}
	out := make([]float64, len(tValues))
	tents := make([]float64, 0, len(d.Pairs))
	for i, t := range tValues {
		tents = tents[:0]
		for _, p := range d.Pairs {
			if p.IsInfinite() {
				continue
			}
			if v := tent(t, p); v > 0 {
				tents = append(tents, v)
			}
		}
		if len(tents) < k {
			continue // out[i] stays 0
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(tents)))
		out[i] = tents[k-1]
	}

	return out, nil
}

// tent is the triangular bump of pair p evaluated at t.
func tent(t float64, p Pair) float64 {
	rise := t - p.Birth
	fall := p.Death - t
	v := rise
	if fall < v {
		v = fall
	}
	if v < 0 {
		return 0
	}

	return v
}
