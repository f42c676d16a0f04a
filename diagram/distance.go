package diagram

import "math"

// BottleneckDistance compares two diagrams with a greedy, non-optimal
// matching: each diagram is extended with the diagonal projections of
// the other diagram's points, every point is charged the Chebyshev
// distance to its cheapest counterpart in the other extended set, and
// the result is the largest charge over both directions.
//
// Symmetric and non-negative by construction, and zero for identical
// diagrams — but NOT guaranteed to equal the true minimum-cost
// (Hungarian) matching distance. Treat it as a fast approximation.
//
// Never-dying pairs match only other never-dying pairs (at their birth
// difference); a diagram with an unmatched infinite feature is
// infinitely far from one without.
//
// Complexity: O((n+m)²).
func BottleneckDistance(a, b Diagram) float64 {
	ea, eb := extend(a, b), extend(b, a)
	best := 0.0
	for _, p := range ea {
		if c := cheapest(p, eb); c > best {
			best = c
		}
	}
	for _, q := range eb {
		if c := cheapest(q, ea); c > best {
			best = c
		}
	}

	return best
}

// WassersteinDistance is the p-averaged variant of the same greedy
// matching: the p-mean of every point's cheapest-counterpart charge
// over both extended sets.
//
// Errors: ErrBadPower for p < 1.
// Complexity: O((n+m)²).
func WassersteinDistance(a, b Diagram, p float64) (float64, error) {
	if math.IsNaN(p) || p < 1 {
		return 0, ErrBadPower
	}
	ea, eb := extend(a, b), extend(b, a)
	total, count := 0.0, 0
	for _, pt := range ea {
		total += math.Pow(cheapest(pt, eb), p)
		count++
	}
	for _, pt := range eb {
		total += math.Pow(cheapest(pt, ea), p)
		count++
	}
	if count == 0 {
		return 0, nil
	}

	return math.Pow(total/float64(count), 1/p), nil
}

// extend returns d's points plus the diagonal projections of other's
// finite points — the standard device that lets unmatched features be
// charged their distance to the diagonal.
func extend(d, other Diagram) []Pair {
	out := make([]Pair, 0, len(d.Pairs)+len(other.Pairs))
	out = append(out, d.Pairs...)
	for _, p := range other.Pairs {
		if p.IsInfinite() {
			continue // the diagonal cannot absorb a never-dying feature
		}
		mid := (p.Birth + p.Death) / 2
		out = append(out, Pair{Birth: mid, Death: mid})
	}

	return out
}

// cheapest returns the smallest Chebyshev distance from p to any point
// of set (+Inf for an empty set).
func cheapest(p Pair, set []Pair) float64 {
	best := math.Inf(1)
	for _, q := range set {
		if d := chebyshev(p, q); d < best {
			best = d
		}
	}

	return best
}

// chebyshev is the L∞ distance between two pairs, with infinite deaths
// compared as equal (two never-dying features differ only in birth).
func chebyshev(p, q Pair) float64 {
	db := math.Abs(p.Birth - q.Birth)
	switch {
	case p.IsInfinite() && q.IsInfinite():
		return db
	case p.IsInfinite() || q.IsInfinite():
		return math.Inf(1)
	}
	if dd := math.Abs(p.Death - q.Death); dd > db {
		return dd
	}

	return db
}
