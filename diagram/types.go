// Package diagram: core types and sentinel errors.
//
// Errors:
//
//	ErrBadRange - persistence filter with min > max or NaN bounds.
//	ErrBadLevel - landscape level below one.
//	ErrBadPower - Wasserstein exponent below one.
package diagram

import (
	"errors"
	"math"
)

// Sentinel errors for diagram operations.
var (
	// ErrBadRange indicates a filter range with min > max or NaN bounds.
	ErrBadRange = errors.New("diagram: invalid persistence range")

	// ErrBadLevel indicates a landscape level k < 1.
	ErrBadLevel = errors.New("diagram: landscape level must be ≥ 1")

	// ErrBadPower indicates a Wasserstein exponent p < 1.
	ErrBadPower = errors.New("diagram: Wasserstein power must be ≥ 1")
)

// Pair is one persistence pair: a feature born at Birth that dies at
// Death. Death = +Inf is the explicit "never dies" marker.
// Invariant: Birth ≤ Death.
type Pair struct {
	// Birth is the scale at which the feature appears.
	Birth float64

	// Death is the scale at which the feature vanishes, or +Inf.
	Death float64
}

// IsInfinite reports whether the pair never dies.
func (p Pair) IsInfinite() bool {
	return math.IsInf(p.Death, 1)
}

// Persistence returns Death − Birth, or +Inf for a never-dying pair.
func (p Pair) Persistence() float64 {
	if p.IsInfinite() {
		return math.Inf(1)
	}

	return p.Death - p.Birth
}

// Diagram is the unordered multiset of persistence pairs for one
// homology dimension. Treat values as immutable once constructed.
type Diagram struct {
	// Dimension is the homology dimension all pairs belong to.
	Dimension int

	// Pairs holds the (birth, death) multiset.
	Pairs []Pair
}

// SameDimension reports whether two diagrams describe the same
// homology dimension.
func SameDimension(a, b Diagram) bool {
	return a.Dimension == b.Dimension
}
