// Package filtration: core types, sentinel errors, and the structured
// validation result.
//
// Errors:
//
//	ErrTooFewPoints      - fewer than two points supplied to VietorisRips.
//	ErrDimensionMismatch - points of differing dimension.
//	ErrNilGraph          - nil graph passed to FromGraph.
//	ErrNegativeDimension - requested maximum dimension below zero.
//	ErrInvalidFiltration - structural invariant violated; always wrapped
//	                       in a *ValidationError carrying the offending step.
//	ErrEmptyFiltration   - Validate called on an empty sequence.
package filtration

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/homotopia/simplex"
)

// Sentinel errors for filtration construction and validation.
var (
	// ErrTooFewPoints indicates a degenerate point cloud (n < 2).
	ErrTooFewPoints = errors.New("filtration: need at least two points")

	// ErrDimensionMismatch indicates points of differing dimension.
	ErrDimensionMismatch = errors.New("filtration: points have differing dimensions")

	// ErrNilGraph indicates a nil *graph.Graph argument.
	ErrNilGraph = errors.New("filtration: graph is nil")

	// ErrNegativeDimension indicates a requested dimension below zero.
	ErrNegativeDimension = errors.New("filtration: dimension must be non-negative")

	// ErrInvalidFiltration indicates a violated ordering invariant.
	// Match with errors.Is; inspect the *ValidationError for details.
	ErrInvalidFiltration = errors.New("filtration: ordering invariant violated")

	// ErrEmptyFiltration indicates an empty step sequence where at least
	// one step is required.
	ErrEmptyFiltration = errors.New("filtration: empty filtration")
)

// Step is one (scale, simplex) entry of a filtration.
type Step struct {
	// Scale is the birth scale of Simplex.
	Scale float64

	// Simplex is the canonical simplex entering at Scale.
	Simplex simplex.Simplex
}

// Filtration is a finite sequence of steps, non-decreasing in scale.
// Values are immutable once built; all methods are pure.
type Filtration []Step

// ValidationError describes the first offending step of an invalid
// filtration: a scale-order violation, a non-canonical or duplicate
// simplex, or a face that does not precede its coface. It wraps
// ErrInvalidFiltration for errors.Is.
type ValidationError struct {
	// Index is the position of the offending step.
	Index int

	// Step is the offending entry.
	Step Step

	// Face is the missing or out-of-order face, when the violation is a
	// face-ordering one; nil for scale-order violations.
	Face simplex.Simplex

	// Reason is a short human-readable description.
	Reason string
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Face != nil {
		return fmt.Sprintf("filtration: step %d (simplex %v @ %g): %s (face %v)",
			e.Index, e.Step.Simplex, e.Step.Scale, e.Reason, e.Face)
	}

	return fmt.Sprintf("filtration: step %d (simplex %v @ %g): %s",
		e.Index, e.Step.Simplex, e.Step.Scale, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidFiltration) match.
func (e *ValidationError) Unwrap() error { return ErrInvalidFiltration }

// key renders a canonical simplex as a compact map key.
func key(s simplex.Simplex) string {
	buf := make([]byte, 0, 4*len(s))
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}
