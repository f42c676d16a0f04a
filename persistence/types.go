// Package persistence: sentinel errors.
//
// Errors:
//
//	ErrEmptyFiltration   - no steps to reduce.
//	ErrNegativeDimension - requested maximum dimension below zero.
//	ErrMissingFace       - a boundary face has no filtration position
//	                       (unreachable after a successful Validate).
//	ErrBoundaryViolation - the ∂∂ = 0 oracle found an odd incidence.
package persistence

import "errors"

// Sentinel errors for persistence computation.
var (
	// ErrEmptyFiltration indicates an empty step sequence.
	ErrEmptyFiltration = errors.New("persistence: empty filtration")

	// ErrNegativeDimension indicates a requested dimension below zero.
	ErrNegativeDimension = errors.New("persistence: dimension must be non-negative")

	// ErrMissingFace indicates a boundary face absent from the
	// filtration index. Validate rejects such filtrations up front, so
	// seeing this error means the caller skipped validation.
	ErrMissingFace = errors.New("persistence: boundary face missing from filtration")

	// ErrBoundaryViolation indicates the double-boundary oracle found a
	// face with odd total incidence (∂∂ ≠ 0).
	ErrBoundaryViolation = errors.New("persistence: boundary property violated")
)
