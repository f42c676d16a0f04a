// Package simplex: core types and sentinel errors.
//
// Errors:
//
//	ErrNilGraph          - nil graph passed to CliqueComplex.
//	ErrNegativeDimension - requested complex dimension below zero.
package simplex

import "errors"

// Sentinel errors for simplex operations.
var (
	// ErrNilGraph indicates a nil *graph.Graph argument.
	ErrNilGraph = errors.New("simplex: graph is nil")

	// ErrNegativeDimension indicates a requested dimension below zero.
	ErrNegativeDimension = errors.New("simplex: dimension must be non-negative")
)

// Simplex is a finite set of distinct vertices in canonical form:
// a strictly increasing sequence. The empty simplex has dimension -1
// (a sentinel, never a valid filtration entry).
//
// Construct via New or Normalize; treat values as immutable afterwards.
type Simplex []int

// BoundaryTerm is one signed face of a boundary chain.
type BoundaryTerm struct {
	// Sign is +1 or -1, alternating by removed-vertex position.
	Sign int

	// Face is the codimension-1 face obtained by the removal.
	Face Simplex
}
