// Package pointcloud: Point and DistanceFunc types, metric kernels,
// and sentinel errors.
//
// Errors:
//
//	ErrTooFewPoints       - fewer than two points supplied.
//	ErrDimensionMismatch  - points of differing dimension in one cloud.
//	ErrBadNeighborCount   - k < 1 or k ≥ number of points.
//	ErrBadEpsilon         - ε is NaN or negative.
package pointcloud

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for point-cloud operations.
var (
	// ErrTooFewPoints indicates a degenerate cloud (n < 2).
	ErrTooFewPoints = errors.New("pointcloud: need at least two points")

	// ErrDimensionMismatch indicates points of differing dimension.
	ErrDimensionMismatch = errors.New("pointcloud: points have differing dimensions")

	// ErrBadNeighborCount indicates k outside [1, n-1].
	ErrBadNeighborCount = errors.New("pointcloud: neighbor count out of range")

	// ErrBadEpsilon indicates a NaN or negative radius.
	ErrBadEpsilon = errors.New("pointcloud: epsilon must be finite and non-negative")
)

// Point is one real-valued d-dimensional vector.
type Point []float64

// DistanceFunc measures the distance between two points of equal
// dimension. Implementations may panic on mismatched dimensions;
// the entry points in this package validate dimensions up front.
type DistanceFunc func(a, b Point) float64

// Euclidean is the default L2 metric.
func Euclidean(a, b Point) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan is the L1 metric.
func Manhattan(a, b Point) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev is the L∞ metric.
func Chebyshev(a, b Point) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// checkCloud validates cloud size and dimensional consistency.
func checkCloud(points []Point) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	d := len(points[0])
	for _, p := range points[1:] {
		if len(p) != d {
			return ErrDimensionMismatch
		}
	}

	return nil
}
