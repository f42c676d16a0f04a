// Package fragility: options, defaults, and sentinel errors.
//
// Errors:
//
//	ErrTooFewPoints - fewer than three points (removal must leave a cloud).
//	ErrNilGraph     - nil graph passed to EdgePerturbationScores.
//	ErrNoEdges      - graph has no edges to perturb.
//	ErrBadDelta     - perturbation delta is NaN or infinite.
//	ErrBadDimension - homology dimension exceeds the complex dimension.
package fragility

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/homotopia/pointcloud"
)

// Sentinel errors for fragility analysis.
var (
	// ErrTooFewPoints indicates a cloud too small to survive removal.
	ErrTooFewPoints = errors.New("fragility: need at least three points")

	// ErrNilGraph indicates a nil *graph.Graph argument.
	ErrNilGraph = errors.New("fragility: graph is nil")

	// ErrNoEdges indicates a graph with nothing to perturb.
	ErrNoEdges = errors.New("fragility: graph has no edges")

	// ErrBadDelta indicates a NaN or infinite perturbation.
	ErrBadDelta = errors.New("fragility: delta must be finite")

	// ErrBadDimension indicates homology dimension > complex dimension.
	ErrBadDimension = errors.New("fragility: homology dimension exceeds complex dimension")
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultMaxDimension bounds the complexes built per recomputation.
	DefaultMaxDimension = 2

	// DefaultHomologyDimension scores loops (H1), the usual target.
	DefaultHomologyDimension = 1
)

// Option configures fragility analysis.
type Option func(*options)

type options struct {
	maxDimension int
	homologyDim  int
	metric       pointcloud.DistanceFunc
	parallelism  int
}

// WithMaxDimension sets the maximum simplex dimension of the complexes
// built per recomputation. Non-positive values keep the default.
func WithMaxDimension(d int) Option {
	return func(o *options) {
		if d > 0 {
			o.maxDimension = d
		}
	}
}

// WithHomologyDimension selects which diagram is compared (0 =
// components, 1 = loops, …). Negative values keep the default.
func WithHomologyDimension(k int) Option {
	return func(o *options) {
		if k >= 0 {
			o.homologyDim = k
		}
	}
}

// WithMetric sets the point-cloud metric (nil keeps Euclidean).
func WithMetric(d pointcloud.DistanceFunc) Option {
	return func(o *options) {
		if d != nil {
			o.metric = d
		}
	}
}

// WithParallelism bounds the worker pool for the independent
// recomputations. Non-positive values keep the default (NumCPU).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		maxDimension: DefaultMaxDimension,
		homologyDim:  DefaultHomologyDimension,
		metric:       pointcloud.Euclidean,
		parallelism:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.homologyDim > o.maxDimension {
		return o, ErrBadDimension
	}

	return o, nil
}
