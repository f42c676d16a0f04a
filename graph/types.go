// Package graph: core types, sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrNegativeVertex - vertex identifier is negative.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrSelfLoop       - edge endpoints coincide.
//	ErrBadWeight      - edge weight is NaN, ±Inf, or negative.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNegativeVertex indicates a vertex identifier below zero.
	ErrNegativeVertex = errors.New("graph: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("graph: self-loops not allowed")

	// ErrBadWeight indicates a NaN, infinite, or negative edge weight.
	ErrBadWeight = errors.New("graph: weight must be finite and non-negative")
)

// Edge is one undirected weighted edge, reported with U < V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int

	// Weight is the scale at which this edge enters a filtration.
	Weight float64
}

// Option configures a Graph before first use.
type Option func(*Graph)

// WithCapacity pre-sizes internal storage for n vertices.
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.adj = make(map[int]map[int]float64, n)
		}
	}
}

// Graph is an undirected weighted graph over non-negative integer vertices.
//
// All exported methods are safe for concurrent use; mu guards adj.
// Edge weights are stored once per unordered pair {u, v}.
type Graph struct {
	mu  sync.RWMutex
	adj map[int]map[int]float64 // vertex → neighbor → weight
}

// New creates an empty Graph.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{adj: make(map[int]map[int]float64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
