package pointcloud

import (
	"math"
	"sort"

	"github.com/katalvlaran/homotopia/graph"
)

// DistanceMatrix computes the full symmetric pairwise distance matrix.
// The diagonal is exactly zero.
//
// Errors: ErrTooFewPoints, ErrDimensionMismatch.
// Complexity: O(n²·d). Memory: O(n²).
func DistanceMatrix(points []Point, dist DistanceFunc) ([][]float64, error) {
	if err := checkCloud(points); err != nil {
		return nil, err
	}
	if dist == nil {
		dist = Euclidean
	}
	n := len(points)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist(points[i], points[j])
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m, nil
}

// KNearestGraph connects every point to its k nearest neighbors, with
// edge weight equal to the point distance. The result is undirected:
// an edge exists if either endpoint lists the other among its k nearest.
// Ties at equal distance break toward the smaller index.
//
// Errors: ErrTooFewPoints, ErrDimensionMismatch, ErrBadNeighborCount.
// Complexity: O(n² log n). Memory: O(n²) transient.
func KNearestGraph(points []Point, k int, dist DistanceFunc) (*graph.Graph, error) {
	if err := checkCloud(points); err != nil {
		return nil, err
	}
	if k < 1 || k >= len(points) {
		return nil, ErrBadNeighborCount
	}
	if dist == nil {
		dist = Euclidean
	}
	n := len(points)
	g := graph.New(graph.WithCapacity(n))
	order := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
		order = order[:0]
		for j := 0; j < n; j++ {
			if j != i {
				order = append(order, j)
			}
		}
		// Stable nearest-first order: distance asc, then index asc.
		pi := points[i]
		sort.SliceStable(order, func(a, b int) bool {
			return dist(pi, points[order[a]]) < dist(pi, points[order[b]])
		})
		for _, j := range order[:k] {
			if err := g.AddEdge(i, j, dist(pi, points[j])); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// EpsilonGraph connects every pair of points at distance ≤ ε, with edge
// weight equal to the distance. Isolated points remain as vertices.
//
// Errors: ErrTooFewPoints, ErrDimensionMismatch, ErrBadEpsilon.
// Complexity: O(n²·d).
func EpsilonGraph(points []Point, epsilon float64, dist DistanceFunc) (*graph.Graph, error) {
	if err := checkCloud(points); err != nil {
		return nil, err
	}
	if math.IsNaN(epsilon) || epsilon < 0 {
		return nil, ErrBadEpsilon
	}
	if dist == nil {
		dist = Euclidean
	}
	n := len(points)
	g := graph.New(graph.WithCapacity(n))
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
		for j := i + 1; j < n; j++ {
			if d := dist(points[i], points[j]); d <= epsilon {
				if err := g.AddEdge(i, j, d); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
