package filtration

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/homotopia/graph"
	"github.com/katalvlaran/homotopia/pointcloud"
	"github.com/katalvlaran/homotopia/simplex"
)

// VietorisRips builds the Vietoris–Rips filtration of a point cloud up
// to maxDimension under the given metric (nil ⇒ Euclidean).
//
// Birth rule (max-edge): every vertex is born at scale 0; a k-simplex
// is born at the maximum pairwise distance among its vertices.
//
// Algorithm:
//  1. Compute the pairwise distance matrix: O(n²·d).
//  2. For every dimension 1..maxDimension, enumerate all (d+1)-subsets
//     with an iterative combination generator and record each subset's
//     max pairwise distance. This enumeration — not the later matrix
//     reduction — is the dominant cost for dense clouds.
//  3. Sort steps by (scale, dimension, lexicographic vertex order), so
//     equal-scale ties resolve deterministically and faces always
//     precede their cofaces.
//
// Errors: ErrTooFewPoints, ErrDimensionMismatch, ErrNegativeDimension.
// Complexity: O(Σ_d C(n, d+1)·d²) time.
func VietorisRips(points []pointcloud.Point, dist pointcloud.DistanceFunc, maxDimension int) (Filtration, error) {
	if maxDimension < 0 {
		return nil, ErrNegativeDimension
	}
	dm, err := pointcloud.DistanceMatrix(points, dist)
	if err != nil {
		switch {
		case err == pointcloud.ErrTooFewPoints:
			return nil, ErrTooFewPoints
		case err == pointcloud.ErrDimensionMismatch:
			return nil, ErrDimensionMismatch
		default:
			return nil, err
		}
	}

	n := len(points)
	steps := make([]Step, 0, n)
	for v := 0; v < n; v++ {
		steps = append(steps, Step{Scale: 0, Simplex: simplex.Simplex{v}})
	}

	idx := make([]int, 0, maxDimension+1)
	for d := 1; d <= maxDimension; d++ {
		size := d + 1
		if size > n {
			break
		}
		gen := combin.NewCombinationGenerator(n, size)
		idx = idx[:size]
		for gen.Next() {
			gen.Combination(idx)
			birth := maxPairwise(dm, idx)
			s := make(simplex.Simplex, size)
			copy(s, idx)
			steps = append(steps, Step{Scale: birth, Simplex: s})
		}
	}
	sortSteps(steps)

	return steps, nil
}

// FromGraph builds a filtration from a weighted graph's clique complex
// up to maxDimension: vertices at scale 0, edges at their weight,
// higher simplices at the maximum edge weight among their pairs.
//
// Errors: ErrNilGraph, ErrNegativeDimension.
// Complexity: clique enumeration dominates; see simplex.CliqueComplex.
func FromGraph(g *graph.Graph, maxDimension int) (Filtration, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxDimension < 0 {
		return nil, ErrNegativeDimension
	}
	complex, err := simplex.CliqueComplex(g, maxDimension)
	if err != nil {
		return nil, err
	}

	var steps []Step
	for _, s := range complex[0] {
		steps = append(steps, Step{Scale: 0, Simplex: s})
	}
	for d := 1; d < len(complex); d++ {
		for _, s := range complex[d] {
			steps = append(steps, Step{Scale: maxEdgeWeight(g, s), Simplex: s})
		}
	}
	sortSteps(steps)

	return steps, nil
}

// maxPairwise returns the largest distance among all vertex pairs of idx.
func maxPairwise(dm [][]float64, idx []int) float64 {
	var best float64
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if d := dm[idx[i]][idx[j]]; d > best {
				best = d
			}
		}
	}

	return best
}

// maxEdgeWeight returns the largest edge weight among all vertex pairs
// of s. Every pair exists by the clique property.
func maxEdgeWeight(g *graph.Graph, s simplex.Simplex) float64 {
	var best float64
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if w, ok := g.Weight(s[i], s[j]); ok && w > best {
				best = w
			}
		}
	}

	return best
}

// sortSteps orders steps by (scale, dimension, lexicographic vertices).
// The tie-break makes pair extraction deterministic and guarantees
// faces precede their cofaces at equal scale.
func sortSteps(steps []Step) {
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].Scale != steps[j].Scale {
			return steps[i].Scale < steps[j].Scale
		}
		di, dj := steps[i].Simplex.Dimension(), steps[j].Simplex.Dimension()
		if di != dj {
			return di < dj
		}

		return lexLess(steps[i].Simplex, steps[j].Simplex)
	})
}

// lexLess compares two canonical simplices lexicographically.
func lexLess(a, b simplex.Simplex) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
