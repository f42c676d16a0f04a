package persistence

import (
	"github.com/katalvlaran/homotopia/filtration"
)

// BettiNumbers returns [β0, β1, …, β_maxDimension] for the complex
// alive at scale epsilon.
//
// Two paths:
//
//   - maxDimension ≤ 1: graph connectivity on ComplexAt(epsilon) —
//     β0 is the number of connected components (BFS over the 1-skeleton)
//     and β1 = E − V + C by the Euler relation. O(V + E). This is the
//     cycle rank of the 1-skeleton: it deliberately ignores any
//     2-simplices alive at epsilon, so for a filtration that fills its
//     loops the cheap β1 overcounts once triangles are alive.
//
//   - maxDimension ≥ 2: the full reduction. β_k(ε) is the number of
//     dimension-k features alive at ε (birth ≤ ε, death > ε or never),
//     fillings accounted for. Never silently 0: higher Betti numbers
//     always reflect the actual reduction, at full-reduction cost.
//
// The paths agree on β0 everywhere, and on β1 below the first
// 2-simplex scale.
//
// β_k is meaningful only for k below the filtration's own maximum
// dimension: killing a k-feature requires (k+1)-simplices, so the top
// dimension reports cycles that nothing in the filtration could fill.
//
// Errors: ErrEmptyFiltration, ErrNegativeDimension, and validation
// failures on the reduction path.
func BettiNumbers(f filtration.Filtration, epsilon float64, maxDimension int) ([]int, error) {
	if len(f) == 0 {
		return nil, ErrEmptyFiltration
	}
	if maxDimension < 0 {
		return nil, ErrNegativeDimension
	}
	if maxDimension <= 1 {
		return bettiByConnectivity(f, epsilon, maxDimension), nil
	}

	diagrams, err := Compute(f)
	if err != nil {
		return nil, err
	}
	betti := make([]int, maxDimension+1)
	for d := range diagrams {
		if d > maxDimension {
			break
		}
		for _, p := range diagrams[d].Pairs {
			if p.Birth <= epsilon && (p.IsInfinite() || p.Death > epsilon) {
				betti[d]++
			}
		}
	}

	return betti, nil
}

// bettiByConnectivity computes β0 (and β1 for maxDimension = 1) from
// the 1-skeleton of the complex at epsilon.
func bettiByConnectivity(f filtration.Filtration, epsilon float64, maxDimension int) []int {
	complex := f.ComplexAt(epsilon)

	// Adjacency over the alive 1-skeleton.
	adj := make(map[int][]int, len(complex[0]))
	for _, v := range complex[0] {
		adj[v[0]] = nil
	}
	edges := 0
	for _, e := range complex[1] {
		u, v := e[0], e[1]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		edges++
	}

	components := countComponents(adj)
	betti := make([]int, maxDimension+1)
	betti[0] = components
	if maxDimension >= 1 {
		// Euler relation for a graph: β1 = E − V + C.
		betti[1] = edges - len(adj) + components
	}

	return betti
}

// countComponents runs BFS over an adjacency map and counts the
// connected components.
//
// Time: O(V + E). Memory: O(V).
func countComponents(adj map[int][]int) int {
	seen := make(map[int]bool, len(adj))
	components := 0
	for start := range adj {
		if seen[start] {
			continue
		}
		components++
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}

	return components
}
