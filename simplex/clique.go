package simplex

import "github.com/katalvlaran/homotopia/graph"

// CliqueComplex builds the clique (flag) complex of g up to maxDimension,
// grouped by dimension: result[k] holds every k-simplex, each a clique
// of k+1 pairwise-adjacent vertices, in lexicographic order.
//
// Algorithm (incremental extension):
//  1. Dimension 0 is the vertex set.
//  2. Each dimension d is generated by extending every (d-1)-simplex
//     with a vertex strictly larger than its current maximum — this
//     avoids duplicate permutations — keeping only extensions adjacent
//     to every existing member (the base is already a clique, so the
//     new vertex's edges are the only ones to check).
//
// Intended for small-to-medium graphs: clique enumeration is
// combinatorially exponential in clique size.
//
// Errors: ErrNilGraph, ErrNegativeDimension.
// Complexity: O(Σ_d |K_d|·V·d) worst case.
func CliqueComplex(g *graph.Graph, maxDimension int) ([][]Simplex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxDimension < 0 {
		return nil, ErrNegativeDimension
	}

	vertices := g.Vertices()
	result := make([][]Simplex, maxDimension+1)
	result[0] = make([]Simplex, len(vertices))
	for i, v := range vertices {
		result[0][i] = Simplex{v}
	}

	for d := 1; d <= maxDimension; d++ {
		prev := result[d-1]
		if len(prev) == 0 {
			break // no (d-1)-cliques ⇒ no larger ones either
		}
		var next []Simplex
		for _, s := range prev {
			last := s[len(s)-1]
			for _, w := range vertices {
				if w <= last {
					continue
				}
				if !adjacentToAll(g, s, w) {
					continue
				}
				ext := make(Simplex, len(s)+1)
				copy(ext, s)
				ext[len(s)] = w
				next = append(next, ext)
			}
		}
		result[d] = next
	}

	return result, nil
}

// adjacentToAll reports whether w shares an edge with every vertex of s.
func adjacentToAll(g *graph.Graph, s Simplex, w int) bool {
	for _, v := range s {
		if !g.HasEdge(v, w) {
			return false
		}
	}

	return true
}
