package simplex_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/homotopia/graph"
	"github.com/katalvlaran/homotopia/simplex"
)

// BenchmarkKFaces measures iterative subset enumeration on a 12-vertex
// simplex (C(12,4) = 495 faces per call).
func BenchmarkKFaces(b *testing.B) {
	vs := make([]int, 12)
	for i := range vs {
		vs[i] = i
	}
	s := simplex.New(vs...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.KFaces(3)
	}
}

// BenchmarkCliqueComplex measures clique enumeration up to dimension 2
// on a random 100-vertex graph with edge probability 0.1.
func BenchmarkCliqueComplex(b *testing.B) {
	const n = 100
	rng := rand.New(rand.NewSource(42))
	g := graph.New(graph.WithCapacity(n))
	for u := 0; u < n; u++ {
		_ = g.AddVertex(u)
		for v := u + 1; v < n; v++ {
			if rng.Float64() < 0.1 {
				_ = g.AddEdge(u, v, rng.Float64())
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.CliqueComplex(g, 2); err != nil {
			b.Fatalf("CliqueComplex failed: %v", err)
		}
	}
}
