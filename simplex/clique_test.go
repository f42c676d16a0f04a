package simplex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homotopia/graph"
	"github.com/katalvlaran/homotopia/simplex"
)

// completeGraph builds K_n with unit weights.
func completeGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			require.NoError(t, g.AddEdge(u, v, 1))
		}
	}

	return g
}

// TestCliqueComplex_K4 checks every clique count of the complete graph
// on four vertices: 4 vertices, 6 edges, 4 triangles, 1 tetrahedron.
func TestCliqueComplex_K4(t *testing.T) {
	g := completeGraph(t, 4)
	complex, err := simplex.CliqueComplex(g, 3)
	require.NoError(t, err)
	require.Len(t, complex, 4)
	require.Len(t, complex[0], 4)
	require.Len(t, complex[1], 6)
	require.Len(t, complex[2], 4)
	require.Len(t, complex[3], 1)
	require.True(t, complex[3][0].Equal(simplex.Simplex{0, 1, 2, 3}))
}

// TestCliqueComplex_Square checks that a 4-cycle has no triangles:
// the hollow square is the canonical loop fixture.
func TestCliqueComplex_Square(t *testing.T) {
	g := graph.New()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	complex, err := simplex.CliqueComplex(g, 2)
	require.NoError(t, err)
	require.Len(t, complex[0], 4)
	require.Len(t, complex[1], 4)
	require.Empty(t, complex[2], "a chordless cycle has no 3-cliques")
}

// TestCliqueComplex_DimensionZero checks that maxDimension=0 returns
// only the vertex set.
func TestCliqueComplex_DimensionZero(t *testing.T) {
	g := completeGraph(t, 3)
	complex, err := simplex.CliqueComplex(g, 0)
	require.NoError(t, err)
	require.Len(t, complex, 1)
	require.Len(t, complex[0], 3)
}

// TestCliqueComplex_Errors exercises the input guards.
func TestCliqueComplex_Errors(t *testing.T) {
	if _, err := simplex.CliqueComplex(nil, 1); !errors.Is(err, simplex.ErrNilGraph) {
		t.Errorf("CliqueComplex(nil) error = %v; want ErrNilGraph", err)
	}
	g := graph.New()
	if _, err := simplex.CliqueComplex(g, -1); !errors.Is(err, simplex.ErrNegativeDimension) {
		t.Errorf("CliqueComplex(maxDim=-1) error = %v; want ErrNegativeDimension", err)
	}
}

// TestCliqueComplex_EdgesMatchGraph verifies that dimension-1 cliques
// are exactly the graph's edges, in lexicographic order.
func TestCliqueComplex_EdgesMatchGraph(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	complex, err := simplex.CliqueComplex(g, 1)
	require.NoError(t, err)
	require.Len(t, complex[1], 2)
	require.True(t, complex[1][0].Equal(simplex.Simplex{0, 2}))
	require.True(t, complex[1][1].Equal(simplex.Simplex{1, 2}))
}
