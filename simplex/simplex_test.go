package simplex_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homotopia/simplex"
)

//----------------------------------------------------------------------------//
// Canonical form and dimension
//----------------------------------------------------------------------------//

// TestNormalize verifies sorting, deduplication, and equality semantics.
func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want simplex.Simplex
	}{
		{"Empty", nil, simplex.Simplex{}},
		{"Single", []int{7}, simplex.Simplex{7}},
		{"Unsorted", []int{2, 0, 1}, simplex.Simplex{0, 1, 2}},
		{"Duplicates", []int{3, 1, 3, 1, 2}, simplex.Simplex{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := simplex.Normalize(tc.in)
			require.True(t, got.Equal(tc.want), "Normalize(%v) = %v; want %v", tc.in, got, tc.want)
		})
	}
}

// TestDimension checks the size-1 rule, including the empty sentinel.
func TestDimension(t *testing.T) {
	require.Equal(t, -1, simplex.New().Dimension())
	require.Equal(t, 0, simplex.New(5).Dimension())
	require.Equal(t, 1, simplex.New(0, 1).Dimension())
	require.Equal(t, 3, simplex.New(3, 2, 1, 0).Dimension())
	// New normalizes, so duplicates collapse.
	require.Equal(t, 0, simplex.New(4, 4, 4).Dimension())
}

//----------------------------------------------------------------------------//
// Faces and k-faces
//----------------------------------------------------------------------------//

// TestFaces_OrderAndContent verifies one face per removed vertex,
// in ascending removed-vertex order.
func TestFaces_OrderAndContent(t *testing.T) {
	s := simplex.New(0, 1, 2)
	faces := s.Faces()
	require.Len(t, faces, 3)
	require.True(t, faces[0].Equal(simplex.Simplex{1, 2})) // removed 0
	require.True(t, faces[1].Equal(simplex.Simplex{0, 2})) // removed 1
	require.True(t, faces[2].Equal(simplex.Simplex{0, 1})) // removed 2

	require.Nil(t, simplex.New(3).Faces(), "vertices have no faces")
	require.Nil(t, simplex.New().Faces(), "empty simplex has no faces")
}

// TestKFaces verifies subset counts C(k+1, j+1) and out-of-range behavior.
func TestKFaces(t *testing.T) {
	s := simplex.New(0, 1, 2, 3) // tetrahedron
	require.Len(t, s.KFaces(0), 4)
	require.Len(t, s.KFaces(1), 6)
	require.Len(t, s.KFaces(2), 4)
	require.Len(t, s.KFaces(3), 1)
	require.True(t, s.KFaces(3)[0].Equal(s))
	require.Nil(t, s.KFaces(4))
	require.Nil(t, s.KFaces(-1))
}

// TestKFaces_Lexicographic checks deterministic enumeration order.
func TestKFaces_Lexicographic(t *testing.T) {
	s := simplex.New(0, 1, 2)
	edges := s.KFaces(1)
	want := []simplex.Simplex{{0, 1}, {0, 2}, {1, 2}}
	require.Len(t, edges, len(want))
	for i := range want {
		require.True(t, edges[i].Equal(want[i]), "KFaces(1)[%d] = %v; want %v", i, edges[i], want[i])
	}
}

//----------------------------------------------------------------------------//
// Boundary chains and ∂∂ = 0
//----------------------------------------------------------------------------//

// TestBoundary_SignsAlternate checks the +1, -1, +1, … convention.
func TestBoundary_SignsAlternate(t *testing.T) {
	chain := simplex.New(0, 1, 2).Boundary()
	require.Len(t, chain, 3)
	require.Equal(t, 1, chain[0].Sign)
	require.Equal(t, -1, chain[1].Sign)
	require.Equal(t, 1, chain[2].Sign)
	require.True(t, chain[0].Face.Equal(simplex.Simplex{1, 2}))
	require.True(t, chain[1].Face.Equal(simplex.Simplex{0, 2}))
	require.True(t, chain[2].Face.Equal(simplex.Simplex{0, 1}))
}

// TestBoundary_SquaresToZero verifies the fundamental ∂∂ = 0 invariant
// for every simplex dimension up to 3: applying the boundary twice and
// summing signed contributions per resulting face cancels exactly.
func TestBoundary_SquaresToZero(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		vs := make([]int, dim+1)
		for i := range vs {
			vs[i] = i
		}
		s := simplex.New(vs...)
		t.Run(fmt.Sprintf("Dim%d", dim), func(t *testing.T) {
			sums := map[string]int{}
			for _, outer := range s.Boundary() {
				for _, inner := range outer.Face.Boundary() {
					sums[fmt.Sprint(inner.Face)] += outer.Sign * inner.Sign
				}
			}
			for face, sum := range sums {
				require.Zero(t, sum, "∂∂ contribution for face %s did not cancel", face)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Subset tests
//----------------------------------------------------------------------------//

// TestIsFaceOf exercises the subset relation in both directions.
func TestIsFaceOf(t *testing.T) {
	tri := simplex.New(0, 1, 2)
	require.True(t, simplex.New(0, 2).IsFaceOf(tri))
	require.True(t, simplex.New(1).IsFaceOf(tri))
	require.True(t, tri.IsFaceOf(tri), "a simplex is a face of itself")
	require.True(t, simplex.New().IsFaceOf(tri), "the empty simplex is a face of everything")
	require.False(t, tri.IsFaceOf(simplex.New(0, 1)))
	require.False(t, simplex.New(0, 3).IsFaceOf(tri))
}
