package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/homotopia/graph"
)

//----------------------------------------------------------------------------//
// AddEdge / AddVertex validation
//----------------------------------------------------------------------------//

// TestAddEdge_Errors verifies that AddEdge rejects malformed input.
func TestAddEdge_Errors(t *testing.T) {
	cases := []struct {
		name string
		u, v int
		w    float64
		err  error
	}{
		{"NegativeU", -1, 2, 1.0, graph.ErrNegativeVertex},
		{"NegativeV", 0, -3, 1.0, graph.ErrNegativeVertex},
		{"SelfLoop", 4, 4, 1.0, graph.ErrSelfLoop},
		{"NaNWeight", 0, 1, math.NaN(), graph.ErrBadWeight},
		{"InfWeight", 0, 1, math.Inf(1), graph.ErrBadWeight},
		{"NegativeWeight", 0, 1, -0.5, graph.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := graph.New()
			if err := g.AddEdge(tc.u, tc.v, tc.w); !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%d,%d,%v) error = %v; want %v", tc.u, tc.v, tc.w, err, tc.err)
			}
		})
	}
}

// TestAddVertex_Negative checks the ID guard on AddVertex.
func TestAddVertex_Negative(t *testing.T) {
	g := graph.New()
	if err := g.AddVertex(-1); !errors.Is(err, graph.ErrNegativeVertex) {
		t.Errorf("AddVertex(-1) error = %v; want ErrNegativeVertex", err)
	}
}

//----------------------------------------------------------------------------//
// Structure queries
//----------------------------------------------------------------------------//

// TestEdges_SortedAndUnique checks deterministic, deduplicated edge listing.
func TestEdges_SortedAndUnique(t *testing.T) {
	g := graph.New(graph.WithCapacity(4))
	mustAdd(t, g, 2, 3, 0.3)
	mustAdd(t, g, 0, 1, 0.1)
	mustAdd(t, g, 1, 2, 0.2)

	want := []graph.Edge{
		{U: 0, V: 1, Weight: 0.1},
		{U: 1, V: 2, Weight: 0.2},
		{U: 2, V: 3, Weight: 0.3},
	}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Edges()[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

// TestNeighbors_Sorted verifies ascending neighbor order.
func TestNeighbors_Sorted(t *testing.T) {
	g := graph.New()
	mustAdd(t, g, 5, 1, 1)
	mustAdd(t, g, 5, 9, 1)
	mustAdd(t, g, 5, 3, 1)

	got := g.Neighbors(5)
	want := []int{1, 3, 9}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(5) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(5) = %v; want %v", got, want)
		}
	}
}

// TestWeight_Overwrite checks that re-adding an edge replaces its weight.
func TestWeight_Overwrite(t *testing.T) {
	g := graph.New()
	mustAdd(t, g, 0, 1, 1.0)
	mustAdd(t, g, 0, 1, 2.5)

	w, ok := g.Weight(1, 0) // symmetric lookup
	if !ok || w != 2.5 {
		t.Errorf("Weight(1,0) = (%v,%v); want (2.5,true)", w, ok)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d; want 1", g.EdgeCount())
	}
}

//----------------------------------------------------------------------------//
// Removal and cloning
//----------------------------------------------------------------------------//

// TestRemoveVertex_DropsIncidentEdges checks vertex removal semantics.
func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := graph.New()
	mustAdd(t, g, 0, 1, 1)
	mustAdd(t, g, 1, 2, 1)
	mustAdd(t, g, 0, 2, 1)

	if err := g.RemoveVertex(1); err != nil {
		t.Fatalf("RemoveVertex(1) error: %v", err)
	}
	if g.HasEdge(0, 1) || g.HasEdge(1, 2) {
		t.Error("edges incident to removed vertex survived")
	}
	if !g.HasEdge(0, 2) {
		t.Error("unrelated edge was dropped")
	}
	if err := g.RemoveVertex(1); !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("second RemoveVertex(1) error = %v; want ErrVertexNotFound", err)
	}
}

// TestRemoveEdge checks edge removal and its sentinel.
func TestRemoveEdge(t *testing.T) {
	g := graph.New()
	mustAdd(t, g, 0, 1, 1)
	if err := g.RemoveEdge(1, 0); err != nil {
		t.Fatalf("RemoveEdge(1,0) error: %v", err)
	}
	if g.HasEdge(0, 1) {
		t.Error("edge survived removal")
	}
	if err := g.RemoveEdge(0, 1); !errors.Is(err, graph.ErrEdgeNotFound) {
		t.Errorf("RemoveEdge on missing edge = %v; want ErrEdgeNotFound", err)
	}
	// Endpoints must remain as isolated vertices.
	if !g.HasVertex(0) || !g.HasVertex(1) {
		t.Error("RemoveEdge dropped an endpoint vertex")
	}
}

// TestClone_Independence checks that mutations do not leak between copies.
func TestClone_Independence(t *testing.T) {
	g := graph.New()
	mustAdd(t, g, 0, 1, 1)
	mustAdd(t, g, 1, 2, 2)

	c := g.Clone()
	if err := c.RemoveVertex(1); err != nil {
		t.Fatalf("RemoveVertex on clone: %v", err)
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 2) {
		t.Error("mutating the clone affected the original")
	}
	if c.VertexCount() != 2 || g.VertexCount() != 3 {
		t.Errorf("counts after clone mutation: clone=%d orig=%d; want 2, 3",
			c.VertexCount(), g.VertexCount())
	}
}

// mustAdd adds an edge or fails the test.
func mustAdd(t *testing.T, g *graph.Graph, u, v int, w float64) {
	t.Helper()
	if err := g.AddEdge(u, v, w); err != nil {
		t.Fatalf("AddEdge(%d,%d,%v): %v", u, v, w, err)
	}
}
