// Package graph provides the weighted, undirected graph consumed by the
// filtration builders — a vertex set plus (u, v, weight) edge triples.
//
// 🚀 What is graph?
//
//	A small, thread-safe adjacency structure with stable integer vertex
//	identifiers and float64 edge weights. Vertices index into an external
//	point cloud (or stand alone); weights are the scales at which edges
//	enter a filtration.
//
// ✨ Key features:
//   - Deterministic iteration: Vertices() and Edges() are always sorted
//   - Strict validation: negative IDs, self-loops, and non-finite or
//     negative weights are rejected with sentinel errors
//   - Clone and RemoveVertex support the repeated leave-one-out
//     recomputation performed by fragility analysis
//
// ⚙️ Usage:
//
//	g := graph.New()
//	_ = g.AddEdge(0, 1, 1.0)
//	_ = g.AddEdge(1, 2, 0.5)
//	fmt.Println(g.Neighbors(1)) // [0 2]
//
// Complexity: AddEdge/HasEdge/Weight O(1); Vertices O(V log V);
// Edges O(E log E); Clone O(V + E).
package graph
