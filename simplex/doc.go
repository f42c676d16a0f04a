// Package simplex provides canonical k-simplices: the building blocks of
// every simplicial complex in this library.
//
// 🚀 What is simplex?
//
//	A k-simplex is the k+1-vertex generalization of a point, edge,
//	triangle, and tetrahedron. Here it is an immutable, strictly
//	increasing sequence of non-negative integer vertex identifiers.
//	Two simplices are equal iff their canonical sequences match.
//
// ✨ Key features:
//   - Canonical form: Normalize sorts and deduplicates once, up front
//   - Codimension-1 faces in deterministic (removed-vertex ascending) order
//   - Signed boundary chains with the alternating-sign convention, so
//     applying the boundary operator twice always cancels (∂∂ = 0)
//   - Iterative k-face enumeration via combination generators — no
//     recursion, no deep call stacks on larger simplices
//   - Clique complexes over weighted graphs up to a requested dimension
//
// ⚙️ Usage:
//
//	s := simplex.New(2, 0, 1)      // canonical {0,1,2}
//	s.Dimension()                   // 2
//	s.Faces()                       // [{1,2} {0,2} {0,1}]
//	simplex.CliqueComplex(g, 2)     // vertices, edges, triangles of g
//
// Complexity: Faces O(k²); KFaces O(C(k+1, j+1)·j); CliqueComplex is
// combinatorially exponential in clique size — intended for small-to-medium
// graphs (hundreds of vertices, bounded target dimension).
package simplex
