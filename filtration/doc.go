// Package filtration builds and validates scale-ordered growth sequences
// of simplicial complexes — the input the persistence engine reduces.
//
// 🚀 What is a filtration?
//
//	A finite sequence of (scale, simplex) steps, non-decreasing in scale,
//	in which every face of a simplex enters at or before the simplex
//	itself. Sweeping the scale from 0 upward replays the growth of the
//	complex: vertices first, then edges, then higher simplices.
//
// ✨ Key features:
//   - Vietoris–Rips filtrations from point clouds under any metric,
//     with the max-edge birth rule (a k-simplex is born at the largest
//     pairwise distance among its vertices)
//   - Graph filtrations: vertices at scale 0, edges at their weight,
//     higher simplices (clique complex) at their max edge weight
//   - ComplexAt extracts the complex alive at a given ε, by dimension
//   - Validate returns a structured description of the first offending
//     step — never an opaque error
//
// ⚙️ Usage:
//
//	f, err := filtration.VietorisRips(points, pointcloud.Euclidean, 2)
//	if err != nil { ... }
//	if err := f.Validate(); err != nil { ... }
//	alive := f.ComplexAt(0.8)
//
// ⚠️ Cost model: the subset enumeration performed by VietorisRips —
// all (d+1)-subsets for every dimension up to maxDimension — dominates
// the pipeline for dense clouds; it is combinatorially exponential in
// dimension. Cap vertex count × target dimension before building.
package filtration
