// Package persistence is the algorithmic core: it turns a validated
// filtration into persistence diagrams by reducing a sparse boundary
// matrix over GF(2).
//
// 🚀 What is persistence?
//
//	Given an ordered filtration, the boundary matrix records which
//	codimension-1 faces bound each simplex. Reducing it column by
//	column pairs simplices into (birth, death) features; simplices
//	that never become a pivot are features that never die.
//
// Algorithm Outline (standard left-to-right reduction):
//  1. Index simplices by filtration position; column j holds the sorted
//     row positions of simplex j's boundary faces. Coefficients live in
//     GF(2) — orientation signs vanish because addition is mod 2.
//  2. For column j, let low(j) be its largest row index (pivot). While
//     some earlier column j′ owns the same pivot, add j′ into j
//     (entrywise XOR) and recompute low(j); stop when j's pivot is
//     unique or j is zero.
//  3. Every surviving pivot (i, j) emits the pair
//     (birth = scale at i, death = scale at j), with the homology
//     dimension of the simplex at i. Every position that never becomes
//     a pivot is an unpaired, never-dying feature.
//
// The reduction is inherently sequential: whether column j needs
// further work depends on the already-reduced state of every earlier
// column. Everything here is pure, CPU-bound computation over
// function-local state — no engine-level state crosses calls, which is
// what makes independent Compute calls safe to run concurrently.
//
// ✨ Key features:
//   - Column-major sparse storage (sorted row-index sets per column),
//     constant-time pivot lookup via a pivot-owner table
//   - Compute validates first: either a complete, self-consistent set
//     of diagrams is produced, or a structured validation failure is
//     returned before reduction begins
//   - Betti numbers at a fixed scale: cheap graph connectivity for
//     dimensions 0 and 1, full reduction for dimensions ≥ 2
//   - An independent ∂∂ = 0 consistency oracle, off the hot path
//
// Complexity: reduction is O(n³) worst case over n filtration steps,
// near-linear on sparse practical inputs; the Vietoris–Rips enumeration
// feeding it usually dominates end to end.
package persistence
