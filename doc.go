// Package homotopia is an in-memory toolkit for topological data analysis —
// from point clouds and weighted graphs all the way to persistence diagrams.
//
// 🚀 What is homotopia?
//
//	A pure-Go library that computes persistent homology: it grows a
//	simplicial complex across scale (a filtration), reduces the boundary
//	relationships over GF(2), and reports when topological features —
//	connected components, loops, voids — are born and when they die.
//
// ✨ Why choose homotopia?
//
//   - Exact discrete algorithms — deterministic results, no sampling
//   - Pure values everywhere — no shared state, safe to parallelize across calls
//   - Sentinel errors matched with errors.Is, never opaque strings
//   - Pure Go — no cgo, a thin and honest dependency surface
//
// Under the hood, everything is organized in dependency order:
//
//	graph/       — weighted undirected graphs (vertex set + weighted edges)
//	pointcloud/  — points, metrics, distance matrices, kNN / ε-ball graphs
//	simplex/     — canonical k-simplices, faces, boundaries, clique complexes
//	filtration/  — Vietoris–Rips and graph filtrations, validity checks
//	persistence/ — sparse GF(2) boundary matrices, reduction, Betti numbers
//	diagram/     — diagram statistics, distances, landscapes, transforms
//	fragility/   — stability of diagrams under point removal / edge jitter
//
// Quick ASCII example:
//
//	    •───•
//	    │   │        four points on a square: one component (β0=1)
//	    •───•        and one loop (β1=1) until the square fills in.
//
// Dive into each package's doc.go for algorithm walkthroughs, complexity
// notes, and runnable examples.
package homotopia
