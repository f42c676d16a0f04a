// Package pointcloud supplies the point-cloud side of the input boundary:
// points, metrics, pairwise distance matrices, and neighborhood graphs.
//
// 🚀 What is pointcloud?
//
//	The straightforward vectorized collaborator that feeds the topological
//	core: given n real-valued d-dimensional vectors it computes pairwise
//	distances and builds k-nearest-neighbor or ε-ball graphs whose weights
//	become filtration scales.
//
// ✨ Key features:
//   - Euclidean (default), Manhattan, and Chebyshev metrics
//   - Full pairwise distance matrix in one call
//   - kNN and ε-ball graph construction with strict input validation
//   - Deterministic synthetic clouds (circles, clusters) for tests,
//     benchmarks, and examples — same seed ⇒ identical cloud
//
// ⚙️ Usage:
//
//	pts := pointcloud.Circle(32, 1.0, 0.05, 42)
//	g, err := pointcloud.KNearestGraph(pts, 4, pointcloud.Euclidean)
//
// Complexity: DistanceMatrix O(n²·d); KNearestGraph O(n² log n);
// EpsilonGraph O(n²·d).
package pointcloud
