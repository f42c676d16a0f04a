// Package fragility measures how stable a dataset's topology is under
// small perturbations: remove one point (or jitter one edge weight) at
// a time, recompute persistence, and score the diagram shift.
//
// 🚀 What is fragility?
//
//	A straightforward repeated caller of the core pipeline. The score
//	of point i is the bottleneck distance between the baseline diagram
//	and the diagram of the cloud with point i removed; a large score
//	means the topology leans on that point.
//
// ✨ Key features:
//   - Leave-one-out point-removal scores over point clouds
//   - Per-edge weight-perturbation scores over weighted graphs
//   - The N independent recomputations are embarrassingly parallel —
//     no state crosses Compute calls — and fan out across a bounded
//     worker pool
//   - Summarize picks the most and least fragile indices
//
// ⚙️ Usage:
//
//	scores, err := fragility.PointRemovalScores(points,
//	    fragility.WithHomologyDimension(1),
//	    fragility.WithParallelism(4))
//	s := fragility.Summarize(scores)
//
// ⚠️ Each score costs one full pipeline run; the total is N+1 runs of
// VietorisRips + Compute. Cap cloud size and dimension accordingly.
package fragility
