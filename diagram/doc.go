// Package diagram analyzes persistence diagrams: the (birth, death)
// multisets produced by the persistence engine, one per homology
// dimension.
//
// 🚀 What is diagram?
//
//	Pure functions over immutable diagram values — lifespans, summary
//	statistics, filtering, comparison metrics, and the persistence
//	landscape functional transform. No function here mutates its input.
//
// ✨ Key features:
//   - Persistence (death − birth) per pair, with an explicit infinite marker
//   - Count / total / max / mean / entropy over finite, non-zero pairs,
//     with explicit guards producing 0 instead of NaN on degenerate input
//   - Greedy bottleneck and Wasserstein comparison — symmetric and
//     non-negative by construction, documented as an approximation
//   - Persistence landscapes λ_k(t) via tent functions
//   - ProjectInfinite caps never-dying features for downstream tooling
//   - JSON interop as (dimension, list-of-(birth, death)) records
//
// ⚙️ Usage:
//
//	stats := d.SummaryStatistics()
//	dist := diagram.BottleneckDistance(d1, d2)
//	curve, err := d.PersistenceLandscape(ts, 1)
//
// ⚠️ The comparison metrics use a greedy, non-optimal matching: each
// diagram is extended with the diagonal projections of the other's
// points, and every point is charged its cheapest counterpart. This is
// not guaranteed to equal the true minimum-cost matching; an exact
// min-cost bipartite matching is a reasonable drop-in upgrade and would
// be exposed under a separate, explicitly-named operation.
package diagram
