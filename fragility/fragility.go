package fragility

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/homotopia/diagram"
	"github.com/katalvlaran/homotopia/filtration"
	"github.com/katalvlaran/homotopia/graph"
	"github.com/katalvlaran/homotopia/persistence"
	"github.com/katalvlaran/homotopia/pointcloud"
)

// PointRemovalScores computes the leave-one-out fragility of every
// point: scores[i] is the bottleneck distance between the baseline
// diagram (all points, homology dimension per options) and the diagram
// of the cloud with point i removed.
//
// The N recomputations are independent full-pipeline runs and execute
// in parallel on a bounded worker pool; no state is shared between
// them beyond the read-only input cloud.
//
// Errors: ErrTooFewPoints, ErrBadDimension, plus anything the pipeline
// itself reports.
//
// Complexity: N+1 × (VietorisRips + Compute).
func PointRemovalScores(points []pointcloud.Point, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	base, err := diagramOf(points, o)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(points))
	var grp errgroup.Group
	grp.SetLimit(o.parallelism)
	for i := range points {
		i := i
		grp.Go(func() error {
			reduced := make([]pointcloud.Point, 0, len(points)-1)
			reduced = append(reduced, points[:i]...)
			reduced = append(reduced, points[i+1:]...)
			d, err := diagramOf(reduced, o)
			if err != nil {
				return err
			}
			scores[i] = diagram.BottleneckDistance(base, d)

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}

// EdgeScore is the fragility of one graph edge.
type EdgeScore struct {
	// U, V are the edge endpoints, U < V.
	U, V int

	// Score is the bottleneck shift caused by perturbing the edge.
	Score float64
}

// EdgePerturbationScores perturbs every edge weight by delta (clamped
// at zero) and scores the resulting diagram shift against the
// unperturbed baseline. Results follow g.Edges() order.
//
// Errors: ErrNilGraph, ErrNoEdges, ErrBadDelta, ErrBadDimension, plus
// pipeline errors.
//
// Complexity: E+1 × (FromGraph + Compute).
func EdgePerturbationScores(g *graph.Graph, delta float64, opts ...Option) ([]EdgeScore, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, ErrBadDelta
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	base, err := graphDiagramOf(g, o)
	if err != nil {
		return nil, err
	}

	scores := make([]EdgeScore, len(edges))
	var grp errgroup.Group
	grp.SetLimit(o.parallelism)
	for i, e := range edges {
		i, e := i, e
		grp.Go(func() error {
			perturbed := g.Clone()
			w := e.Weight + delta
			if w < 0 {
				w = 0
			}
			if err := perturbed.AddEdge(e.U, e.V, w); err != nil {
				return err
			}
			d, err := graphDiagramOf(perturbed, o)
			if err != nil {
				return err
			}
			scores[i] = EdgeScore{U: e.U, V: e.V, Score: diagram.BottleneckDistance(base, d)}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}

// Summary condenses a score vector.
type Summary struct {
	// MostFragile is the index of the largest score (-1 if empty).
	MostFragile int

	// LeastFragile is the index of the smallest score (-1 if empty).
	LeastFragile int

	// Max, Min, Mean describe the score distribution.
	Max, Min, Mean float64
}

// Summarize picks the extreme indices and distribution stats of a
// score vector. Ties resolve to the smallest index.
//
// Complexity: O(n).
func Summarize(scores []float64) Summary {
	if len(scores) == 0 {
		return Summary{MostFragile: -1, LeastFragile: -1}
	}

	return Summary{
		MostFragile:  floats.MaxIdx(scores),
		LeastFragile: floats.MinIdx(scores),
		Max:          floats.Max(scores),
		Min:          floats.Min(scores),
		Mean:         stat.Mean(scores, nil),
	}
}

// diagramOf runs the point-cloud pipeline and selects the homology
// dimension under study (an empty diagram when the complex is too
// small to reach it).
func diagramOf(points []pointcloud.Point, o options) (diagram.Diagram, error) {
	f, err := filtration.VietorisRips(points, o.metric, o.maxDimension)
	if err != nil {
		return diagram.Diagram{}, err
	}

	return selectDimension(f, o.homologyDim)
}

// graphDiagramOf is the graph-filtration counterpart of diagramOf.
func graphDiagramOf(g *graph.Graph, o options) (diagram.Diagram, error) {
	f, err := filtration.FromGraph(g, o.maxDimension)
	if err != nil {
		return diagram.Diagram{}, err
	}

	return selectDimension(f, o.homologyDim)
}

// selectDimension computes persistence and picks one diagram.
func selectDimension(f filtration.Filtration, dim int) (diagram.Diagram, error) {
	diagrams, err := persistence.Compute(f)
	if err != nil {
		return diagram.Diagram{}, err
	}
	if dim >= len(diagrams) {
		return diagram.Diagram{Dimension: dim}, nil
	}

	return diagrams[dim], nil
}
