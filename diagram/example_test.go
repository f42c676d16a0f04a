package diagram_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/homotopia/diagram"
)

// ExampleDiagram_FilterByPersistence keeps the one significant loop of a
// noisy diagram and discards near-diagonal clutter.
func ExampleDiagram_FilterByPersistence() {
	d := diagram.Diagram{
		Dimension: 1,
		Pairs: []diagram.Pair{
			{Birth: 0.1, Death: 0.12},
			{Birth: 0.9, Death: 1.8},
			{Birth: 0.3, Death: 0.31},
		},
	}
	significant, err := d.FilterByPersistence(0.5, math.Inf(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("kept:", len(significant.Pairs))
	fmt.Printf("loop: [%.1f, %.1f]\n", significant.Pairs[0].Birth, significant.Pairs[0].Death)
	// Output:
	// kept: 1
	// loop: [0.9, 1.8]
}

// ExampleBottleneckDistance compares two diagrams that differ in a single
// feature shifted by 0.2 in both coordinates.
func ExampleBottleneckDistance() {
	a := diagram.Diagram{Dimension: 1, Pairs: []diagram.Pair{{Birth: 1.0, Death: 2.0}}}
	b := diagram.Diagram{Dimension: 1, Pairs: []diagram.Pair{{Birth: 1.2, Death: 2.2}}}
	fmt.Printf("%.2f\n", diagram.BottleneckDistance(a, b))
	// Output:
	// 0.20
}

// ExampleDiagram_PersistenceLandscape evaluates the first landscape of a
// single interval: a tent peaking at the interval midpoint.
func ExampleDiagram_PersistenceLandscape() {
	d := diagram.Diagram{Dimension: 1, Pairs: []diagram.Pair{{Birth: 0, Death: 2}}}
	values, err := d.PersistenceLandscape([]float64{0, 0.5, 1, 1.5, 2}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(values)
	// Output:
	// [0 0.5 1 0.5 0]
}
