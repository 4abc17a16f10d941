package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/girth/builder"
	"github.com/katalvlaran/girth/core"
	"github.com/katalvlaran/girth/cycle"
)

// ExampleShortestCycleThrough finds the square A–B–C–D–A from A.
func ExampleShortestCycleThrough() {
	d := core.NewDraft(4)
	for i := 0; i < 4; i++ {
		_, _ = d.AddVertex(core.Point{X: 0.5, Y: 0.5})
	}
	_ = d.AddEdge(0, 1)
	_ = d.AddEdge(1, 2)
	_ = d.AddEdge(2, 3)
	_ = d.AddEdge(3, 0)

	c, err := cycle.ShortestCycleThrough(d.Freeze(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c, c.Closed())
	// Output:
	// [0 3 2 1] [0 3 2 1 0]
}

// ExampleFinder shows the hover workflow: the graph-wide cycle is ready after
// NewFinder, and pointer positions resolve to per-vertex cycles.
func ExampleFinder() {
	// A 5-ring (vertices 0..4) next to a triangle (vertices 5..7).
	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Complete(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	f, err := cycle.NewFinder(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("overall:", f.Overall())

	c, _ := f.Through(2)
	fmt.Println("through 2:", c)
	// Output:
	// overall: [5 6 7]
	// through 2: [2 1 0 4 3]
}
