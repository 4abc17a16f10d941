package cycle

import (
	"slices"

	"github.com/katalvlaran/girth/core"
)

// Finder answers cycle queries against one immutable Graph. The graph-wide
// shortest cycle is computed once by NewFinder and memoized; per-vertex
// queries run a fresh search on every call.
//
// A Finder is safe for concurrent use: its only state is written before
// NewFinder returns.
type Finder struct {
	graph   *core.Graph
	opts    []Option
	overall Cycle
}

// NewFinder computes the shortest cycle of g and returns a Finder holding it.
// opts apply to every search the Finder runs.
func NewFinder(g *core.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	overall, err := ShortestCycle(g, opts...)
	if err != nil {
		return nil, err
	}

	return &Finder{graph: g, opts: opts, overall: overall}, nil
}

// Graph returns the graph the Finder answers for.
func (f *Finder) Graph() *core.Graph { return f.graph }

// Overall returns a copy of the memoized graph-wide shortest cycle, or nil.
func (f *Finder) Overall() Cycle { return slices.Clone(f.overall) }

// Through recomputes the cycle through v. See ShortestCycleThrough.
func (f *Finder) Through(v int) (Cycle, error) {
	return ShortestCycleThrough(f.graph, v, f.opts...)
}

// ThroughClosest resolves the vertex nearest to (x, y) and returns it together
// with the cycle through it. On an empty graph it returns (core.None, nil, nil).
func (f *Finder) ThroughClosest(x, y float64) (int, Cycle, error) {
	v := f.graph.ClosestVertexTo(x, y)
	if v == core.None {
		return core.None, nil, nil
	}
	c, err := f.Through(v)

	return v, c, err
}
