package cycle

import (
	"fmt"

	"github.com/katalvlaran/girth/core"
)

// ShortestCycleThrough searches for a short cycle starting at root.
// It returns nil (no error) when no two branches from root ever meet, which
// is always the case when root has fewer than two neighbors.
//
// On success c[0] == root, len(c) ≥ 3, all vertices are distinct and every
// consecutive pair, last→first included, is an edge of g.
//
// Returns ErrGraphNil for a nil graph and ErrRootNotFound when root is out
// of range.
func ShortestCycleThrough(g *core.Graph, root int, opts ...Option) (Cycle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("cycle: root %d, order %d: %w", root, g.Order(), ErrRootNotFound)
	}

	return newWalker(g, resolve(opts)).run(root), nil
}

// ShortestCycle runs ShortestCycleThrough from every vertex in index order and
// keeps the first strictly shorter result. It returns nil when g has no cycle
// the search can detect, including the empty graph.
func ShortestCycle(g *core.Graph, opts ...Option) (Cycle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := resolve(opts)
	w := newWalker(g, o)
	var best Cycle
	for v := 0; v < g.Order(); v++ {
		if c := w.run(v); Shorter(c, best) {
			best = c
		}
	}
	o.Logger.Debug("shortest cycle",
		"vertices", g.Order(),
		"edges", g.Size(),
		"found", best.Found(),
		"length", len(best),
	)

	return best, nil
}
