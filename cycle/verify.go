package cycle

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/girth/core"
)

// Verify checks that c is a well-formed cycle of g: at least three vertices,
// every index in range, no repeats, and each consecutive pair (last→first
// included) adjacent. A nil Cycle is rejected as well; callers that accept
// "no cycle" should test Found first.
//
// Complexity: O(len(c)).
func Verify(g *core.Graph, c Cycle) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(c) < minCycleLen {
		return fmt.Errorf("%w: length %d < %d", ErrInvalidCycle, len(c), minCycleLen)
	}

	used := bitset.New(uint(g.Order()))
	for i, v := range c {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: position %d: vertex %d out of range", ErrInvalidCycle, i, v)
		}
		if used.Test(uint(v)) {
			return fmt.Errorf("%w: position %d: vertex %d repeated", ErrInvalidCycle, i, v)
		}
		used.Set(uint(v))
	}
	for i, v := range c {
		next := c[(i+1)%len(c)]
		if !g.HasEdge(v, next) {
			return fmt.Errorf("%w: no edge %d—%d", ErrInvalidCycle, v, next)
		}
	}

	return nil
}
