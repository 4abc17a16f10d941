package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girth/core"
)

// graphOf stages n vertices at the center and connects the given pairs.
func graphOf(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	d := core.NewDraft(n)
	for i := 0; i < n; i++ {
		_, err := d.AddVertex(core.Point{X: 0.5, Y: 0.5})
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, d.AddEdge(e[0], e[1]))
	}

	return d.Freeze()
}

// sameCycle reports whether b is a rotation or reflection of a.
func sameCycle(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	for shift := 0; shift < n; shift++ {
		fwd, bwd := true, true
		for i := 0; i < n; i++ {
			if a[i] != b[(shift+i)%n] {
				fwd = false
			}
			if a[i] != b[(shift-i+n)%n] {
				bwd = false
			}
		}
		if fwd || bwd {
			return true
		}
	}

	return false
}
