// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for girth/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girth/core"
)

// Common positions used across core tests.
var (
	PointLow  = core.Point{X: 0.1, Y: 0.1}
	PointHigh = core.Point{X: 0.9, Y: 0.9}
	PointMid  = core.Point{X: 0.5, Y: 0.5}
)

// mustDraft stages n vertices at PointMid and connects the given pairs.
func mustDraft(t *testing.T, n int, edges ...[2]int) *core.Draft {
	t.Helper()
	d := core.NewDraft(n)
	for i := 0; i < n; i++ {
		_, err := d.AddVertex(PointMid)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, d.AddEdge(e[0], e[1]))
	}

	return d
}

// mustGraph is mustDraft followed by Freeze.
func mustGraph(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()

	return mustDraft(t, n, edges...).Freeze()
}

// requireSymmetric asserts the adjacency invariants on every pair.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	m := g.AdjacencyMatrix()
	for i := range m {
		require.False(t, m[i][i], "self-loop at %d", i)
		for j := range m[i] {
			require.Equal(t, m[i][j], m[j][i], "asymmetry at (%d,%d)", i, j)
		}
	}
}
