// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations, verifying counts, topology and determinism.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/girth/builder"
	"github.com/katalvlaran/girth/core"
)

// requireWellFormed checks symmetry, loop-freedom and unit-square positions.
func requireWellFormed(t *testing.T, g *core.Graph) {
	t.Helper()
	m := g.AdjacencyMatrix()
	for i := range m {
		require.False(t, m[i][i], "self-loop at %d", i)
		for j := range m[i] {
			require.Equal(t, m[i][j], m[j][i], "asymmetry at (%d,%d)", i, j)
		}
	}
	for i, p := range g.Points() {
		require.True(t, p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1, "vertex %d at %+v", i, p)
	}
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "ring edge %d", i)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(3, 0), "path is open")
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				assert.Equal(t, 4, d, "hub is vertex 0")
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(4)
				require.NoError(t, err)
				assert.Equal(t, 4, d, "hub is staged last")
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1), "no edges inside the left side")
				assert.False(t, g.HasEdge(2, 3), "no edges inside the right side")
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(0, 3))
				assert.False(t, g.HasEdge(2, 3), "no wrap-around between rows")
			},
		},
		{name: "Empty(3)", ctor: builder.Empty(3), wantV: 3, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			requireWellFormed(t, g)
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuildGraph_Composition checks that constructors append after each other.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.True(t, g.HasEdge(3, 4), "path shifted past the triangle")
	assert.False(t, g.HasEdge(2, 3), "components stay disconnected")
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Empty(-1)", builder.Empty(-1), builder.ErrTooFewVertices},
		{"RandomSparse(-1)", builder.RandomSparse(-1, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Properties(t *testing.T) {
	t.Run("symmetric and seeded", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, err := builder.NewRandom(12, 0.3, builder.WithSeed(seed))
			require.NoError(t, err)
			assert.Equal(t, 12, g.Order())
			requireWellFormed(t, g)
			for i, p := range g.Points() {
				assert.True(t, p.X >= builder.DefaultMargin && p.X <= 1-builder.DefaultMargin, "vertex %d x=%g", i, p.X)
				assert.True(t, p.Y >= builder.DefaultMargin && p.Y <= 1-builder.DefaultMargin, "vertex %d y=%g", i, p.Y)
			}
		}
	})

	t.Run("deterministic per seed", func(t *testing.T) {
		a, err := builder.NewRandom(15, 0.25, builder.WithSeed(7))
		require.NoError(t, err)
		b, err := builder.NewRandom(15, 0.25, builder.WithRand(rand.New(rand.NewSource(7))))
		require.NoError(t, err)
		assert.Equal(t, a.Edges(), b.Edges())
		assert.Equal(t, a.Points(), b.Points())
	})

	t.Run("density extremes", func(t *testing.T) {
		none, err := builder.NewRandom(6, 0)
		require.NoError(t, err)
		assert.Zero(t, none.Size())

		all, err := builder.NewRandom(6, 1)
		require.NoError(t, err)
		assert.Equal(t, 15, all.Size())
	})

	t.Run("zero vertices", func(t *testing.T) {
		g, err := builder.NewRandom(0, 0.5)
		require.NoError(t, err)
		assert.Zero(t, g.Order())
		assert.Equal(t, core.None, g.ClosestVertexTo(0.5, 0.5))
	})
}
