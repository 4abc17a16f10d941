package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/girth/builder"
	"github.com/katalvlaran/girth/converters"
	"github.com/katalvlaran/girth/core"
	"github.com/katalvlaran/girth/cycle"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g, err := builder.NewRandom(15, 0.3, builder.WithSeed(9))
	require.NoError(t, err)

	data, err := converters.Encode(g)
	require.NoError(t, err)

	back, err := converters.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, g.Points(), back.Points())
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.AdjacencyMatrix(), back.AdjacencyMatrix())
}

func TestDecode_Document(t *testing.T) {
	src := []byte(`
vertices:
  - {x: 0.1, y: 0.1}
  - {x: 0.9, y: 0.1}
  - {x: 0.5, y: 0.9}
edges:
  - [0, 1]
  - [2, 1]
  - [0, 2]
`)
	g, err := converters.Decode(src)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, g.Edges())

	p, err := g.Point(2)
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 0.5, Y: 0.9}, p)

	c, err := cycle.ShortestCycleThrough(g, 0)
	require.NoError(t, err)
	assert.Len(t, c, 3)
}

func TestDecode_Empty(t *testing.T) {
	g, err := converters.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, core.None, g.ClosestVertexTo(0.5, 0.5))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"syntax", "vertices: [", converters.ErrDecode},
		{"wrong type", "vertices: 3", converters.ErrDecode},
		{"point outside square", "vertices: [{x: 1.5, y: 0}]", core.ErrPointOutOfRange},
		{"short edge", "vertices: [{x: 0, y: 0}, {x: 1, y: 1}]\nedges: [[0]]", converters.ErrMalformedEdge},
		{"edge out of range", "vertices: [{x: 0, y: 0}]\nedges: [[0, 1]]", core.ErrVertexNotFound},
		{"self loop", "vertices: [{x: 0, y: 0}]\nedges: [[0, 0]]", core.ErrLoopNotAllowed},
		{"duplicate", "vertices: [{x: 0, y: 0}, {x: 1, y: 1}]\nedges: [[0, 1], [1, 0]]", core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := converters.Decode([]byte(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode_Nil(t *testing.T) {
	_, err := converters.Encode(nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
}

func TestEncodeCycle(t *testing.T) {
	data, err := converters.EncodeCycle(converters.Report{
		Overall: cycle.Cycle{5, 6, 7},
		Through: &converters.ThroughReport{Vertex: 2, Cycle: cycle.Cycle{2, 1, 0, 4, 3}},
	})
	require.NoError(t, err)

	var back converters.Report
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, cycle.Cycle{5, 6, 7}, back.Overall)
	require.NotNil(t, back.Through)
	assert.Equal(t, 2, back.Through.Vertex)
	assert.Equal(t, cycle.Cycle{2, 1, 0, 4, 3}, back.Through.Cycle)
}

func TestEncodeCycle_NoCycle(t *testing.T) {
	through := &converters.ThroughReport{Vertex: 0}
	data, err := converters.EncodeCycle(converters.Report{Through: through})
	require.NoError(t, err)
	assert.Contains(t, string(data), "overall: []")
	assert.Contains(t, string(data), "cycle: []")
	assert.Nil(t, through.Cycle, "caller's report is left untouched")

	data, err = converters.EncodeCycle(converters.Report{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "through")
}
