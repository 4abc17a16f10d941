// SPDX-License-Identifier: MIT
// Package: girth/converters
//
// yaml.go — Document, Encode and Decode for positioned graphs.

package converters

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/girth/core"
)

// Sentinel errors for document conversion.
var (
	// ErrGraphNil is returned when Encode receives a nil graph.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrMalformedEdge is returned when an edge entry does not hold exactly
	// two endpoints.
	ErrMalformedEdge = errors.New("converters: edge must have two endpoints")

	// ErrDecode wraps YAML syntax and type errors.
	ErrDecode = errors.New("converters: cannot decode document")
)

// Document is the serialized form of a core.Graph.
type Document struct {
	Vertices []core.Point `yaml:"vertices"`
	Edges    [][]int      `yaml:"edges"`
}

// FromGraph captures g as a Document. Edges are listed as (u, v) with u < v
// in ascending order of u, then v.
func FromGraph(g *core.Graph) (Document, error) {
	if g == nil {
		return Document{}, ErrGraphNil
	}
	edges := g.Edges()
	doc := Document{
		Vertices: g.Points(),
		Edges:    make([][]int, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = []int{e[0], e[1]}
	}

	return doc, nil
}

// Graph stages the document into a core.Draft and freezes it. Range, loop,
// duplicate and unit-square violations surface as wrapped core errors.
func (doc Document) Graph() (*core.Graph, error) {
	d := core.NewDraft(len(doc.Vertices))
	for i, p := range doc.Vertices {
		if _, err := d.AddVertex(p); err != nil {
			return nil, fmt.Errorf("converters: vertex %d: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("converters: edge %d has %d endpoints: %w", i, len(e), ErrMalformedEdge)
		}
		if err := d.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("converters: edge %d (%d,%d): %w", i, e[0], e[1], err)
		}
	}

	return d.Freeze(), nil
}

// Encode renders g as a YAML graph document.
func Encode(g *core.Graph) ([]byte, error) {
	doc, err := FromGraph(g)
	if err != nil {
		return nil, err
	}

	return marshal(doc)
}

// Decode parses a YAML graph document and builds the graph it describes.
// An empty input yields an empty graph.
func Decode(data []byte) (*core.Graph, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return doc.Graph()
}
