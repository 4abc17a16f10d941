package converters

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/girth/cycle"
)

// Report is the printable result of a cycle query. Overall is the graph-wide
// shortest cycle; Through is set only when a specific vertex was asked for.
// An absent cycle is rendered as an empty list.
type Report struct {
	Overall cycle.Cycle    `yaml:"overall,flow"`
	Through *ThroughReport `yaml:"through,omitempty"`
}

// ThroughReport holds the answer for one vertex.
type ThroughReport struct {
	Vertex int         `yaml:"vertex"`
	Cycle  cycle.Cycle `yaml:"cycle,flow"`
}

// EncodeCycle renders r as YAML.
func EncodeCycle(r Report) ([]byte, error) {
	if r.Overall == nil {
		r.Overall = cycle.Cycle{}
	}
	if r.Through != nil && r.Through.Cycle == nil {
		t := *r.Through
		t.Cycle = cycle.Cycle{}
		r.Through = &t
	}

	return marshal(r)
}

// marshal encodes v with two-space indentation.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
