package encode

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/zaidmade/tmx/ir"
)

type outNode struct {
	Tag        string     `json:"tag" yaml:"tag"`
	Attributes *outVars   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Properties *outVars   `json:"properties,omitempty" yaml:"properties,omitempty"`
	Data       *outData   `json:"data,omitempty" yaml:"data,omitempty"`
	Children   []*outNode `json:"children,omitempty" yaml:"children,omitempty"`
}

type outData struct {
	Value       string `json:"value" yaml:"value"`
	Encoding    string `json:"encoding" yaml:"encoding"`
	Compression string `json:"compression" yaml:"compression"`
}

// outVars keeps document order in both JSON and YAML objects.
type outVars []ir.NamedValue

func varsOf(vs []ir.NamedValue) *outVars {
	if len(vs) == 0 {
		return nil
	}
	res := outVars(vs)
	return &res
}

func (vs outVars) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'{'})
	for i, nv := range vs {
		if i != 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(nv.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(nv.Value.Native())
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (vs outVars) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, len(vs))
	for i, nv := range vs {
		res[i] = yaml.MapItem{Key: nv.Name, Value: nv.Value.Native()}
	}
	return res, nil
}

func toOut(node *ir.Node, es *EncState, depth int) *outNode {
	res := &outNode{
		Tag:        node.Tag.String(),
		Attributes: varsOf(node.Attrs()),
		Properties: varsOf(node.Props()),
	}
	if node.Data != nil {
		res.Data = &outData{
			Value:       node.Data.Value,
			Encoding:    node.Data.Encoding.String(),
			Compression: node.Data.Compression.String(),
		}
	}
	if es.maxDepth >= 0 && depth >= es.maxDepth {
		return res
	}
	for _, c := range node.Children {
		res.Children = append(res.Children, toOut(c, es, depth+1))
	}
	return res
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := json.Marshal(toOut(node, es, 0))
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(make([]byte, 0, 2*len(d)))
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := yaml.Marshal(toOut(node, es, 0))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
