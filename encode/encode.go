// Package encode renders loaded maps as text, JSON or YAML.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/zaidmade/tmx/format"
	"github.com/zaidmade/tmx/ir"
)

type EncState struct {
	depth    int
	maxDepth int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{maxDepth: -1}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.TextFormat:
		return encodeText(node, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// encodeText writes one line per node and one line per variable, indented
// by a tab per level:
//
//	<layer>
//		name: ground
//		<data> = `1,2,3,4`
//			encoding: csv
func encodeText(node *ir.Node, w io.Writer, es *EncState) error {
	indent := strings.Repeat("\t", es.depth)
	line := indent + es.color(ir.StringType, TagColor, "<"+node.Tag.String()+">")
	if node.Data != nil {
		line += es.color(ir.StringType, SepColor, " = ") +
			es.color(ir.StringType, DataColor, "`"+node.Data.Value+"`")
	}
	if err := writeString(w, line+"\n"); err != nil {
		return err
	}
	for _, nv := range node.Vars {
		attr := NameColor
		if strings.HasPrefix(nv.Name, ir.PropMarker) {
			attr = PropColor
		}
		line := indent + "\t" + es.color(nv.Value.Type, attr, nv.Name) +
			es.color(nv.Value.Type, SepColor, ": ") +
			es.color(nv.Value.Type, ValueColor, nv.Value.Text)
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	if es.maxDepth >= 0 && es.depth >= es.maxDepth {
		return nil
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, c := range node.Children {
		if err := encodeText(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
