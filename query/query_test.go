package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zaidmade/tmx/ir"
)

func queryTree() *ir.Node {
	m := ir.New(ir.MapTag)
	m.SetAttr("width", ir.V("2", ir.IntegerType))
	l := m.AddChild(ir.LayerTag)
	l.SetAttr("name", ir.V("ground", ir.StringType))
	l.SetAttr("opacity", ir.V("0.5", ir.DecimalType))
	l.Set("solid", ir.V("true", ir.BoolType), ir.PropSpace, false)
	d := l.AddChild(ir.DataTag)
	d.Data = &ir.RawData{Value: "1,2,3,4", Encoding: ir.CSVEncoding}
	g := m.AddChild(ir.ObjectGroupTag)
	for _, typ := range []string{"spawn", "coin", "spawn"} {
		o := g.AddChild(ir.ObjectTag)
		o.SetAttr("type", ir.V(typ, ir.StringType))
	}
	return m
}

func paths(hits []Hit) []string {
	res := []string{}
	for _, h := range hits {
		res = append(res, h.Path)
	}
	return res
}

func TestFind(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{
			expr: `tag == "object" && attr.type == "spawn"`,
			want: []string{"$.objectgroup[0].object[0]", "$.objectgroup[0].object[2]"},
		},
		{
			expr: `tag == "layer" && attr.opacity < 1`,
			want: []string{"$.layer[0]"},
		},
		{
			expr: `prop.solid == true`,
			want: []string{"$.layer[0]"},
		},
		{
			expr: `gidCount() == 4`,
			want: []string{"$.layer[0].data[0]"},
		},
		{
			expr: `data != ""`,
			want: []string{"$.layer[0].data[0]"},
		},
		{
			expr: `depth == 0`,
			want: []string{"$"},
		},
		{
			expr: `has("width")`,
			want: []string{"$"},
		},
		{
			expr: `path == "$.objectgroup[0]"`,
			want: []string{"$.objectgroup[0]"},
		},
		{
			expr: `tag == "tileset"`,
			want: []string{},
		},
	}
	m := queryTree()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			q, err := Compile(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			hits, err := Find(m, q)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, paths(hits)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{
		`tag ==`,
		`tag`,
		`nosuch == 1`,
		`has(1)`,
	} {
		t.Run(src, func(t *testing.T) {
			if _, err := Compile(src); !errors.Is(err, ErrQuery) {
				t.Errorf("got %v want %v", err, ErrQuery)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	q, err := Compile(`attr.name == "ground"`)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != `attr.name == "ground"` {
		t.Errorf("String() = %q", q)
	}
	m := queryTree()
	ok, err := q.Match("$.layer[0]", m.Children[0], 1)
	if err != nil || !ok {
		t.Errorf("layer: %t %v", ok, err)
	}
	ok, err = q.Match("$", m, 0)
	if err != nil || ok {
		t.Errorf("map: %t %v", ok, err)
	}
}
