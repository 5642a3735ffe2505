package tmx

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zaidmade/tmx/ir"
	"github.com/zaidmade/tmx/parse"
)

const level = `<map width="4" height="3">
 <properties><property name="title" value="demo"/></properties>
 <tileset firstgid="1" name="t"/>
 <layer name="a"><data encoding="csv">1,2,3,4</data></layer>
 <layer name="b"><data encoding="base64">AQAAAA==</data></layer>
 <objectgroup><object id="1"/></objectgroup>
</map>`

func read(t *testing.T, opts ...parse.ParseOption) *Document {
	t.Helper()
	opts = append(opts, parse.WithLogger(slog.New(slog.DiscardHandler)))
	doc, err := Read(strings.NewReader(level), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func tags(n *Node) []string {
	var res []string
	var c Node
	for n.NextChild(&c) {
		res = append(res, c.Tag().String())
	}
	return res
}

func TestDocument(t *testing.T) {
	doc := read(t)
	defer doc.Close()
	m, err := doc.Map()
	if err != nil {
		t.Fatal(err)
	}
	if m.Tag() != ir.MapTag {
		t.Fatalf("root is %s", m.Tag())
	}
	if v, err := m.Attr("width"); err != nil || v.Text != "4" || v.Type != ir.IntegerType {
		t.Errorf("width %v %v", v, err)
	}
	if v, err := m.Prop("title"); err != nil || v.Text != "demo" {
		t.Errorf("title %v %v", v, err)
	}
	if _, err := m.Prop("width"); !errors.Is(err, ir.ErrVarNotFound) {
		t.Errorf("width as a property: %v", err)
	}
	if len(doc.Issues()) != 1 {
		t.Errorf("issues %v", doc.Issues())
	}
	if m.Len() != 4 {
		t.Errorf("len %d", m.Len())
	}
}

func TestNextChildRestarts(t *testing.T) {
	doc := read(t)
	defer doc.Close()
	m, _ := doc.Map()
	want := []string{"tileset", "layer", "layer", "objectgroup"}
	for i := 0; i < 2; i++ {
		if diff := cmp.Diff(want, tags(m)); diff != "" {
			t.Errorf("pass %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestNodeData(t *testing.T) {
	doc := read(t)
	defer doc.Close()
	m, _ := doc.Map()

	var c, d Node
	m.NextChild(&c)
	if got := c.Data(); got != ir.NoData {
		t.Errorf("tileset data %+v", got)
	}
	m.NextChild(&c)
	if !c.NextChild(&d) || d.Tag() != ir.DataTag {
		t.Fatalf("layer a has no data child")
	}
	if got := c.Data(); got != ir.NoData {
		t.Errorf("layer data %+v", got)
	}
	want := ir.RawData{Value: "1,2,3,4", Encoding: ir.CSVEncoding, Compression: ir.NoCompression}
	if got := d.Data(); got != want {
		t.Errorf("got %+v want %+v", got, want)
	}
	m.NextChild(&c)
	c.NextChild(&d)
	if got := d.Data(); got != ir.NoData {
		t.Errorf("unloaded base64 data %+v", got)
	}
	m.NextChild(&c)
	if m.NextChild(&c) {
		t.Error("more than 4 children")
	}
}

func TestDecodeBinaryDocument(t *testing.T) {
	doc := read(t, parse.DecodeBinary(true))
	defer doc.Close()
	n, err := doc.IR().GetPath("$.layer[1].data")
	if err != nil || n == nil {
		t.Fatalf("%v %v", n, err)
	}
	if got := View(n).Data().Value; got != "1" {
		t.Errorf("got %q", got)
	}
	if len(doc.Issues()) != 0 {
		t.Errorf("issues %v", doc.Issues())
	}
}

func TestClose(t *testing.T) {
	doc := read(t)
	root := doc.IR()
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Map(); !errors.Is(err, ErrClosed) {
		t.Errorf("Map after close: %v", err)
	}
	if doc.IR() != nil || doc.Issues() != nil {
		t.Error("closed document still holds state")
	}
	if len(root.Children) != 0 || root.Vars != nil {
		t.Errorf("tree not released: %+v", root)
	}
	if err := doc.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestOpen(t *testing.T) {
	doc, err := Open("parse/testdata/level.tmx", parse.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()
	m, _ := doc.Map()
	if got := tags(m); len(got) != 6 {
		t.Errorf("children %v", got)
	}
	if _, err := Open("parse/testdata/nosuch.tmx"); err == nil {
		t.Error("opened a missing file")
	}
	if _, err := Read(strings.NewReader(`<tileset/>`)); !errors.Is(err, parse.ErrNoMap) {
		t.Errorf("tileset root: %v", err)
	}
}

func TestFromIR(t *testing.T) {
	root := ir.New(ir.MapTag)
	root.AddChild(ir.LayerTag)
	doc := FromIR(root)
	m, err := doc.Map()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"layer"}, tags(m)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
