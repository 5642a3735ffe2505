package parse

import (
	"bytes"
	"encoding/base64"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zaidmade/tmx/ir"
)

func attrText(t *testing.T, n *ir.Node, name string) string {
	t.Helper()
	v, err := n.Attr(name)
	if err != nil {
		t.Fatalf("%s.%s: %v", n.Tag, name, err)
	}
	return v.Text
}

func loadLevel(t *testing.T, opts ...ParseOption) *ir.Node {
	t.Helper()
	opts = append(opts, WithLogger(slog.New(slog.DiscardHandler)))
	m, err := File("testdata/level.tmx", opts...)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func mustGet(t *testing.T, m *ir.Node, path string) *ir.Node {
	t.Helper()
	n, err := m.GetPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if n == nil {
		t.Fatalf("nothing at %s", path)
	}
	return n
}

func TestLevelStructure(t *testing.T) {
	m := loadLevel(t)
	var tags []string
	for _, c := range m.Children {
		tags = append(tags, c.Tag.String())
	}
	want := []string{"tileset", "layer", "layer", "layer", "objectgroup", "imagelayer"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("map children (-want +got):\n%s", diff)
	}
	ts := mustGet(t, m, "$.tileset")
	tags = tags[:0]
	for _, c := range ts.Children {
		tags = append(tags, c.Tag.String())
	}
	if diff := cmp.Diff([]string{"tileoffset", "image", "tile"}, tags); diff != "" {
		t.Errorf("tileset children (-want +got):\n%s", diff)
	}
	if n := len(mustGet(t, m, "$.tileset.image").Children); n != 0 {
		t.Errorf("image without data element has %d children", n)
	}
}

func TestMapVars(t *testing.T) {
	m := loadLevel(t)
	want := []ir.NamedValue{
		{Name: "version", Value: ir.V("1.10", ir.StringType)},
		{Name: "orientation", Value: ir.V("orthogonal", ir.StringType)},
		{Name: "renderorder", Value: ir.V("right-down", ir.StringType)},
		{Name: "width", Value: ir.V("2", ir.IntegerType)},
		{Name: "height", Value: ir.V("2", ir.IntegerType)},
		{Name: "tilewidth", Value: ir.V("16", ir.IntegerType)},
		{Name: "tileheight", Value: ir.V("16", ir.IntegerType)},
		{Name: "nextobjectid", Value: ir.V("3", ir.IntegerType)},
	}
	if diff := cmp.Diff(want, m.Attrs()); diff != "" {
		t.Errorf("attrs (-want +got):\n%s", diff)
	}
	wantProps := []ir.NamedValue{
		{Name: "title", Value: ir.V("First Level", ir.StringType)},
		{Name: "gravity", Value: ir.V("9.8", ir.DecimalType)},
		{Name: "lives", Value: ir.V("3", ir.IntegerType)},
		{Name: "night", Value: ir.V("true", ir.BoolType)},
		{Name: "tint", Value: ir.V("#ff336699", ir.StringType)},
		{Name: "intro", Value: ir.V("Welcome\ntraveller", ir.StringType)},
	}
	if diff := cmp.Diff(wantProps, m.Props()); diff != "" {
		t.Errorf("props (-want +got):\n%s", diff)
	}
}

func TestDefaults(t *testing.T) {
	m := loadLevel(t)
	ground := mustGet(t, m, "$.layer[0]")
	want := []ir.NamedValue{
		{Name: "name", Value: ir.V("ground", ir.StringType)},
		{Name: "x", Value: ir.V("0", ir.IntegerType)},
		{Name: "y", Value: ir.V("0", ir.IntegerType)},
		{Name: "width", Value: ir.V("2", ir.IntegerType)},
		{Name: "height", Value: ir.V("2", ir.IntegerType)},
		{Name: "opacity", Value: ir.V("1", ir.DecimalType)},
		{Name: "visible", Value: ir.V("1", ir.BoolType)},
		{Name: "offsetx", Value: ir.V("0", ir.IntegerType)},
		{Name: "offsety", Value: ir.V("0", ir.IntegerType)},
	}
	if diff := cmp.Diff(want, ground.Vars); diff != "" {
		t.Errorf("ground layer (-want +got):\n%s", diff)
	}

	walls := mustGet(t, m, "$.layer[1]")
	if got := attrText(t, walls, "opacity"); got != "0.5" {
		t.Errorf("walls opacity %q", got)
	}
	if got := attrText(t, walls, "visible"); got != "0" {
		t.Errorf("walls visible %q", got)
	}

	spawn := mustGet(t, m, "$.objectgroup.object[0]")
	if w, h := attrText(t, spawn, "width"), attrText(t, spawn, "height"); w != "0" || h != "0" {
		t.Errorf("object size %q x %q", w, h)
	}
	if got := attrText(t, spawn, "visible"); got != "1" {
		t.Errorf("object visible %q", got)
	}
	for _, name := range []string{"rotation", "gid"} {
		if _, err := spawn.Attr(name); !errors.Is(err, ir.ErrVarNotFound) {
			t.Errorf("object %s: %v", name, err)
		}
	}

	ts := mustGet(t, m, "$.tileset")
	for _, name := range []string{"source", "spacing", "margin"} {
		if _, err := ts.Attr(name); !errors.Is(err, ir.ErrVarNotFound) {
			t.Errorf("tileset %s has a default: %v", name, err)
		}
	}

	og := mustGet(t, m, "$.objectgroup")
	if _, err := og.Attr("width"); !errors.Is(err, ir.ErrVarNotFound) {
		t.Errorf("objectgroup width: %v", err)
	}
	if got := attrText(t, og, "x"); got != "0" {
		t.Errorf("objectgroup x %q", got)
	}
}

func TestTileSchemas(t *testing.T) {
	m := loadLevel(t)
	tile := mustGet(t, m, "$.tileset.tile")
	if got := attrText(t, tile, "probability"); got != "0.5" {
		t.Errorf("probability %q", got)
	}
	solid, err := tile.Prop("solid")
	if err != nil {
		t.Fatal(err)
	}
	if b, err := solid.Bool(); err != nil || !b {
		t.Errorf("solid = %v, %v", b, err)
	}
	if n := len(mustGet(t, m, "$.layer[1]").ChildrenOf(ir.TileTag)); n != 0 {
		t.Errorf("data tiles became %d layer children", n)
	}
	poly := mustGet(t, m, "$.objectgroup.object[1].polygon")
	pts, err := mustAttr(t, poly, "points").Points()
	if err != nil || len(pts) != 3 {
		t.Errorf("points %v, %v", pts, err)
	}
}

func mustAttr(t *testing.T, n *ir.Node, name string) ir.Value {
	t.Helper()
	v, err := n.Attr(name)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestTileData(t *testing.T) {
	var issues []error
	m := loadLevel(t, WithIssues(&issues))

	csv := mustGet(t, m, "$.layer[0].data")
	if csv.Data == nil {
		t.Fatal("csv layer has no payload")
	}
	if csv.Data.Value != "\n1,2,\n3,4\n" {
		t.Errorf("csv payload %q", csv.Data.Value)
	}
	gids, err := csv.Data.GIDs()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ir.GID{1, 2, 3, 4}, gids); diff != "" {
		t.Errorf("gids (-want +got):\n%s", diff)
	}
	if e, c := attrText(t, csv, "encoding"), attrText(t, csv, "compression"); e != "csv" || c != "none" {
		t.Errorf("csv data encoding %q compression %q", e, c)
	}

	xml := mustGet(t, m, "$.layer[1].data")
	if xml.Data == nil || xml.Data.Value != "5,0,12" {
		t.Errorf("xml payload %+v", xml.Data)
	}
	if e := attrText(t, xml, "encoding"); e != "xml" {
		t.Errorf("xml data encoding %q", e)
	}

	packed := mustGet(t, m, "$.layer[2].data")
	if packed.Data != nil {
		t.Errorf("base64 payload loaded without DecodeBinary: %+v", packed.Data)
	}
	if len(issues) != 1 || !errors.Is(issues[0], ErrNoTileData) {
		t.Fatalf("issues %v", issues)
	}
	if !strings.Contains(issues[0].Error(), "$.layer[2]") {
		t.Errorf("issue does not name its layer: %v", issues[0])
	}
}

func TestStrict(t *testing.T) {
	_, err := File("testdata/level.tmx", Strict(true), WithLogger(slog.New(slog.DiscardHandler)))
	if !errors.Is(err, ErrNoTileData) {
		t.Errorf("got %v want %v", err, ErrNoTileData)
	}
	m := loadLevel(t, Strict(true), DecodeBinary(true))
	packed := mustGet(t, m, "$.layer[2].data")
	if packed.Data == nil || packed.Data.Value != "1,2,3,4" {
		t.Errorf("base64 payload %+v", packed.Data)
	}
}

func TestIssueLogged(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	d, err := os.ReadFile("testdata/level.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(d, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "tile data not loaded") {
		t.Errorf("log output %q", out)
	}
}

func TestNotAMap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{name: "tileset root", in: `<tileset name="x"/>`, err: ErrNoMap},
		{name: "malformed", in: `<map><layer></map>`, err: ErrParse},
		{name: "empty", in: ``, err: ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v want %v", err, tt.err)
			}
		})
	}
	if _, err := File("testdata/nosuch.tmx"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
}

func TestEmptyMap(t *testing.T) {
	m, err := Parse([]byte(`<map/>`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Tag != ir.MapTag || len(m.Children) != 0 || len(m.Vars) != 0 {
		t.Errorf("got %+v", m)
	}
	if _, err := m.Attr("width"); !errors.Is(err, ir.ErrNoVars) {
		t.Errorf("width on empty map: %v", err)
	}
}

func TestDuplicateProperty(t *testing.T) {
	in := `<map><properties>
 <property name="a" value="1"/>
 <property value="orphan"/>
 <property name="a" type="int" value="2"/>
</properties></map>`
	m, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.NamedValue{{Name: "a", Value: ir.V("1", ir.StringType)}}
	if diff := cmp.Diff(want, m.Props()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEmptyData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty csv", data: `<data encoding="csv">  </data>`},
		{name: "xml without gids", data: `<data><tile/><tile/></data>`},
		{name: "unknown encoding", data: `<data encoding="uu">abc</data>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var issues []error
			m, err := Parse([]byte(`<map><layer>`+tt.data+`</layer></map>`),
				WithIssues(&issues), WithLogger(slog.New(slog.DiscardHandler)))
			if err != nil {
				t.Fatal(err)
			}
			d := mustGet(t, m, "$.layer.data")
			if d.Data != nil {
				t.Errorf("payload %+v", d.Data)
			}
			if len(issues) != 1 || !errors.Is(issues[0], ErrNoTileData) {
				t.Errorf("issues %v", issues)
			}
		})
	}
}

func TestBase64Image(t *testing.T) {
	in := `<map><imagelayer><image format="png">
 <data encoding="base64">iVBORw0KGgo=</data>
</image></imagelayer></map>`
	m, err := Parse([]byte(in), DecodeBinary(true))
	if err != nil {
		t.Fatal(err)
	}
	d := mustGet(t, m, "$.imagelayer.image.data")
	want := &ir.RawData{Value: "iVBORw0KGgo=", Encoding: ir.Base64Encoding, Compression: ir.NoCompression}
	if diff := cmp.Diff(want, d.Data); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBadBase64(t *testing.T) {
	tests := []struct {
		name, compression, text string
	}{
		{name: "not base64", text: "!!!"},
		{name: "partial gid", text: base64.StdEncoding.EncodeToString([]byte{1, 0, 0})},
		{name: "not gzip", compression: "gzip", text: base64.StdEncoding.EncodeToString([]byte("plain"))},
		{name: "unknown compression", compression: "lz4", text: "AQAAAA=="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := ""
			if tt.compression != "" {
				comp = ` compression="` + tt.compression + `"`
			}
			in := `<map><layer><data encoding="base64"` + comp + `>` + tt.text + `</data></layer></map>`
			_, err := Parse([]byte(in), DecodeBinary(true), Strict(true))
			if !errors.Is(err, ErrBadTileData) {
				t.Errorf("got %v want %v", err, ErrBadTileData)
			}
		})
	}
}
