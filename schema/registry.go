package schema

import (
	"fmt"
	"slices"
	"sync"

	"github.com/zaidmade/tmx/ir"
)

// Attr is one attribute an element is scanned for, with the type its value
// is stored as.
type Attr struct {
	Name string
	Type ir.Type
}

var (
	mu       sync.RWMutex
	registry = map[ir.Tag][]Attr{
		ir.TilesetTag: {
			{"firstgid", ir.IntegerType},
			{"source", ir.StringType},
			{"name", ir.StringType},
			{"tilewidth", ir.IntegerType},
			{"tileheight", ir.IntegerType},
			{"spacing", ir.IntegerType},
			{"margin", ir.IntegerType},
			{"tilecount", ir.IntegerType},
			{"columns", ir.IntegerType},
		},
		ir.LayerTag: {
			{"name", ir.StringType},
			{"x", ir.IntegerType},
			{"y", ir.IntegerType},
			{"width", ir.IntegerType},
			{"height", ir.IntegerType},
			{"opacity", ir.DecimalType},
			{"visible", ir.BoolType},
			{"offsetx", ir.IntegerType},
			{"offsety", ir.IntegerType},
		},
		ir.ObjectGroupTag: {
			{"name", ir.StringType},
			{"color", ir.HexColorType},
			{"x", ir.IntegerType},
			{"y", ir.IntegerType},
			{"width", ir.IntegerType},
			{"height", ir.IntegerType},
			{"opacity", ir.DecimalType},
			{"visible", ir.BoolType},
			{"offsetx", ir.IntegerType},
			{"offsety", ir.IntegerType},
			{"draworder", ir.StringType},
		},
		ir.ImageLayerTag: {
			{"name", ir.StringType},
			{"x", ir.IntegerType},
			{"y", ir.IntegerType},
			{"width", ir.IntegerType},
			{"height", ir.IntegerType},
			{"opacity", ir.DecimalType},
			{"visible", ir.BoolType},
			{"offsetx", ir.IntegerType},
			{"offsety", ir.IntegerType},
		},
		ir.TileOffsetTag: {
			{"x", ir.IntegerType},
			{"y", ir.IntegerType},
		},
		ir.ImageTag: {
			{"format", ir.StringType},
			{"id", ir.IntegerType},
			{"source", ir.StringType},
			{"trans", ir.HexColorType},
			{"width", ir.IntegerType},
			{"height", ir.IntegerType},
		},
		ir.ObjectTag: {
			{"id", ir.IntegerType},
			{"name", ir.StringType},
			{"type", ir.StringType},
			{"x", ir.IntegerType},
			{"y", ir.IntegerType},
			{"width", ir.IntegerType},
			{"height", ir.IntegerType},
			{"rotation", ir.DecimalType},
			{"gid", ir.IntegerType},
			{"visible", ir.BoolType},
		},
		ir.EllipseTag: {
			{"x", ir.IntegerType},
			{"y", ir.IntegerType},
			{"width", ir.IntegerType},
			{"height", ir.IntegerType},
		},
		ir.PolygonTag:  {{"points", ir.PointsType}},
		ir.PolylineTag: {{"points", ir.PointsType}},
		ir.TerrainTag: {
			{"name", ir.StringType},
			{"tile", ir.IntegerType},
		},
		ir.FrameTag: {
			{"tileid", ir.IntegerType},
			{"duration", ir.IntegerType},
		},
		ir.DataTag: {
			{"encoding", ir.StringType},
			{"compression", ir.StringType},
		},
	}

	// tile schemas depend on the parent
	layerTile = []Attr{
		{"id", ir.IntegerType},
	}
	tilesetTile = []Attr{
		{"id", ir.IntegerType},
		{"probability", ir.DecimalType},
	}

	mapAttrs = []Attr{
		{"version", ir.StringType},
		{"orientation", ir.StringType},
		{"renderorder", ir.StringType},
		{"width", ir.IntegerType},
		{"height", ir.IntegerType},
		{"tilewidth", ir.IntegerType},
		{"tileheight", ir.IntegerType},
		{"hexsidelength", ir.IntegerType},
		{"staggeraxis", ir.StringType},
		{"staggerindex", ir.StringType},
		{"backgroundcolor", ir.HexColorType},
		{"nextobjectid", ir.IntegerType},
	}
)

// Attributes returns the attributes scanned for on an element of tag tag
// whose parent node has tag parent, in the order they are stored.  Only
// tile elements depend on parent.
func Attributes(tag, parent ir.Tag) []Attr {
	if tag == ir.TileTag {
		switch parent {
		case ir.LayerTag:
			return layerTile
		case ir.TilesetTag:
			return tilesetTile
		default:
			return nil
		}
	}
	if tag == ir.MapTag {
		return MapAttributes()
	}
	mu.RLock()
	defer mu.RUnlock()
	return registry[tag]
}

// MapAttributes returns the attributes of the root map element.
func MapAttributes() []Attr {
	return mapAttrs
}

// Register appends attrs to the schema of tag.  Names already in the schema
// are rejected.
func Register(tag ir.Tag, attrs ...Attr) error {
	switch tag {
	case ir.IgnoreTag, ir.RootTag, ir.MapTag, ir.TileTag:
		return fmt.Errorf("cannot register attributes for %s", tag)
	}
	mu.Lock()
	defer mu.Unlock()
	cur := registry[tag]
	for _, a := range attrs {
		if a.Name == "" {
			return fmt.Errorf("empty attribute name for %s", tag)
		}
		if slices.ContainsFunc(cur, func(b Attr) bool { return b.Name == a.Name }) {
			return fmt.Errorf("attribute %q already registered for %s", a.Name, tag)
		}
		cur = append(slices.Clip(cur), a)
	}
	registry[tag] = cur
	return nil
}
