package ir

import "fmt"

// Tag is the semantic classification of a TMX element.
type Tag int

const (
	IgnoreTag Tag = iota
	RootTag
	MapTag
	TilesetTag
	TileOffsetTag
	ImageTag
	TerrainTag
	FrameTag
	LayerTag
	TileTag
	ObjectGroupTag
	ObjectTag
	EllipseTag
	PolygonTag
	PolylineTag
	ImageLayerTag
	DataTag
)

var tagNames = map[Tag]string{
	IgnoreTag:      "ignore",
	RootTag:        "root",
	MapTag:         "map",
	TilesetTag:     "tileset",
	TileOffsetTag:  "tileoffset",
	ImageTag:       "image",
	TerrainTag:     "terrain",
	FrameTag:       "frame",
	LayerTag:       "layer",
	TileTag:        "tile",
	ObjectGroupTag: "objectgroup",
	ObjectTag:      "object",
	EllipseTag:     "ellipse",
	PolygonTag:     "polygon",
	PolylineTag:    "polyline",
	ImageLayerTag:  "imagelayer",
	DataTag:        "data",
}

var tagDict = func() map[string]Tag {
	res := make(map[string]Tag, len(tagNames))
	for t, name := range tagNames {
		if t == IgnoreTag {
			continue
		}
		res[name] = t
	}
	return res
}()

// ClassifyTag returns the tag for an element name, or IgnoreTag when the
// name is not a TMX element.
func ClassifyTag(name string) Tag {
	if name == "" {
		return IgnoreTag
	}
	t, ok := tagDict[name]
	if !ok {
		return IgnoreTag
	}
	return t
}

func (t Tag) String() string {
	s, ok := tagNames[t]
	if ok {
		return s
	}
	return "<unknown tag>"
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	s := string(d)
	if s == "ignore" {
		*t = IgnoreTag
		return nil
	}
	tt := ClassifyTag(s)
	if tt == IgnoreTag {
		return fmt.Errorf("unrecognized tag %q", d)
	}
	*t = tt
	return nil
}

// HasData reports whether elements of this tag may own a synthesized data
// child.
func (t Tag) HasData() bool {
	return t == ImageTag || t == LayerTag
}

func Tags() []Tag {
	return []Tag{
		IgnoreTag,
		RootTag,
		MapTag,
		TilesetTag,
		TileOffsetTag,
		ImageTag,
		TerrainTag,
		FrameTag,
		LayerTag,
		TileTag,
		ObjectGroupTag,
		ObjectTag,
		EllipseTag,
		PolygonTag,
		PolylineTag,
		ImageLayerTag,
		DataTag,
	}
}
