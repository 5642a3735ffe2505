package schema

import "github.com/zaidmade/tmx/ir"

var globalDefaults = map[string]string{
	"opacity": "1",
	"visible": "1",
	"offsetx": "0",
	"offsety": "0",
}

// Default returns the TMX default for attribute attr of an element of tag
// tag, and false when the format defines none.  mapNode, which may be nil,
// supplies the width and height a layer inherits from its map.
func Default(tag ir.Tag, attr string, mapNode *ir.Node) (string, bool) {
	switch tag {
	case ir.LayerTag, ir.ImageLayerTag, ir.ObjectGroupTag:
		switch attr {
		case "x", "y":
			return "0", true
		}
		if tag == ir.LayerTag && mapNode != nil && (attr == "width" || attr == "height") {
			v, err := mapNode.Attr(attr)
			if err != nil {
				return "", false
			}
			return v.Text, true
		}
	case ir.ObjectTag:
		switch attr {
		case "width", "height":
			return "0", true
		}
	}
	d, ok := globalDefaults[attr]
	return d, ok
}
