package parse

import (
	"github.com/zaidmade/tmx/ir"
	"github.com/zaidmade/tmx/markup"
)

// loadProps stores the properties block of el, if any, on n.  It reports
// whether el had a properties block.
func (b *builder) loadProps(el *markup.Element, n *ir.Node) bool {
	props := el.FirstChild("properties")
	if props == nil {
		return false
	}
	for _, p := range props.ChildrenNamed("property") {
		name, ok := p.Attr("name")
		if !ok {
			b.opts.logger.Debug("skipping unnamed property", "tag", n.Tag)
			continue
		}
		typ, _ := p.Attr("type")
		value, ok := p.Attr("value")
		if !ok {
			// multiline strings are written as element text
			value = p.Text
		}
		// the first of duplicate names wins
		if err := n.Set(name, ir.V(value, ir.PropertyType(typ)), ir.PropSpace, false); err != nil {
			b.opts.logger.Debug("skipping duplicate property", "tag", n.Tag, "name", name)
		}
	}
	return true
}
