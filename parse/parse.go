// Package parse builds ir trees from TMX documents.
package parse

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zaidmade/tmx/debug"
	"github.com/zaidmade/tmx/ir"
	"github.com/zaidmade/tmx/markup"
	"github.com/zaidmade/tmx/schema"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	root, err := markup.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Element(root, opts...)
}

func Reader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	root, err := markup.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Element(root, opts...)
}

func File(path string, opts ...ParseOption) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	res, err := Reader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return res, nil
}

// Element builds the map rooted at root, which must be a map element.
func Element(root *markup.Element, opts ...ParseOption) (*ir.Node, error) {
	if root == nil || root.Name != "map" {
		name := ""
		if root != nil {
			name = root.Name
		}
		return nil, fmt.Errorf("%w: got %q", ErrNoMap, name)
	}
	b := &builder{opts: newOpts(opts)}
	return b.buildMap(root)
}

type builder struct {
	opts    *parseOpts
	mapNode *ir.Node
}

func (b *builder) buildMap(el *markup.Element) (*ir.Node, error) {
	m := ir.New(ir.MapTag)
	b.mapNode = m
	if err := b.setAttrs(el, m, schema.MapAttributes()); err != nil {
		return nil, err
	}
	b.loadProps(el, m)
	if err := b.buildChildren(el, m, "$"); err != nil {
		return nil, err
	}
	return m, nil
}

// buildChildren builds a node for every recognised child element of el
// under parent, in document order.
func (b *builder) buildChildren(el *markup.Element, parent *ir.Node, path string) error {
	counts := map[ir.Tag]int{}
	for _, xc := range el.Children {
		tag := ir.ClassifyTag(xc.Name)
		switch tag {
		case ir.IgnoreTag, ir.RootTag:
			continue
		case ir.DataTag:
			// consumed by loadData
			continue
		}
		i := counts[tag]
		counts[tag] = i + 1
		cPath := path + "." + tag.String() + "[" + strconv.Itoa(i) + "]"

		n := parent.AddChild(tag)
		if err := b.setAttrs(xc, n, schema.Attributes(tag, parent.Tag)); err != nil {
			return err
		}
		if tag.HasData() {
			if err := b.loadData(xc, n, cPath); err != nil {
				if b.opts.strict {
					return fmt.Errorf("%s: %w", cPath, err)
				}
				b.issue(cPath, err)
			}
		}
		b.loadProps(xc, n)
		if debug.Load() {
			b.opts.logger.Debug("built node", "path", cPath, "vars", len(n.Vars))
		}
		if !xc.HasChildren() {
			continue
		}
		if err := b.buildChildren(xc, n, cPath); err != nil {
			return err
		}
	}
	return nil
}

// setAttrs stores the attributes of attrs found on el, or their defaults.
func (b *builder) setAttrs(el *markup.Element, n *ir.Node, attrs []schema.Attr) error {
	for _, a := range attrs {
		v, ok := el.Attr(a.Name)
		if !ok {
			v, ok = schema.Default(n.Tag, a.Name, b.mapNode)
		}
		if !ok {
			continue
		}
		if err := n.SetAttr(a.Name, ir.V(v, a.Type)); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) issue(path string, err error) {
	err = fmt.Errorf("%s: %w", path, err)
	b.opts.logger.Warn("tile data not loaded", "path", path, "error", err)
	if b.opts.issues != nil {
		*b.opts.issues = append(*b.opts.issues, err)
	}
}
