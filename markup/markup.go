// Package markup parses XML into a generic, read-only element tree.
package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrParse  = errors.New("markup parse error")
	ErrNoRoot = errors.New("document has no root element")
)

type Attr struct {
	Name  string
	Value string
}

// Element is a parsed element.  Text is the concatenation of the element's
// own character data, verbatim.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// FirstChild returns the first child element with the given name, or the
// first child of any name when name is empty.
func (e *Element) FirstChild(name string) *Element {
	for _, c := range e.Children {
		if name == "" || c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the child elements with the given name in document
// order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var res []*Element
	for _, c := range e.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

func (e *Element) HasChildren() bool {
	return len(e.Children) != 0
}

// Parse reads one XML document and returns its root element.
func Parse(d []byte) (*Element, error) {
	return ParseReader(bytes.NewReader(d))
}

func ParseReader(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	var (
		root  *Element
		stack []*Element
		text  []*strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if n := len(stack); n != 0 {
				p := stack[n-1]
				p.Children = append(p.Children, el)
			} else if root == nil {
				root = el
			} else {
				return nil, fmt.Errorf("%w: second root element %q", ErrParse, el.Name)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			n := len(stack)
			stack[n-1].Text = text[n-1].String()
			stack = stack[:n-1]
			text = text[:n-1]
		case xml.CharData:
			if n := len(text); n != 0 {
				text[n-1].Write(t)
			}
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
