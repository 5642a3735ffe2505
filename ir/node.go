package ir

import "fmt"

// PropMarker prefixes property names in a node's variable list.  It never
// occurs in attribute names, so both namespaces share one list.
const PropMarker = "'"

type Namespace int

const (
	AttrSpace Namespace = iota
	PropSpace
)

func (ns Namespace) key(name string) string {
	if ns == PropSpace {
		return PropMarker + name
	}
	return name
}

// Node is one element of a built map.  A node owns its variables, its
// children and its data; nothing is shared between nodes.
type Node struct {
	Tag      Tag
	Vars     []NamedValue
	Children []*Node
	Data     *RawData
}

func New(tag Tag) *Node {
	return &Node{Tag: tag}
}

// AddChild appends a new child node of the given tag and returns it.
func (y *Node) AddChild(tag Tag) *Node {
	c := New(tag)
	y.Children = append(y.Children, c)
	return c
}

// Set stores v under name in namespace ns.  An existing name is only
// replaced when overwrite is true, otherwise ErrVarExists is returned and the
// stored value is unchanged.
func (y *Node) Set(name string, v Value, ns Namespace, overwrite bool) error {
	k := ns.key(name)
	for i := range y.Vars {
		nv := &y.Vars[i]
		if nv.Name != k {
			continue
		}
		if !overwrite {
			return fmt.Errorf("%w: %q on %s", ErrVarExists, k, y.Tag)
		}
		nv.Value = v
		return nil
	}
	y.Vars = append(y.Vars, NamedValue{Name: k, Value: v})
	return nil
}

func (y *Node) SetAttr(name string, v Value) error {
	return y.Set(name, v, AttrSpace, false)
}

// Get returns the first value stored under name in namespace ns.
func (y *Node) Get(name string, ns Namespace) (Value, error) {
	if y.Vars == nil {
		return Value{}, ErrNoVars
	}
	k := ns.key(name)
	for i := range y.Vars {
		if y.Vars[i].Name == k {
			return y.Vars[i].Value, nil
		}
	}
	return Value{}, ErrVarNotFound
}

func (y *Node) Attr(name string) (Value, error) {
	return y.Get(name, AttrSpace)
}

func (y *Node) Prop(name string) (Value, error) {
	return y.Get(name, PropSpace)
}

// Attrs returns the attribute entries in insertion order.
func (y *Node) Attrs() []NamedValue {
	return y.vars(false)
}

// Props returns the property entries in insertion order, with names
// stripped of PropMarker.
func (y *Node) Props() []NamedValue {
	return y.vars(true)
}

func (y *Node) vars(props bool) []NamedValue {
	var res []NamedValue
	for _, nv := range y.Vars {
		isProp := len(nv.Name) > 0 && nv.Name[:1] == PropMarker
		if isProp != props {
			continue
		}
		if isProp {
			nv.Name = nv.Name[len(PropMarker):]
		}
		res = append(res, nv)
	}
	return res
}

// ChildrenOf returns the direct children with the given tag in document
// order.
func (y *Node) ChildrenOf(tag Tag) []*Node {
	var res []*Node
	for _, c := range y.Children {
		if c.Tag == tag {
			res = append(res, c)
		}
	}
	return res
}

// Child returns the first direct child with the given tag.
func (y *Node) Child(tag Tag) *Node {
	for _, c := range y.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Release tears down the subtree rooted at y.  The node is left as an empty
// node of the same tag.
func (y *Node) Release() {
	for _, c := range y.Children {
		c.Release()
	}
	clear(y.Children)
	y.Children = nil
	y.Vars = nil
	y.Data = nil
}

func (y *Node) Clone() *Node {
	res := &Node{Tag: y.Tag}
	if y.Vars != nil {
		res.Vars = make([]NamedValue, len(y.Vars))
		copy(res.Vars, y.Vars)
	}
	if y.Data != nil {
		d := *y.Data
		res.Data = &d
	}
	if y.Children != nil {
		res.Children = make([]*Node, len(y.Children))
		for i, c := range y.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}
