package tmx

import "github.com/zaidmade/tmx/ir"

// Node is a read-only view of one node of a loaded map.
type Node struct {
	node *ir.Node
	next int
}

func View(n *ir.Node) *Node {
	return &Node{node: n}
}

func (n *Node) Tag() ir.Tag {
	return n.node.Tag
}

// Attr looks up an attribute.  The error is ir.ErrNoVars or
// ir.ErrVarNotFound; ir.Missing converts it to an error typed value.
func (n *Node) Attr(name string) (ir.Value, error) {
	return n.node.Get(name, ir.AttrSpace)
}

// Prop looks up a property, see Attr.
func (n *Node) Prop(name string) (ir.Value, error) {
	return n.node.Get(name, ir.PropSpace)
}

// Data returns the payload of a data node.  Other nodes, and data nodes
// whose payload could not be loaded, report ir.NoData.
func (n *Node) Data() ir.RawData {
	if n.node.Tag != ir.DataTag || n.node.Data == nil {
		return ir.NoData
	}
	return *n.node.Data
}

// NextChild points dst at the next child and returns true, or returns false
// at the end of the children, after which iteration starts over from the
// first child.
//
//	var c tmx.Node
//	for m.NextChild(&c) {
//		fmt.Println(c.Tag())
//	}
func (n *Node) NextChild(dst *Node) bool {
	if n.next >= len(n.node.Children) {
		n.next = 0
		return false
	}
	dst.node = n.node.Children[n.next]
	dst.next = 0
	n.next++
	return true
}

func (n *Node) Len() int {
	return len(n.node.Children)
}

func (n *Node) IR() *ir.Node {
	return n.node
}
