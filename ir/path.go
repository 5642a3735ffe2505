package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses nodes of a built map.  Each segment selects the children of
// one tag and Index selects among those children.
//
//	$.layer[1].data
//	$.objectgroup.object[*]
//	$..object
type Path struct {
	IndexAll bool
	Index    *int
	Tag      *Tag
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString(".")
			x = x.Next
			continue
		}
		if x.Tag != nil {
			buf.WriteString("." + x.Tag.String())
		}
		if x.IndexAll {
			buf.WriteString("[*]")
		} else if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrBadPath, p)
	}
	if len(p) == 1 {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 || frag[0] != '.' {
		return fmt.Errorf("expected '.'")
	}
	if len(frag) > 1 && frag[1] == '.' {
		parent.Subtree = true
		next := &Path{}
		if err := parseFrag(frag[1:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	}
	name, rest := frag[1:], ""
	if i := strings.IndexAny(name, ".["); i != -1 {
		name, rest = name[:i], name[i:]
	}
	tag := ClassifyTag(name)
	if tag == IgnoreTag {
		return fmt.Errorf("unknown tag %q", name)
	}
	parent.Tag = &tag
	if len(rest) != 0 && rest[0] == '[' {
		i := strings.IndexByte(rest, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(rest[1:i])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = rest[i+1:]
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

// GetPath returns the node at p, or nil when p does not exist in the tree.
func (y *Node) GetPath(p string) (*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrBadPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrBadPath)
		}
		index := 0
		if yp.Index != nil {
			index = *yp.Index
		}
		kids := res.ChildrenOf(*yp.Tag)
		if index >= len(kids) {
			return nil, nil
		}
		res = kids[index]
		yp = yp.Next
	}
	return res, nil
}

// ListPath appends every node matched by p to dst.  Unlike GetPath, a
// segment without index selects all children of its tag.
func (y *Node) ListPath(dst []*Node, p string) ([]*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	if yp.Subtree {
		return y.subtree(dst, yp.Next)
	}
	kids := y.ChildrenOf(*yp.Tag)
	if yp.Index == nil {
		for _, c := range kids {
			dst = c.listPath(dst, yp.Next)
		}
		return dst
	}
	if index := *yp.Index; index < len(kids) {
		dst = kids[index].listPath(dst, yp.Next)
	}
	return dst
}

// subtree applies yp below y and below every descendant of y.
func (y *Node) subtree(dst []*Node, yp *Path) []*Node {
	dst = y.listPath(dst, yp)
	for _, c := range y.Children {
		dst = c.subtree(dst, yp)
	}
	return dst
}

// Walk visits the tree in pre-order, passing each node's canonical path and
// depth.  Returning an error stops the walk.
func (y *Node) Walk(f func(path string, n *Node, depth int) error) error {
	return y.walk("$", 0, f)
}

func (y *Node) walk(path string, depth int, f func(string, *Node, int) error) error {
	if err := f(path, y, depth); err != nil {
		return err
	}
	counts := map[Tag]int{}
	for _, c := range y.Children {
		i := counts[c.Tag]
		counts[c.Tag] = i + 1
		cPath := path + "." + c.Tag.String() + "[" + strconv.Itoa(i) + "]"
		if err := c.walk(cPath, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}
