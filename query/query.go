// Package query selects nodes of a loaded map with boolean expressions.
//
// Expressions see the environment of one node:
//
//	tag      string          the node's tag
//	attr     map[string]any  attributes, converted by declared type
//	prop     map[string]any  properties, converted by declared type
//	data     string          the payload of a data node
//	path     string          the node's canonical path
//	depth    int             0 for the map node
//	has(n)                   whether attribute n is set
//	gidCount()               number of gids in a csv payload
//
// For example
//
//	tag == "object" && attr.type == "spawn"
//	tag == "layer" && attr.opacity < 1
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/zaidmade/tmx/debug"
	"github.com/zaidmade/tmx/ir"
)

var ErrQuery = errors.New("query error")

type Env struct {
	Tag      string            `expr:"tag"`
	Attr     map[string]any    `expr:"attr"`
	Prop     map[string]any    `expr:"prop"`
	Data     string            `expr:"data"`
	Path     string            `expr:"path"`
	Depth    int               `expr:"depth"`
	Has      func(string) bool `expr:"has"`
	GIDCount func() int        `expr:"gidCount"`
}

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src,
		expr.Env(Env{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q on n.
func (q *Query) Match(path string, n *ir.Node, depth int) (bool, error) {
	env := newEnv(path, n, depth)
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: at %s: %w", ErrQuery, path, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrQuery, q.src, res)
	}
	if debug.Query() {
		debug.Logf("query %q at %s: %t\n", q.src, path, b)
	}
	return b, nil
}

type Hit struct {
	Path string
	Node *ir.Node
}

// Find returns every node of the tree rooted at root matching q, in
// pre-order.
func Find(root *ir.Node, q *Query) ([]Hit, error) {
	var res []Hit
	err := root.Walk(func(path string, n *ir.Node, depth int) error {
		ok, err := q.Match(path, n, depth)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, Hit{Path: path, Node: n})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func newEnv(path string, n *ir.Node, depth int) Env {
	env := Env{
		Tag:   n.Tag.String(),
		Attr:  natives(n.Attrs()),
		Prop:  natives(n.Props()),
		Path:  path,
		Depth: depth,
		Has: func(name string) bool {
			_, err := n.Attr(name)
			return err == nil
		},
		GIDCount: func() int {
			if n.Data == nil {
				return 0
			}
			gids, err := n.Data.GIDs()
			if err != nil {
				return 0
			}
			return len(gids)
		},
	}
	if n.Data != nil {
		env.Data = n.Data.Value
	}
	return env
}

func natives(vs []ir.NamedValue) map[string]any {
	res := make(map[string]any, len(vs))
	for _, nv := range vs {
		res[nv.Name] = nv.Value.Native()
	}
	return res
}
