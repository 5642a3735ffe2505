package tmx

import (
	"errors"
	"io"

	"github.com/zaidmade/tmx/ir"
	"github.com/zaidmade/tmx/parse"
)

var ErrClosed = errors.New("document closed")

// Document owns a loaded map.  The tree lives until Close.
type Document struct {
	root   *ir.Node
	issues []error
}

// Open loads the TMX file at path.
func Open(path string, opts ...parse.ParseOption) (*Document, error) {
	d := &Document{}
	root, err := parse.File(path, append(opts[:len(opts):len(opts)], parse.WithIssues(&d.issues))...)
	if err != nil {
		return nil, err
	}
	d.root = root
	return d, nil
}

// Read loads a TMX document from r.
func Read(r io.Reader, opts ...parse.ParseOption) (*Document, error) {
	d := &Document{}
	root, err := parse.Reader(r, append(opts[:len(opts):len(opts)], parse.WithIssues(&d.issues))...)
	if err != nil {
		return nil, err
	}
	d.root = root
	return d, nil
}

// FromIR takes ownership of an already built tree.
func FromIR(root *ir.Node) *Document {
	return &Document{root: root}
}

// Map returns a view of the root map node.
func (d *Document) Map() (*Node, error) {
	if d.root == nil {
		return nil, ErrClosed
	}
	return View(d.root), nil
}

// IR returns the underlying tree, or nil once the document is closed.
func (d *Document) IR() *ir.Node {
	return d.root
}

// Issues returns the non fatal failures met while loading, such as layers
// whose tile data could not be read.
func (d *Document) Issues() []error {
	return d.issues
}

// Close releases the tree.  Views obtained before Close see empty nodes.
func (d *Document) Close() error {
	if d.root == nil {
		return nil
	}
	d.root.Release()
	d.root = nil
	d.issues = nil
	return nil
}
