// Package ir provides the in-memory representation of a loaded TMX map.
//
// # Overview
//
// A loaded map is a tree of Nodes rooted at a node tagged MapTag.  Each node
// carries
//
//   - Tag: the semantic classification of the element it was built from
//   - Vars: its attributes and properties, in first-seen order
//   - Children: its child nodes, in document order
//   - Data: the tile payload, for DataTag nodes only
//
// There are no parent pointers.  Each node exclusively owns its variables,
// children and data, and the map node transitively owns the whole tree.
// Release tears a subtree down.
//
// # Tags
//
// ClassifyTag maps an element name to a Tag.  Names outside of the TMX
// element set, and the empty name, map to IgnoreTag.
//
// # Variables
//
// Attributes and properties share one list per node.  Property names are
// stored with PropMarker prepended, a character that cannot appear in an
// attribute name, so
//
//	n.Set("size", ir.V("3", ir.IntegerType), ir.AttrSpace, false)
//	n.Set("size", ir.V("big", ir.StringType), ir.PropSpace, false)
//
// store two independent values.  Set refuses to replace an existing value
// unless asked to overwrite.  Get reports ErrNoVars for a node that never had
// a variable and ErrVarNotFound otherwise; Missing turns either error into an
// ErrorType value carrying the diagnostic.
//
// # Values
//
// A Value keeps the document text verbatim together with its declared Type.
// Int, Float, Bool, Points and Color convert on access.
//
// # Data
//
// RawData is the payload of a data node.  When its Encoding is CSVEncoding
// the value is a comma separated list of global tile ids, which GIDs splits
// into GID values carrying the TMX flip flags.
//
// # Paths
//
// Nodes are addressed by paths of tag segments:
//
//	child, err := root.GetPath("$.layer[1].data")
//	objects, err := root.ListPath(nil, "$..object")
//
// Walk visits every node with its canonical path, in which every segment is
// indexed.
//
// # Thread Safety
//
// Node structures are not thread-safe.  A built tree may be read from many
// goroutines as long as nothing mutates it.
package ir
