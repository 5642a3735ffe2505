// Package tmx loads TMX tile maps into a queryable tree.
//
//	doc, err := tmx.Open("level1.tmx")
//	if err != nil {
//		return err
//	}
//	defer doc.Close()
//	m, _ := doc.Map()
//	w, err := m.Attr("width")
//	var layer tmx.Node
//	for m.NextChild(&layer) {
//		// ...
//	}
//
// Loading is done by package parse into the tree of package ir; this
// package wraps the result with ownership (Document) and read access (Node).
package tmx
