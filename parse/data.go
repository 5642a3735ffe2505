package parse

import (
	"fmt"
	"strings"

	"github.com/zaidmade/tmx/debug"
	"github.com/zaidmade/tmx/ir"
	"github.com/zaidmade/tmx/markup"
)

// loadData synthesizes the data child of n, an image or layer node, from
// the data element of el.  An element without data is not an error.
func (b *builder) loadData(el *markup.Element, n *ir.Node, path string) error {
	xd := el.FirstChild("data")
	if xd == nil {
		return nil
	}
	d := n.AddChild(ir.DataTag)
	encoding, ok := xd.Attr("encoding")
	if !ok {
		encoding = "xml"
	}
	compression, ok := xd.Attr("compression")
	if !ok {
		compression = "none"
	}
	if err := d.SetAttr("encoding", ir.V(encoding, ir.StringType)); err != nil {
		return err
	}
	if err := d.SetAttr("compression", ir.V(compression, ir.StringType)); err != nil {
		return err
	}
	return b.extract(xd, d, n.Tag)
}

// extract attaches the payload of data element xd to d.  d must carry its
// encoding and compression.
func (b *builder) extract(xd *markup.Element, d *ir.Node, owner ir.Tag) error {
	encoding, _ := d.Attr("encoding")
	compression, _ := d.Attr("compression")

	var payload string
	switch encoding.Text {
	case "csv":
		payload = xd.Text
	case "xml":
		payload = xmlGIDs(xd)
	case "base64":
		if !b.opts.decodeBinary {
			break
		}
		if owner == ir.ImageTag {
			return attachBase64(xd, d, compression.Text)
		}
		csv, err := decodeGIDs(xd.Text, compression.Text)
		if err != nil {
			return err
		}
		payload = csv
	}
	if strings.TrimSpace(payload) == "" {
		return fmt.Errorf("%w: encoding %q compression %q", ErrNoTileData, encoding.Text, compression.Text)
	}
	if debug.Data() {
		debug.Logf("data %s/%s: %q\n", encoding.Text, compression.Text, payload)
	}
	d.Data = &ir.RawData{
		Value:       payload,
		Encoding:    ir.CSVEncoding,
		Compression: ir.NoCompression,
	}
	return nil
}

// xmlGIDs joins the gid attributes of the tile children of xd.  Tiles
// without gid are skipped.
func xmlGIDs(xd *markup.Element) string {
	var gids []string
	for _, t := range xd.ChildrenNamed("tile") {
		gid, ok := t.Attr("gid")
		if !ok {
			continue
		}
		gids = append(gids, gid)
	}
	return strings.Join(gids, ",")
}
