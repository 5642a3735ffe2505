package parse

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"

	"github.com/zaidmade/tmx/ir"
	"github.com/zaidmade/tmx/markup"
)

// decodeGIDs turns base64 layer data into a csv payload.  The decoded bytes
// are little-endian uint32 gids, one per cell.
func decodeGIDs(text, compression string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", fmt.Errorf("%w: base64: %w", ErrBadTileData, err)
	}
	raw, err = decompress(raw, compression)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBadTileData, compression, err)
	}
	if len(raw)%4 != 0 {
		return "", fmt.Errorf("%w: %d bytes is not a whole number of gids", ErrBadTileData, len(raw))
	}
	b := &strings.Builder{}
	for i := 0; i < len(raw); i += 4 {
		if i != 0 {
			b.WriteByte(',')
		}
		gid := binary.LittleEndian.Uint32(raw[i : i+4])
		b.WriteString(strconv.FormatUint(uint64(gid), 10))
	}
	return b.String(), nil
}

func decompress(raw []byte, compression string) ([]byte, error) {
	var (
		r   io.ReadCloser
		err error
	)
	switch compression {
	case "", "none":
		return raw, nil
	case "gzip":
		r, err = gzip.NewReader(bytes.NewReader(raw))
	case "zlib":
		r, err = zlib.NewReader(bytes.NewReader(raw))
	case "zstd":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(raw, nil)
	default:
		return nil, fmt.Errorf("unsupported compression %q", compression)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// attachBase64 keeps embedded image bytes as they are in the document.
func attachBase64(xd *markup.Element, d *ir.Node, compression string) error {
	payload := strings.TrimSpace(xd.Text)
	if payload == "" {
		return fmt.Errorf("%w: empty base64 image data", ErrNoTileData)
	}
	comp, err := ir.ParseCompression(compression)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadTileData, err)
	}
	d.Data = &ir.RawData{
		Value:       payload,
		Encoding:    ir.Base64Encoding,
		Compression: comp,
	}
	return nil
}
