package ir

import (
	"fmt"
	"strconv"
	"strings"
)

type Encoding int

const (
	TextEncoding Encoding = iota
	XMLEncoding
	Base64Encoding
	CSVEncoding
	PNGEncoding
	BMPEncoding
	JPGEncoding
)

var encodingNames = map[Encoding]string{
	TextEncoding:   "text",
	XMLEncoding:    "xml",
	Base64Encoding: "base64",
	CSVEncoding:    "csv",
	PNGEncoding:    "png",
	BMPEncoding:    "bmp",
	JPGEncoding:    "jpg",
}

func ParseEncoding(s string) (Encoding, error) {
	for e, name := range encodingNames {
		if name == s {
			return e, nil
		}
	}
	return TextEncoding, fmt.Errorf("%w: unknown encoding %q", ErrBadValue, s)
}

func (e Encoding) String() string {
	s, ok := encodingNames[e]
	if ok {
		return s
	}
	return "<unknown encoding>"
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Encoding) UnmarshalText(d []byte) error {
	ee, err := ParseEncoding(string(d))
	if err != nil {
		return err
	}
	*e = ee
	return nil
}

type Compression int

const (
	NoCompression Compression = iota
	GzipCompression
	ZlibCompression
	ZstdCompression
)

var compressionNames = map[Compression]string{
	NoCompression:   "none",
	GzipCompression: "gzip",
	ZlibCompression: "zlib",
	ZstdCompression: "zstd",
}

func ParseCompression(s string) (Compression, error) {
	for c, name := range compressionNames {
		if name == s {
			return c, nil
		}
	}
	return NoCompression, fmt.Errorf("%w: unknown compression %q", ErrBadValue, s)
}

func (c Compression) String() string {
	s, ok := compressionNames[c]
	if ok {
		return s
	}
	return "<unknown compression>"
}

func (c Compression) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Compression) UnmarshalText(d []byte) error {
	cc, err := ParseCompression(string(d))
	if err != nil {
		return err
	}
	*c = cc
	return nil
}

// RawData is the payload of a data node.  Value holds comma separated gids
// whenever Encoding is CSVEncoding.
type RawData struct {
	Value       string      `json:"value"`
	Encoding    Encoding    `json:"encoding"`
	Compression Compression `json:"compression"`
}

// NoData is what a non data node reports as its payload.
var NoData = RawData{Encoding: TextEncoding, Compression: NoCompression}

// GIDs splits a CSV payload into tile ids.  Whitespace around fields is
// ignored, empty fields are an error.
func (d RawData) GIDs() ([]GID, error) {
	if d.Encoding != CSVEncoding {
		return nil, fmt.Errorf("%w: %s payload is not csv", ErrBadValue, d.Encoding)
	}
	s := strings.TrimSpace(d.Value)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	res := make([]GID, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q is not a gid", ErrBadValue, i, f)
		}
		res[i] = GID(n)
	}
	return res, nil
}

// GID is a global tile id with the TMX flip flags in its top 4 bits.
type GID uint32

const (
	FlagFlippedHorizontally GID = 1 << (31 - iota)
	FlagFlippedVertically
	FlagFlippedDiagonally
	FlagRotatedHex120

	flagMask = FlagFlippedHorizontally | FlagFlippedVertically | FlagFlippedDiagonally | FlagRotatedHex120
)

func (g GID) ID() uint32 {
	return uint32(g &^ flagMask)
}

func (g GID) FlippedHorizontally() bool {
	return g&FlagFlippedHorizontally != 0
}

func (g GID) FlippedVertically() bool {
	return g&FlagFlippedVertically != 0
}

func (g GID) FlippedDiagonally() bool {
	return g&FlagFlippedDiagonally != 0
}

func (g GID) RotatedHex120() bool {
	return g&FlagRotatedHex120 != 0
}
