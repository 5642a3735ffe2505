package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrNoMap       = fmt.Errorf("%w: root element is not a map", ErrParse)
	ErrNoTileData  = errors.New("no tile data")
	ErrBadTileData = fmt.Errorf("%w: malformed", ErrNoTileData)
)
