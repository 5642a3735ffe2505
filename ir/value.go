package ir

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Value is a variable's text together with its declared type.  Text is
// always kept verbatim from the document; conversions happen on access.
type Value struct {
	Text string `json:"text"`
	Type Type   `json:"type"`
}

// NamedValue is one entry of a node's variable list.  Property names carry
// the PropMarker prefix.
type NamedValue struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

func V(text string, t Type) Value {
	return Value{Text: text, Type: t}
}

// Missing turns a lookup error into the error typed value carrying its
// message.
func Missing(err error) Value {
	return Value{Text: "!" + err.Error(), Type: ErrorType}
}

func (v Value) IsError() bool {
	return v.Type == ErrorType
}

func (v Value) String() string {
	return v.Text
}

func (v Value) err() error {
	if v.Type != ErrorType {
		return nil
	}
	return errors.New(strings.TrimPrefix(v.Text, "!"))
}

func (v Value) Int() (int64, error) {
	if err := v.err(); err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v.Text), 10, 64)
	if err == nil {
		return i, nil
	}
	// some editors write integral attributes as decimals, eg x="32.0"
	f, ferr := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
	if ferr != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadValue, v.Text)
	}
	return int64(f), nil
}

func (v Value) Float() (float64, error) {
	if err := v.err(); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal", ErrBadValue, v.Text)
	}
	return f, nil
}

func (v Value) Bool() (bool, error) {
	if err := v.err(); err != nil {
		return false, err
	}
	switch strings.TrimSpace(v.Text) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrBadValue, v.Text)
}

type Point struct {
	X, Y float64
}

// Points parses a polygon or polyline point list of the form "x,y x,y ...".
func (v Value) Points() ([]Point, error) {
	if err := v.err(); err != nil {
		return nil, err
	}
	fields := strings.Fields(v.Text)
	res := make([]Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("%w: point %q has no comma", ErrBadValue, f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q: %w", ErrBadValue, f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q: %w", ErrBadValue, f, err)
		}
		res = append(res, Point{X: x, Y: y})
	}
	return res, nil
}

// Color parses #RRGGBB or #AARRGGBB, the leading '#' being optional.
func (v Value) Color() (color.NRGBA, error) {
	if err := v.err(); err != nil {
		return color.NRGBA{}, err
	}
	s := strings.TrimPrefix(strings.TrimSpace(v.Text), "#")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not a hex color", ErrBadValue, v.Text)
	}
	switch len(s) {
	case 6:
		return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
	case 8:
		return color.NRGBA{A: uint8(n >> 24), R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q is not a hex color", ErrBadValue, v.Text)
}

// Native converts the value to the Go value matching its type, falling back
// to the text when the conversion fails.
func (v Value) Native() any {
	switch v.Type {
	case IntegerType:
		if i, err := v.Int(); err == nil {
			return i
		}
	case DecimalType:
		if f, err := v.Float(); err == nil {
			return f
		}
	case BoolType:
		if b, err := v.Bool(); err == nil {
			return b
		}
	}
	return v.Text
}
