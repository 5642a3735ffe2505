package ir

import "fmt"

// Type is the declared type of a variable's text.
type Type int

const (
	StringType Type = iota
	IntegerType
	DecimalType
	BoolType
	PointsType
	HexColorType
	ErrorType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:   "string",
		IntegerType:  "int",
		DecimalType:  "float",
		BoolType:     "bool",
		PointsType:   "points",
		HexColorType: "color",
		ErrorType:    "error",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"string": StringType,
		"int":    IntegerType,
		"float":  DecimalType,
		"bool":   BoolType,
		"points": PointsType,
		"color":  HexColorType,
		"error":  ErrorType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// PropertyType maps the type attribute of a <property> element.  Anything
// other than int, float or bool is a string.
func PropertyType(s string) Type {
	switch s {
	case "int":
		return IntegerType
	case "float":
		return DecimalType
	case "bool":
		return BoolType
	default:
		return StringType
	}
}

func Types() []Type {
	return []Type{
		StringType,
		IntegerType,
		DecimalType,
		BoolType,
		PointsType,
		HexColorType,
		ErrorType,
	}
}
