package value

import "strconv"

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeNumber Type = iota
	TypeBool
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeString:
		return "string"
	}
	return "unknown"
}

// Value is a tagged union over the three runtime types. Numbers and booleans
// live in Num (booleans as 0/1), strings in Str.
type Value struct {
	Type Type
	Num  float64
	Str  string
}

// Number wraps a float64.
func Number(f float64) Value {
	return Value{Type: TypeNumber, Num: f}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	v := Value{Type: TypeBool}
	if b {
		v.Num = 1
	}
	return v
}

// Str wraps a string.
func Str(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool { return v.Type == TypeNumber }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.Type == TypeString }

// Truthy reports the value's truth: nonzero numbers, leres, and nonempty
// strings are true.
func (v Value) Truthy() bool {
	switch v.Type {
	case TypeString:
		return v.Str != ""
	default:
		return v.Num != 0
	}
}

// Equal compares two values. Differently-typed values are never equal.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	if v.Type == TypeString {
		return v.Str == o.Str
	}
	return v.Num == o.Num
}

// String renders the value in its human-readable form: minimal decimal
// notation for numbers, leres/palsu for booleans, strings verbatim.
func (v Value) String() string {
	switch v.Type {
	case TypeBool:
		if v.Num != 0 {
			return "leres"
		}
		return "palsu"
	case TypeString:
		return v.Str
	default:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
}
