package cfgvar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the shape of a variable's value.
type Kind int

const (
	// KindNumber is a floating point value, possibly unit-aware.
	KindNumber Kind = iota
	// KindInt is a 64-bit integer value.
	KindInt
	// KindBool is a boolean value.
	KindBool
	// KindString is a string value (possibly with a restricted grammar).
	KindString
	// KindVector is a 3-vector like "0,0,1".
	KindVector
	// KindOrientation is an orientation descriptor like
	// "@crys:0,0,1@lab:0,0,1".
	KindOrientation
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindOrientation:
		return "orientation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Unit identifies the physical dimension of a KindNumber variable.
type Unit int

const (
	// UnitNone marks a dimensionless number.
	UnitNone Unit = iota
	// UnitTemperature values are canonically in Kelvin.
	UnitTemperature
	// UnitLength values are canonically in angstrom.
	UnitLength
	// UnitAngle values are canonically in radians.
	UnitAngle
)

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return ""
	case UnitTemperature:
		return "temperature"
	case UnitLength:
		return "length"
	case UnitAngle:
		return "angle"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Vector is a 3-vector of floats.
type Vector [3]float64

// Mag2 returns the squared magnitude of the vector.
func (v Vector) Mag2() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// IsFinite reports whether all components are finite.
func (v Vector) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// String renders the vector in its textual input form, e.g. "0,0,1".
func (v Vector) String() string {
	return formatNumber(v[0]) + "," + formatNumber(v[1]) + "," + formatNumber(v[2])
}

// OrientDir is an orientation descriptor pairing a direction in the crystal
// frame (either direct space or HKL space) with a direction in the lab frame.
type OrientDir struct {
	// CrysHKL is true when the crystal-frame direction is given in HKL
	// space (the "@crys_hkl:" form) rather than direct space ("@crys:").
	CrysHKL bool
	Crys    Vector
	Lab     Vector
}

// String renders the descriptor in its textual input form.
func (d OrientDir) String() string {
	var sb strings.Builder
	if d.CrysHKL {
		sb.WriteString("@crys_hkl:")
	} else {
		sb.WriteString("@crys:")
	}
	sb.WriteString(d.Crys.String())
	sb.WriteString("@lab:")
	sb.WriteString(d.Lab.String())
	return sb.String()
}

// Value is the canonical validated value of a configuration variable. It is
// a small tagged union; the typed accessors panic when called for the wrong
// kind, which always indicates a programming error rather than bad input.
type Value struct {
	kind Kind
	num  float64
	i    int64
	b    bool
	s    string
	vec  Vector
	dir  OrientDir
}

// NumberValue wraps a float as a Value.
func NumberValue(v float64) Value { return Value{kind: KindNumber, num: v} }

// IntValue wraps an integer as a Value.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// BoolValue wraps a boolean as a Value.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// StringValue wraps a string as a Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// VectorValue wraps a vector as a Value.
func VectorValue(v Vector) Value { return Value{kind: KindVector, vec: v} }

// OrientationValue wraps an orientation descriptor as a Value.
func OrientationValue(d OrientDir) Value { return Value{kind: KindOrientation, dir: d} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric value. It panics unless the kind is KindNumber.
func (v Value) Float() float64 {
	v.mustBe(KindNumber)
	return v.num
}

// Int returns the integer value. It panics unless the kind is KindInt.
func (v Value) Int() int64 {
	v.mustBe(KindInt)
	return v.i
}

// Bool returns the boolean value. It panics unless the kind is KindBool.
func (v Value) Bool() bool {
	v.mustBe(KindBool)
	return v.b
}

// Str returns the string value. It panics unless the kind is KindString.
func (v Value) Str() string {
	v.mustBe(KindString)
	return v.s
}

// Vector returns the vector value. It panics unless the kind is KindVector.
func (v Value) Vector() Vector {
	v.mustBe(KindVector)
	return v.vec
}

// Orientation returns the orientation value. It panics unless the kind is
// KindOrientation.
func (v Value) Orientation() OrientDir {
	v.mustBe(KindOrientation)
	return v.dir
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("cfgvar: %s accessor used on %s value", k, v.kind))
	}
}

// String renders the canonical textual form of the value. For any variable,
// feeding this form back through Info.Parse yields an equal Value.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindVector:
		return v.vec.String()
	case KindOrientation:
		return v.dir.String()
	default:
		return fmt.Sprintf("Value(kind=%d)", int(v.kind))
	}
}

func formatNumber(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
