package value

import (
	"math"
	"strconv"
)

// NumberForm identifies the internal representation of a [Number].
type NumberForm uint8

const (
	// IntForm stores a signed 64-bit integer.
	IntForm NumberForm = iota
	// UintForm stores an unsigned 64-bit integer. The parser uses this
	// form only for positive literals above the int64 range.
	UintForm
	// FloatForm stores an IEEE-754 double.
	FloatForm
)

// String returns the lowercase name of the form.
func (f NumberForm) String() string {
	switch f {
	case IntForm:
		return "int64"
	case UintForm:
		return "uint64"
	case FloatForm:
		return "float64"
	default:
		return "unknown"
	}
}

// Number is a JSON number in one of three internal forms: signed integer,
// unsigned integer, or binary double. The parser places each literal in
// the narrowest form that losslessly represents it, preferring integers.
//
// Number is a value type; the zero value is the integer 0.
type Number struct {
	form NumberForm
	i    int64
	u    uint64
	f    float64
}

// IntNumber returns a Number holding i in integer form.
func IntNumber(i int64) Number {
	return Number{form: IntForm, i: i}
}

// UintNumber returns a Number holding u. Values within the int64 range
// normalise to integer form so that equal mathematical values share a
// representation.
func UintNumber(u uint64) Number {
	if u <= math.MaxInt64 {
		return Number{form: IntForm, i: int64(u)}
	}
	return Number{form: UintForm, u: u}
}

// FloatNumber returns a Number holding f in double form. No finiteness
// check happens here; the encoder rejects non-finite doubles at emission.
func FloatNumber(f float64) Number {
	return Number{form: FloatForm, f: f}
}

// Form returns the internal representation of the number.
func (n Number) Form() NumberForm {
	return n.form
}

// Int64 converts the number to a signed 64-bit integer.
//
// The conversion fails with [*TypeMismatchError] when the value has a
// fractional part, is non-finite, or is out of the int64 range.
func (n Number) Int64() (int64, error) {
	switch n.form {
	case IntForm:
		return n.i, nil
	case UintForm:
		// UintForm only holds values above MaxInt64.
		return 0, &TypeMismatchError{Want: "int64", Got: "uint64 above int64 range"}
	default:
		f := n.f
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &TypeMismatchError{Want: "int64", Got: "non-finite number"}
		}
		if f != math.Trunc(f) {
			return 0, &TypeMismatchError{Want: "int64", Got: "fractional number"}
		}
		lo := float64(math.MinInt64)
		if f < lo || f >= -lo {
			return 0, &TypeMismatchError{Want: "int64", Got: "out-of-range number"}
		}
		return int64(f), nil
	}
}

// Uint64 converts the number to an unsigned 64-bit integer.
//
// The conversion fails with [*TypeMismatchError] when the value is
// negative, has a fractional part, is non-finite, or is out of range.
func (n Number) Uint64() (uint64, error) {
	switch n.form {
	case IntForm:
		if n.i < 0 {
			return 0, &TypeMismatchError{Want: "uint64", Got: "negative number"}
		}
		return uint64(n.i), nil
	case UintForm:
		return n.u, nil
	default:
		f := n.f
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &TypeMismatchError{Want: "uint64", Got: "non-finite number"}
		}
		if f != math.Trunc(f) {
			return 0, &TypeMismatchError{Want: "uint64", Got: "fractional number"}
		}
		if f < 0 || f >= math.Ldexp(1, 64) {
			return 0, &TypeMismatchError{Want: "uint64", Got: "out-of-range number"}
		}
		return uint64(f), nil
	}
}

// Float64 returns the number as a double, best effort. Integer values
// above 2^53 may lose precision; use [Number.Int64] or [Number.Uint64]
// for exact access.
func (n Number) Float64() float64 {
	switch n.form {
	case IntForm:
		return float64(n.i)
	case UintForm:
		return float64(n.u)
	default:
		return n.f
	}
}

// Equal reports whether two numbers have the same mathematical value,
// regardless of internal form. NaN is not equal to anything, including
// itself; negative zero equals zero.
func (n Number) Equal(other Number) bool {
	a, b := n, other
	// Order the pair so fewer cases remain.
	if a.form > b.form {
		a, b = b, a
	}
	switch {
	case a.form == IntForm && b.form == IntForm:
		return a.i == b.i
	case a.form == IntForm && b.form == UintForm:
		return a.i >= 0 && uint64(a.i) == b.u
	case a.form == IntForm && b.form == FloatForm:
		return intEqualsFloat(a.i, b.f)
	case a.form == UintForm && b.form == UintForm:
		return a.u == b.u
	case a.form == UintForm && b.form == FloatForm:
		return uintEqualsFloat(a.u, b.f)
	default:
		return a.f == b.f
	}
}

// String returns a decimal rendering of the number for diagnostics.
func (n Number) String() string {
	switch n.form {
	case IntForm:
		return strconv.FormatInt(n.i, 10)
	case UintForm:
		return strconv.FormatUint(n.u, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

// intEqualsFloat compares an int64 and a double exactly, without the
// precision loss of converting the integer to float64.
func intEqualsFloat(i int64, f float64) bool {
	if f != math.Trunc(f) {
		return false
	}
	lo := float64(math.MinInt64)
	if f < lo || f >= -lo {
		return false
	}
	return int64(f) == i
}

// uintEqualsFloat compares a uint64 and a double exactly.
func uintEqualsFloat(u uint64, f float64) bool {
	if f != math.Trunc(f) {
		return false
	}
	if f < 0 || f >= math.Ldexp(1, 64) {
		return false
	}
	return uint64(f) == u
}
