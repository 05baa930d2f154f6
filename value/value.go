package value

import (
	"strconv"
	"strings"
)

// Value is a JSON value: one of null, bool, number, string, array, or
// object. The variant is fixed by construction and changed only through
// the Set* mutators or write-mode indexing ([Value.Ensure]).
//
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  Number
	str  string
	arr  *Array
	obj  *Object
}

// sharedNull is the sentinel returned by read-mode indexing. It is
// effectively immutable and freely shareable across goroutines; callers
// must never mutate it.
var sharedNull = &Value{kind: NullKind}

// Null returns a new null Value.
func Null() *Value {
	return &Value{kind: NullKind}
}

// Bool returns a new boolean Value.
func Bool(b bool) *Value {
	return &Value{kind: BoolKind, b: b}
}

// Int returns a new number Value in signed integer form.
func Int(i int64) *Value {
	return &Value{kind: NumberKind, num: IntNumber(i)}
}

// Uint returns a new number Value. See [UintNumber] for form selection.
func Uint(u uint64) *Value {
	return &Value{kind: NumberKind, num: UintNumber(u)}
}

// Float returns a new number Value in double form.
func Float(f float64) *Value {
	return &Value{kind: NumberKind, num: FloatNumber(f)}
}

// FromNumber returns a new number Value holding n.
func FromNumber(n Number) *Value {
	return &Value{kind: NumberKind, num: n}
}

// String returns a new string Value. The string must be valid UTF-8;
// interior NUL bytes are permitted.
func String(s string) *Value {
	return &Value{kind: StringKind, str: s}
}

// NewArray returns a new array Value containing elems in order.
// Ownership of the elements transfers to the array; nil elements are
// stored as null.
func NewArray(elems ...*Value) *Value {
	a := &Array{}
	for _, e := range elems {
		a.PushBack(e)
	}
	return &Value{kind: ArrayKind, arr: a}
}

// NewObject returns a new empty object Value.
func NewObject() *Value {
	return &Value{kind: ObjectKind, obj: &Object{}}
}

// Kind returns the variant held by the value. A nil receiver is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return NullKind
	}
	return v.kind
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v.Kind() == NullKind }

// IsBool reports whether the value is a boolean.
func (v *Value) IsBool() bool { return v.Kind() == BoolKind }

// IsNumber reports whether the value is a number.
func (v *Value) IsNumber() bool { return v.Kind() == NumberKind }

// IsString reports whether the value is a string.
func (v *Value) IsString() bool { return v.Kind() == StringKind }

// IsArray reports whether the value is an array.
func (v *Value) IsArray() bool { return v.Kind() == ArrayKind }

// IsObject reports whether the value is an object.
func (v *Value) IsObject() bool { return v.Kind() == ObjectKind }

// AsBool returns the boolean payload, or [*TypeMismatchError] if the
// value is not a boolean.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != BoolKind {
		return false, mismatch(BoolKind, v.Kind())
	}
	return v.b, nil
}

// AsNumber returns the number payload, or [*TypeMismatchError] if the
// value is not a number.
func (v *Value) AsNumber() (Number, error) {
	if v.Kind() != NumberKind {
		return Number{}, mismatch(NumberKind, v.Kind())
	}
	return v.num, nil
}

// AsString returns the string payload, or [*TypeMismatchError] if the
// value is not a string.
func (v *Value) AsString() (string, error) {
	if v.Kind() != StringKind {
		return "", mismatch(StringKind, v.Kind())
	}
	return v.str, nil
}

// AsArray returns the array container, or [*TypeMismatchError] if the
// value is not an array. Mutating the returned *Array mutates v.
func (v *Value) AsArray() (*Array, error) {
	if v.Kind() != ArrayKind {
		return nil, mismatch(ArrayKind, v.Kind())
	}
	return v.arr, nil
}

// AsObject returns the object container, or [*TypeMismatchError] if the
// value is not an object. Mutating the returned *Object mutates v.
func (v *Value) AsObject() (*Object, error) {
	if v.Kind() != ObjectKind {
		return nil, mismatch(ObjectKind, v.Kind())
	}
	return v.obj, nil
}

// SetNull replaces the value with null, releasing any payload.
func (v *Value) SetNull() { *v = Value{kind: NullKind} }

// SetBool replaces the value with the boolean b.
func (v *Value) SetBool(b bool) { *v = Value{kind: BoolKind, b: b} }

// SetInt replaces the value with the integer i.
func (v *Value) SetInt(i int64) { *v = Value{kind: NumberKind, num: IntNumber(i)} }

// SetUint replaces the value with the unsigned integer u.
func (v *Value) SetUint(u uint64) { *v = Value{kind: NumberKind, num: UintNumber(u)} }

// SetFloat replaces the value with the double f.
func (v *Value) SetFloat(f float64) { *v = Value{kind: NumberKind, num: FloatNumber(f)} }

// SetNumber replaces the value with the number n.
func (v *Value) SetNumber(n Number) { *v = Value{kind: NumberKind, num: n} }

// SetString replaces the value with the string s.
func (v *Value) SetString(s string) { *v = Value{kind: StringKind, str: s} }

// Set moves the contents of other into v, taking ownership of other's
// payload. After Set returns, other must not be used. A nil other sets
// v to null.
func (v *Value) Set(other *Value) {
	if other == nil {
		v.SetNull()
		return
	}
	*v = *other
}

// Clone returns a deep copy of the value. The copy owns all of its
// payload; the original is unchanged.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	switch v.kind {
	case ArrayKind:
		c := &Array{}
		for _, e := range v.arr.All() {
			c.PushBack(e.Clone())
		}
		return &Value{kind: ArrayKind, arr: c}
	case ObjectKind:
		c := &Object{}
		for k, e := range v.obj.All() {
			c.Insert(k, e.Clone())
		}
		return &Value{kind: ObjectKind, obj: c}
	default:
		c := *v
		return &c
	}
}

// String returns a compact diagnostic rendering of the value. The output
// resembles JSON but uses Go string quoting; use the encode package for
// conformant text.
func (v *Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v *Value) render(sb *strings.Builder) {
	switch v.Kind() {
	case NullKind:
		sb.WriteString("null")
	case BoolKind:
		sb.WriteString(strconv.FormatBool(v.b))
	case NumberKind:
		sb.WriteString(v.num.String())
	case StringKind:
		sb.WriteString(strconv.Quote(v.str))
	case ArrayKind:
		sb.WriteByte('[')
		first := true
		for _, e := range v.arr.All() {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			e.render(sb)
		}
		sb.WriteByte(']')
	case ObjectKind:
		sb.WriteByte('{')
		first := true
		for k, e := range v.obj.All() {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			e.render(sb)
		}
		sb.WriteByte('}')
	}
}
