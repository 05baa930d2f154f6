package value

// Equal reports deep structural equality.
//
// Arrays compare element-wise in order. Objects compare
// order-insensitively after de-duplication by last write wins: two
// objects are equal iff they project to the same key-to-value mapping
// using the last occurrence of each duplicate key. Numbers compare by
// mathematical value across internal forms (see [Number.Equal]).
//
// Equal is reflexive (NaN payloads excepted), symmetric, and transitive,
// and is insensitive to object reinsertion order.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v.Kind() == other.Kind()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case BoolKind:
		return v.b == other.b
	case NumberKind:
		return v.num.Equal(other.num)
	case StringKind:
		return v.str == other.str
	case ArrayKind:
		if v.arr.Len() != other.arr.Len() {
			return false
		}
		for i, e := range v.arr.All() {
			o, _ := other.arr.Get(i)
			if !e.Equal(o) {
				return false
			}
		}
		return true
	default:
		return objectProjection(v.obj).equal(objectProjection(other.obj))
	}
}

// projection is an object's key-to-value mapping after last-wins
// de-duplication.
type projection map[string]*Value

func objectProjection(o *Object) projection {
	m := make(projection, o.Len())
	for k, e := range o.All() {
		m[k] = e
	}
	return m
}

func (m projection) equal(other projection) bool {
	if len(m) != len(other) {
		return false
	}
	for k, e := range m {
		o, ok := other[k]
		if !ok || !e.Equal(o) {
			return false
		}
	}
	return true
}
