package value

// Resolve navigates the path in read mode and returns the referenced
// value.
//
// Resolve is total and never mutates: when a step is absent, a position
// is out of range, or a step kind does not match the variant it lands
// on, the shared null sentinel is returned instead. The sentinel behaves
// as null and MUST NOT be mutated; it is never storage owned by any
// tree. For duplicate object keys, a key step follows the first
// occurrence.
func (v *Value) Resolve(p Path) *Value {
	cur := v
	if cur == nil {
		return sharedNull
	}
	for _, s := range p.steps {
		switch s.kind {
		case stepKey:
			if cur.kind != ObjectKind {
				return sharedNull
			}
			next, ok := cur.obj.Get(s.key)
			if !ok {
				return sharedNull
			}
			cur = next
		default:
			if cur.kind != ArrayKind {
				return sharedNull
			}
			next, ok := cur.arr.Get(s.pos)
			if !ok {
				return sharedNull
			}
			cur = next
		}
	}
	return cur
}

// Ensure navigates the path in write mode, materialising missing or
// mismatched segments, and returns the now-present leaf for mutation.
//
// At each step:
//   - a key step into a non-object replaces that node with an empty
//     object, then inserts key -> null if the key is absent;
//   - a position step into a non-array replaces that node with an empty
//     array;
//   - a position step past the end of an array appends nulls up to and
//     including the requested position.
//
// After any sequence of Ensure calls the tree remains a valid value
// tree. The receiver must not be nil.
func (v *Value) Ensure(p Path) *Value {
	cur := v
	for _, s := range p.steps {
		switch s.kind {
		case stepKey:
			if cur.kind != ObjectKind {
				*cur = Value{kind: ObjectKind, obj: &Object{}}
			}
			next, ok := cur.obj.Get(s.key)
			if !ok {
				next = Null()
				cur.obj.Insert(s.key, next)
			}
			cur = next
		default:
			if cur.kind != ArrayKind {
				*cur = Value{kind: ArrayKind, arr: &Array{}}
			}
			for cur.arr.Len() <= s.pos {
				cur.arr.PushBack(Null())
			}
			next, _ := cur.arr.Get(s.pos)
			cur = next
		}
	}
	return cur
}
