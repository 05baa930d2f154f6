package value

import "iter"

// Object is the container behind an object [Value]: an ordered multimap
// of key/value pairs. Duplicate keys are permitted and retained; [Object.Get]
// returns the first match and callers that want last-wins semantics
// iterate with [Object.All].
//
// Obtain an Object via [Value.AsObject]; mutations are visible through
// the owning Value.
type Object struct {
	s objectStore
}

// member is one key/value entry of an object.
type member struct {
	key string
	val *Value
}

// Len returns the number of entries, counting duplicates.
func (o *Object) Len() int {
	return o.s.len()
}

// Get returns the value for the first entry with the given key and true,
// or (nil, false) when the key is absent.
func (o *Object) Get(key string) (*Value, bool) {
	if v := o.s.get(key); v != nil {
		return v, true
	}
	return nil, false
}

// Insert appends an entry, taking ownership of v. Duplicate keys are
// permitted; the new entry does not replace earlier ones. A nil v
// inserts null.
func (o *Object) Insert(key string, v *Value) {
	if v == nil {
		v = Null()
	}
	o.s.insert(key, v)
}

// Remove deletes every entry with the given key and returns how many
// were removed.
func (o *Object) Remove(key string) int {
	return o.s.removeAll(key)
}

// All returns an iterator over (key, value) pairs. The vec and list
// backings iterate in insertion order; the btree backing iterates in
// sorted key order, duplicates in insertion order among themselves.
// The object must not be mutated during iteration.
func (o *Object) All() iter.Seq2[string, *Value] {
	return o.s.seq()
}
