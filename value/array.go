package value

import "iter"

// Array is the container behind an array [Value]. Elements are boxed, so
// a *Value obtained from the array stays valid across later insertions
// and removals regardless of backing.
//
// Obtain an Array via [Value.AsArray]; mutations are visible through the
// owning Value.
type Array struct {
	s arrayStore
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return a.s.len()
}

// Get returns the element at position i and true, or (nil, false) when
// i is out of range.
func (a *Array) Get(i int) (*Value, bool) {
	if i < 0 || i >= a.s.len() {
		return nil, false
	}
	return a.s.at(i), true
}

// PushBack appends v, taking ownership. A nil v appends null.
func (a *Array) PushBack(v *Value) {
	if v == nil {
		v = Null()
	}
	a.s.pushBack(v)
}

// PopFront removes and returns the first element. Returns (nil, false)
// on an empty array. Ownership of the element returns to the caller.
func (a *Array) PopFront() (*Value, bool) {
	return a.s.popFront()
}

// PopBack removes and returns the last element. Returns (nil, false)
// on an empty array. Ownership of the element returns to the caller.
func (a *Array) PopBack() (*Value, bool) {
	return a.s.popBack()
}

// Remove deletes the element at position i, reporting whether i was in
// range.
func (a *Array) Remove(i int) bool {
	if i < 0 || i >= a.s.len() {
		return false
	}
	a.s.removeAt(i)
	return true
}

// All returns an iterator over (position, element) pairs in insertion
// order. The array must not be mutated during iteration.
func (a *Array) All() iter.Seq2[int, *Value] {
	return a.s.seq()
}
