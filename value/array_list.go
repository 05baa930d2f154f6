//go:build list_array

package value

import "iter"

// arrayStore is the doubly-linked-list array backing. Every element node
// is individually boxed, so element addresses survive insertion and
// removal anywhere in the array. Positional access is O(n).
type arrayStore struct {
	l list[*Value]
}

func (s *arrayStore) len() int {
	return s.l.len()
}

func (s *arrayStore) at(i int) *Value {
	return s.l.at(i).elem
}

func (s *arrayStore) pushBack(v *Value) {
	s.l.pushBack(v)
}

func (s *arrayStore) popFront() (*Value, bool) {
	n := s.l.front()
	if n == nil {
		return nil, false
	}
	return s.l.remove(n), true
}

func (s *arrayStore) popBack() (*Value, bool) {
	n := s.l.back()
	if n == nil {
		return nil, false
	}
	return s.l.remove(n), true
}

func (s *arrayStore) removeAt(i int) {
	s.l.remove(s.l.at(i))
}

func (s *arrayStore) seq() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		i := 0
		for n := s.l.front(); n != nil; {
			next := n.next
			if next == &s.l.root {
				next = nil
			}
			if !yield(i, n.elem) {
				return
			}
			n = next
			i++
		}
	}
}

// Cursor is a held position within a list-backed Array. It supports O(1)
// insertion and removal at either end and at the held element, which is
// the property the linked backing exists for.
//
// A Cursor is invalidated only by the removal of its held element through
// another cursor, [Array.Remove], [Array.PopFront], or [Array.PopBack];
// unrelated mutations leave it valid.
type Cursor struct {
	c cursor[*Value]
}

// CursorFront returns a cursor at the first element. The cursor is
// invalid when the array is empty.
func (a *Array) CursorFront() *Cursor {
	return &Cursor{c: a.s.l.cursorFront()}
}

// CursorBack returns a cursor at the last element. The cursor is
// invalid when the array is empty.
func (a *Array) CursorBack() *Cursor {
	return &Cursor{c: a.s.l.cursorBack()}
}

// Valid reports whether the cursor holds an element.
func (c *Cursor) Valid() bool {
	return c.c.valid()
}

// Value returns the element at the cursor. The cursor must be valid.
func (c *Cursor) Value() *Value {
	return c.c.elem()
}

// Next advances to the following element; advancing past the last
// element invalidates the cursor.
func (c *Cursor) Next() {
	c.c.next()
}

// Prev retreats to the preceding element; retreating before the first
// element invalidates the cursor.
func (c *Cursor) Prev() {
	c.c.prev()
}

// InsertBefore inserts v before the held element, or at the back when
// the cursor is past the end. Ownership of v transfers to the array.
func (c *Cursor) InsertBefore(v *Value) {
	if v == nil {
		v = Null()
	}
	c.c.insertBefore(v)
}

// InsertAfter inserts v after the held element. The cursor must be
// valid. Ownership of v transfers to the array.
func (c *Cursor) InsertAfter(v *Value) {
	if v == nil {
		v = Null()
	}
	c.c.insertAfter(v)
}

// Remove unlinks the held element, advances the cursor to its
// successor, and returns the element. The cursor must be valid.
func (c *Cursor) Remove() *Value {
	return c.c.removeHere()
}
