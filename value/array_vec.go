//go:build !list_array

package value

import (
	"iter"
	"slices"
)

// arrayStore is the contiguous-sequence array backing: O(1) push,
// cache-friendly iteration, O(n) front removal.
type arrayStore struct {
	elems []*Value
}

func (s *arrayStore) len() int {
	return len(s.elems)
}

func (s *arrayStore) at(i int) *Value {
	return s.elems[i]
}

func (s *arrayStore) pushBack(v *Value) {
	s.elems = append(s.elems, v)
}

func (s *arrayStore) popFront() (*Value, bool) {
	if len(s.elems) == 0 {
		return nil, false
	}
	v := s.elems[0]
	s.elems = slices.Delete(s.elems, 0, 1)
	return v, true
}

func (s *arrayStore) popBack() (*Value, bool) {
	if len(s.elems) == 0 {
		return nil, false
	}
	v := s.elems[len(s.elems)-1]
	s.elems = s.elems[:len(s.elems)-1]
	return v, true
}

func (s *arrayStore) removeAt(i int) {
	s.elems = slices.Delete(s.elems, i, i+1)
}

func (s *arrayStore) seq() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}
