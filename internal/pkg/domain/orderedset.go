package domain

import (
	"golang.org/x/exp/slices"
)

//OrderedSet keeps the first insertion of every distinct value, in insertion order
type OrderedSet[T comparable] struct {
	items []T
	seen  map[T]struct{}
}

func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{seen: map[T]struct{}{}}
	s.Add(values...)
	return s
}

//Add inserts the values that are not already present and reports whether
//anything was inserted
func (s *OrderedSet[T]) Add(values ...T) bool {
	added := false

	for _, v := range values {
		if s.Contains(v) {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
		added = true
	}

	return added
}

func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

//Values returns a copy of the set contents in insertion order
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.items)
}
