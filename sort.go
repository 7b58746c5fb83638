package superset

import (
	"github.com/denismitr/dll"
	"golang.org/x/exp/constraints"
)

type LessFn[T comparable] func(a T, b T) (less bool)

// SortBy returns a sorted clone, leaving the receiver's insertion
// order untouched.
func (s *SuperSet[T]) SortBy(lessFn LessFn[T]) *SuperSet[T] {
	clone := s.Clone()
	clone.list.Sort(dll.LessFn[T](lessFn))
	return clone
}

// Sorted returns a clone sorted in natural ascending order.
func Sorted[T constraints.Ordered](s *SuperSet[T]) *SuperSet[T] {
	return s.SortBy(func(a T, b T) bool {
		return a < b
	})
}
