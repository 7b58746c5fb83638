package superset

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type (
	TransformFn[T comparable]   func(item T, order int) T
	PredicateFn[T comparable]   func(item T, order int) bool
	ForEachFn[T comparable]     func(item T, order int)
	CombineFn[T comparable]     func(acc T, item T, order int) T
	FoldFn[T comparable, R any] func(acc R, item T, order int) R
)

// Map applies transform to every element in insertion order and collects
// the results into a new set. Duplicate outputs collapse.
func (s *SuperSet[T]) Map(transform TransformFn[T]) *SuperSet[T] {
	result := New[T]()

	curr := s.list.Head()
	order := 0
	for curr != nil {
		result.Insert(transform(curr.Value(), order))
		curr = curr.Next()
		order++
	}

	return result
}

// Map is the type-changing form: methods cannot introduce type
// parameters, so transforms into another element type go through here.
func Map[T, U comparable](s *SuperSet[T], transform func(item T, order int) U) *SuperSet[U] {
	result := New[U]()

	curr := s.list.Head()
	order := 0
	for curr != nil {
		result.Insert(transform(curr.Value(), order))
		curr = curr.Next()
		order++
	}

	return result
}

// Filter keeps the elements the predicate accepts, preserving their
// relative insertion order.
func (s *SuperSet[T]) Filter(predicate PredicateFn[T]) *SuperSet[T] {
	result := New[T]()

	curr := s.list.Head()
	order := 0
	for curr != nil {
		if predicate(curr.Value(), order) {
			result.Insert(curr.Value())
		}
		curr = curr.Next()
		order++
	}

	return result
}

// Reduce folds the set in insertion order seeding the accumulator with
// the first element. Reducing an empty set is an invalid operation;
// use Fold to supply an explicit initial value instead.
func (s *SuperSet[T]) Reduce(combine CombineFn[T]) (T, error) {
	head := s.list.Head()
	if head == nil {
		return getZero[T](), errors.Wrap(ErrInvalidOperation, "initial value required to reduce an empty set")
	}

	acc := head.Value()
	curr := head.Next()
	order := 1
	for curr != nil {
		acc = combine(acc, curr.Value(), order)
		curr = curr.Next()
		order++
	}

	return acc, nil
}

// Fold folds the set in insertion order starting from initial. An empty
// set yields initial unchanged, zero or not.
func Fold[T comparable, R any](s *SuperSet[T], initial R, combine FoldFn[T, R]) R {
	acc := initial

	curr := s.list.Head()
	order := 0
	for curr != nil {
		acc = combine(acc, curr.Value(), order)
		curr = curr.Next()
		order++
	}

	return acc
}

// Every reports whether the predicate holds for all elements, stopping
// at the first failure. Vacuously true for an empty set.
func (s *SuperSet[T]) Every(predicate PredicateFn[T]) bool {
	curr := s.list.Head()
	order := 0
	for curr != nil {
		if !predicate(curr.Value(), order) {
			return false
		}
		curr = curr.Next()
		order++
	}

	return true
}

// Some reports whether the predicate holds for at least one element,
// stopping at the first match.
func (s *SuperSet[T]) Some(predicate PredicateFn[T]) bool {
	curr := s.list.Head()
	order := 0
	for curr != nil {
		if predicate(curr.Value(), order) {
			return true
		}
		curr = curr.Next()
		order++
	}

	return false
}

// Find returns the first element the predicate accepts, false when
// nothing matches.
func (s *SuperSet[T]) Find(predicate PredicateFn[T]) (T, bool) {
	curr := s.list.Head()
	order := 0
	for curr != nil {
		if predicate(curr.Value(), order) {
			return curr.Value(), true
		}
		curr = curr.Next()
		order++
	}

	return getZero[T](), false
}

func (s *SuperSet[T]) ForEach(f ForEachFn[T]) {
	curr := s.list.Head()
	order := 0
	for curr != nil {
		f(curr.Value(), order)
		curr = curr.Next()
		order++
	}
}

// Join renders every element with %v and concatenates them in
// insertion order with sep between consecutive elements.
func (s *SuperSet[T]) Join(sep string) string {
	var b strings.Builder

	s.ForEach(func(item T, order int) {
		if order != 0 {
			b.WriteString(sep)
		}
		b.WriteString(fmt.Sprintf("%v", item))
	})

	return b.String()
}
