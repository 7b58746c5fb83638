package superset

import (
	"context"

	"github.com/denismitr/dll"
)

// SuperSet is a set of unique comparable items that remembers
// insertion order. Uniqueness follows Go equality: value equality
// for value types, pointer identity for pointers. Mutating a set
// while iterating over it is the caller's responsibility to avoid.
type SuperSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*SuperSet[int])(nil)

func New[T comparable](items ...T) *SuperSet[T] {
	s := &SuperSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}

	for _, item := range items {
		s.Insert(item)
	}

	return s
}

func (s *SuperSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *SuperSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, el.Value())
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *SuperSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]*dll.Element[T])
	s.list = nil
	s.list = dll.New[T]()
}

func (s *SuperSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *SuperSet[T]) Len() int {
	return len(s.m)
}

// Items returns the elements in insertion order.
func (s *SuperSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

// First returns the oldest inserted element, false when the set is empty.
func (s *SuperSet[T]) First() (T, bool) {
	head := s.list.Head()
	if head == nil {
		return getZero[T](), false
	}

	return head.Value(), true
}

func (s *SuperSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *SuperSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

// Update adds every given item and returns the receiver for chaining.
func (s *SuperSet[T]) Update(items ...T) *SuperSet[T] {
	s.InsertSlice(items)
	return s
}

func (s *SuperSet[T]) Clone() *SuperSet[T] {
	result := New[T]()

	curr := s.list.Head()
	for curr != nil {
		result.Insert(curr.Value())
		curr = curr.Next()
	}

	return result
}

// Elements sends the set's items in insertion order until the set
// is exhausted or ctx is cancelled.
func (s *SuperSet[T]) Elements(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		curr := s.list.Head()
		for curr != nil {
			if ctx.Err() != nil {
				return
			}

			select {
			case resultCh <- curr.Value():
			case <-ctx.Done():
				return
			}

			curr = curr.Next()
		}
	}()

	return resultCh
}

func getZero[T any]() T {
	var result T
	return result
}
