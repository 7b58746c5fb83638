package superset

// Union returns a new set with the receiver's elements followed by
// other's, deduplicated. The first occurrence wins.
func (s *SuperSet[T]) Union(other *SuperSet[T]) *SuperSet[T] {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

// Subtract returns the receiver's elements not present in other, in
// the receiver's insertion order. Asymmetric.
func (s *SuperSet[T]) Subtract(other *SuperSet[T]) *SuperSet[T] {
	return s.Filter(func(item T, order int) bool {
		return !other.Has(item)
	})
}

// Xor returns the symmetric difference: elements present in exactly
// one of the two sets. The receiver's leftovers come first, then
// other's, each in their own insertion order.
func (s *SuperSet[T]) Xor(other *SuperSet[T]) *SuperSet[T] {
	return s.Subtract(other).Union(other.Subtract(s))
}

// Intersect returns the receiver's elements present in other, in the
// receiver's insertion order.
func (s *SuperSet[T]) Intersect(other *SuperSet[T]) *SuperSet[T] {
	return s.Filter(func(item T, order int) bool {
		return other.Has(item)
	})
}

// IsSubsetOf reports whether every element of the receiver is a member
// of other. Vacuously true for an empty receiver.
func (s *SuperSet[T]) IsSubsetOf(other *SuperSet[T]) bool {
	return s.Every(func(item T, order int) bool {
		return other.Has(item)
	})
}

// Equals reports whether both sets hold exactly the same elements.
// Size equality plus subset implies mutual subset.
func (s *SuperSet[T]) Equals(other *SuperSet[T]) bool {
	return s.Len() == other.Len() && s.IsSubsetOf(other)
}
