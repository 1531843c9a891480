// Package idset implements a small generic set of opaque identities, used
// for the statement table's internal bookkeeping: tracking which
// validators currently have an open misbehavior claim.
package idset

import "golang.org/x/exp/maps"

// Set is a set of unique comparable elements.
type Set[T comparable] map[T]struct{}

// Of returns a Set initialized with elts.
func Of[T comparable](elts ...T) Set[T] {
	s := make(Set[T], len(elts))
	s.Add(elts...)
	return s
}

// Add adds elements to the set.
func (s Set[T]) Add(elts ...T) {
	for _, elt := range elts {
		s[elt] = struct{}{}
	}
}

// Contains returns true if the set contains elt.
func (s Set[T]) Contains(elt T) bool {
	_, ok := s[elt]
	return ok
}

// Remove removes elements from the set.
func (s Set[T]) Remove(elts ...T) {
	for _, elt := range elts {
		delete(s, elt)
	}
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// List returns the elements of the set as a slice, in non-deterministic
// order.
func (s Set[T]) List() []T {
	return maps.Keys(s)
}
