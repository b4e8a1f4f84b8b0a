// Package iterator provides tree iterators for use
// by tree implementations.
package iterator

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
}

// Seq adapts iterators to a range-over-func sequence.
// mk is called once per range loop, so the sequence can be
// ranged over again and each loop sees the tree as it is then:
//
//	for k := range iterator.Seq(mk) {
//		...
//	}
func Seq[T constraints.Ordered](mk func() Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := mk()
		for i.Next() {
			if !yield(i.Item()) {
				return
			}
		}
	}
}
