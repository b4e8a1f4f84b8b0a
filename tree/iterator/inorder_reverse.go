package iterator

import (
	"go.lepak.sg/avltree/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T constraints.Ordered] struct {
	root, at *tree.Node[T]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T constraints.Ordered](root *tree.Node[T]) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if i.at == nil {
		if i.root == nil {
			return false
		}

		i.at = i.root.Max()
		return true
	}

	i.at = i.at.Predecessor()
	return i.at != nil
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.at.Key()
}
