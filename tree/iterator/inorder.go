package iterator

import (
	"go.lepak.sg/avltree/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// It follows parent pointers, so it needs no memory beyond
// the node it is at.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T constraints.Ordered] struct {
	root, at *tree.Node[T]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T constraints.Ordered](root *tree.Node[T]) *InOrder[T] {
	return &InOrder[T]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i == nil {
		return false
	}

	if i.at == nil {
		// So, if Next returned false, calling Item will cause a nil pointer dereference,
		// but, if you call Next again, Item will... return the first key in order, again!
		// Implementation detail
		if i.root == nil {
			return false
		}

		i.at = i.root.Min()
		return true
	}

	i.at = i.at.Successor()
	return i.at != nil
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Key()
}

// Node returns the node the iterator is at.
func (i *InOrder[T]) Node() *tree.Node[T] {
	return i.at
}
