package iterator

import (
	"go.lepak.sg/avltree/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderStack[int])(nil)

// InOrderStack is an iterator object over a binary tree.
// It is functionally equivalent to InOrder, but this does
// not rely on the node parent pointer, instead keeping
// an internal stack of previous nodes.
// Unlike InOrder, it is not restarted by calling Next
// after the end of iteration.
type InOrderStack[T constraints.Ordered] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2).
// When we pop off a frame from i.stack, we'll know
// we should be in the second half of visit, because we
// already did the first half before pushing on this frame.
// We can resume from (2), popping off the frame and
// pushing on all the left children of the right child.

// NewInOrderStack creates a new in-order iterator.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrderStack[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *InOrderStack[T] {
	return &InOrderStack[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, max(heightHint, 0)+1),
	}
}

func (i *InOrderStack[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left()
	}
}

func (i *InOrderStack[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(pop.Right())

	return len(i.stack) > 0
}

func (i *InOrderStack[T]) Item() T {
	return i.stack[len(i.stack)-1].Key()
}
