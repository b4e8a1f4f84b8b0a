// Package avl implements a self-balancing binary search tree.
//
// An AVL tree keeps the heights of the two subtrees of every node within
// one of each other, so the height of a tree holding n keys never exceeds
// about 1.44·log2(n+2). Search, insertion and deletion all take O(log n).
//
// The tree is built by composition: it holds an unbalanced binary.Tree,
// lets it do the structural work of each insert or delete, then walks
// from the point of change up to the root, fixing heights and rotating
// wherever a node is out of balance.
package avl

import (
	"iter"

	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/binary"
	"go.lepak.sg/avltree/tree/iterator"
	"go.lepak.sg/avltree/tree/render"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree. It is not safe for concurrent use: if a tree is
// shared between goroutines and at least one of them modifies it, access
// must be synchronized externally.
//
// The zero Tree may be used immediately. Tree should not be copied
// after first use.
//
// Duplicate keys are allowed and are inserted to the right of equal
// keys, although rebalancing may later move an equal key to the left.
type Tree[T constraints.Ordered] struct {
	core binary.Tree[T]
	opts options
}

// Option configures a Tree created with New.
type Option func(*options)

type options struct {
	checkInvariants bool
}

// WithInvariantChecks makes the tree validate itself after every
// mutation and panic with a *tree.InvariantViolation if anything is
// wrong. It makes every mutation O(n) and is meant for tests and
// debugging.
func WithInvariantChecks() Option {
	return func(o *options) {
		o.checkInvariants = true
	}
}

// New returns an empty tree configured by opts.
func New[T constraints.Ordered](opts ...Option) *Tree[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[T]{
		opts: o,
	}
}

// Insert inserts k and returns the node holding it.
// If k is already in the tree, another copy is added.
func (t *Tree[T]) Insert(k T) *tree.Node[T] {
	n := t.core.Insert(k)
	t.balance(n)
	t.mustHoldInvariants()

	return n
}

// Delete removes one copy of k from the tree. It returns the node that
// was physically unlinked, which is the node of k's in-order successor
// when k's node had two children (the successor's key then lives on in
// k's old node). If k is not in the tree, Delete returns false.
func (t *Tree[T]) Delete(k T) (*tree.Node[T], bool) {
	removed, ok := t.core.Delete(k)
	if !ok {
		return nil, false
	}

	// nil if the tree had a childless root: nothing left to balance
	t.balance(removed.Parent())
	t.mustHoldInvariants()

	return removed, true
}

// Find returns a node holding k, or false if there is none.
func (t *Tree[T]) Find(k T) (*tree.Node[T], bool) {
	return t.core.Find(k)
}

// FindRecursive is like Find, but searches recursively.
func (t *Tree[T]) FindRecursive(k T) (*tree.Node[T], bool) {
	return t.core.FindRecursive(k)
}

// Contains returns true if k is in the tree.
func (t *Tree[T]) Contains(k T) bool {
	return t.core.Contains(k)
}

// Min returns the node with the smallest key, or false if the tree is empty.
func (t *Tree[T]) Min() (*tree.Node[T], bool) {
	return t.core.Min()
}

// Max returns the node with the largest key, or false if the tree is empty.
func (t *Tree[T]) Max() (*tree.Node[T], bool) {
	return t.core.Max()
}

// Successor returns a node holding the smallest key greater than k.
// ok is false if k is not in the tree, or if k is the largest key.
func (t *Tree[T]) Successor(k T) (*tree.Node[T], bool) {
	return t.core.Successor(k)
}

// Predecessor returns a node holding the largest key less than k.
// ok is false if k is not in the tree, or if k is the smallest key.
func (t *Tree[T]) Predecessor(k T) (*tree.Node[T], bool) {
	return t.core.Predecessor(k)
}

// Less returns the largest key less than k, which need not be in the tree.
func (t *Tree[T]) Less(k T) (T, bool) {
	return t.core.Less(k)
}

// Greater returns the smallest key greater than k, which need not be in
// the tree.
func (t *Tree[T]) Greater(k T) (T, bool) {
	return t.core.Greater(k)
}

// Root returns the root node, or nil if the tree is empty.
// The node is for navigation only.
func (t *Tree[T]) Root() *tree.Node[T] {
	return t.core.Root()
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[T]) Len() int {
	return t.core.Len()
}

// Height returns the height of the tree: -1 if it is empty, 0 for a
// single node. This is O(1).
func (t *Tree[T]) Height() int {
	return tree.HeightOf(t.core.Root())
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	t.core.InOrder(f)
}

// All returns a sequence of the keys in the tree in-order.
// Each range over it starts a fresh walk over the tree as it is then.
func (t *Tree[T]) All() iter.Seq[T] {
	return iterator.Seq(func() iterator.Iterator[T] {
		return t.InOrderStackIterator()
	})
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return t.core.InOrderIterator()
}

// InOrderStackIterator is like InOrderIterator, but keeps an explicit
// stack sized from the tree's height instead of following parent
// pointers.
func (t *Tree[T]) InOrderStackIterator() *iterator.InOrderStack[T] {
	return iterator.NewInOrderStack(t.core.Root(), t.Height())
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in reverse order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return t.core.InOrderReverseIterator()
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// See binary.Tree.InOrderCoroutine.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	return t.core.InOrderCoroutine()
}

// CheckInvariants validates the whole tree: key order, parent links,
// cached heights and height balance. It returns a
// *tree.InvariantViolation describing the first problem found.
// A violation means this package is broken.
func (t *Tree[T]) CheckInvariants() error {
	if err := t.core.CheckInvariants(); err != nil {
		return err
	}

	return t.core.Root().CheckBalance()
}

func (t *Tree[T]) mustHoldInvariants() {
	if !t.opts.checkInvariants {
		return
	}

	if err := t.CheckInvariants(); err != nil {
		panic(err)
	}
}

// String returns a string representation of the tree with each node's
// height. See render.Box for the format.
func (t *Tree[T]) String() string {
	return render.Box(t.core.Root(), render.Options{Heights: true})
}
