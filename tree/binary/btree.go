package binary

import (
	"iter"

	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/iterator"
	"go.lepak.sg/avltree/tree/render"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, deleting, rotating). Callers that need that must lock
// around the tree themselves.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree is not self-balancing. It is the core that package avl
// builds on: Insert, Delete, RotateLeft and RotateRight return the
// nodes they affected so a balancing layer can repair from there.
//
// Duplicate keys are allowed. A key equal to a node's key is inserted
// into that node's right subtree.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than or equal to N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than or equal to N.Key
//   - Every child's parent is the node it hangs off, and the root has no parent
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// nodes handed out are for navigation only; mutating through
	// them bypasses count and the root slot.
	root  *tree.Node[T]
	count int
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *tree.Node[T] {
	return t.root
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[T]) Len() int {
	return t.count
}

// Height returns the height of the tree by walking it.
// An empty tree has height -1, a single node has height 0.
func (t *Tree[T]) Height() int {
	return tree.MeasureHeight(t.root)
}

// Balanced returns true if at every node, the heights of the
// left and right subtrees differ by at most one.
func (t *Tree[T]) Balanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

func balancedHeight[T constraints.Ordered](n *tree.Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}

	l, ok := balancedHeight(n.Left())
	if !ok {
		return 0, false
	}

	r, ok := balancedHeight(n.Right())
	if !ok {
		return 0, false
	}

	if l-r > 1 || r-l > 1 {
		return 0, false
	}

	return 1 + max(l, r), true
}

// Find returns a node holding k, or false if there is none.
func (t *Tree[T]) Find(k T) (*tree.Node[T], bool) {
	n := t.root.Find(k)
	return n, n != nil
}

// FindRecursive is like Find, but searches recursively.
func (t *Tree[T]) FindRecursive(k T) (*tree.Node[T], bool) {
	n := t.root.FindRecursive(k)
	return n, n != nil
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.root.Find(k) != nil
}

// Min returns the node with the smallest key, or false if the tree is empty.
func (t *Tree[T]) Min() (*tree.Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.Min(), true
}

// Max returns the node with the largest key, or false if the tree is empty.
func (t *Tree[T]) Max() (*tree.Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.Max(), true
}

// Successor returns a node holding the smallest key greater than k.
// ok is false if k is not in the tree, or if k is the largest key.
func (t *Tree[T]) Successor(k T) (s *tree.Node[T], ok bool) {
	n := t.root.Find(k)
	if n == nil {
		return
	}

	// skip over duplicates of k
	s = n.Successor()
	for s != nil && s.Key() == k {
		s = s.Successor()
	}

	return s, s != nil
}

// Predecessor returns a node holding the largest key less than k.
// ok is false if k is not in the tree, or if k is the smallest key.
func (t *Tree[T]) Predecessor(k T) (p *tree.Node[T], ok bool) {
	n := t.root.Find(k)
	if n == nil {
		return
	}

	p = n.Predecessor()
	for p != nil && p.Key() == k {
		p = p.Predecessor()
	}

	return p, p != nil
}

// Less returns the largest key in the tree
// that is less than k. k does not need to be in the tree.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// The best candidate so far is the last node where we went right.
	n := t.root
	for n != nil {
		if n.Key() < k {
			p, ok = n.Key(), true
			n = n.Right()
		} else {
			n = n.Left()
		}
	}

	return
}

// Greater returns the smallest key in the tree
// that is greater than k. k does not need to be in the tree.
// If there is no key in the tree greater than k,
// g is the zero T and ok is false.
func (t *Tree[T]) Greater(k T) (g T, ok bool) {
	n := t.root
	for n != nil {
		if n.Key() > k {
			g, ok = n.Key(), true
			n = n.Left()
		} else {
			n = n.Right()
		}
	}

	return
}

// Insert inserts k into the binary tree and returns the new leaf.
// If k is already in the tree, another copy is added.
func (t *Tree[T]) Insert(k T) *tree.Node[T] {
	nn := tree.NodeOf(k)

	if t.root == nil {
		t.root = nn
	} else {
		t.root.Insert(nn)
	}

	t.count++
	return nn
}

// Delete removes one copy of k from the tree. It returns the node that
// was physically unlinked, which is not necessarily the node that held
// k: if that node had two children, it takes over its successor's key
// and the successor is unlinked instead. Either way, the returned node's
// Parent is where the tree structure changed.
// If k is not in the tree, Delete returns false.
func (t *Tree[T]) Delete(k T) (*tree.Node[T], bool) {
	n := t.root.Find(k)
	if n == nil {
		return nil, false
	}

	if n == t.root && (n.Left() == nil || n.Right() == nil) {
		t.root = n.Left()
		if t.root == nil {
			t.root = n.Right()
		}
	}

	removed := n.Delete()
	t.count--

	return removed, true
}

// RotateLeft rotates n to the left, see tree.Node.RotateLeft,
// and returns the node that took its place.
// If n was the root, the root is updated.
func (t *Tree[T]) RotateLeft(n *tree.Node[T]) *tree.Node[T] {
	p := n.RotateLeft()
	if p.Parent() == nil {
		t.root = p
	}
	return p
}

// RotateRight rotates n to the right, see tree.Node.RotateRight,
// and returns the node that took its place.
// If n was the root, the root is updated.
func (t *Tree[T]) RotateRight(n *tree.Node[T]) *tree.Node[T] {
	l := n.RotateRight()
	if l.Parent() == nil {
		t.root = l
	}
	return l
}

// CheckInvariants validates the ordering and parent links of the whole
// tree and returns a *tree.InvariantViolation describing the first
// problem found. It is meant for tests and debugging: a violation means
// the tree implementation is broken.
func (t *Tree[T]) CheckInvariants() error {
	if t.root == nil {
		return nil
	}

	if t.root.Parent() != nil {
		return &tree.InvariantViolation{
			Kind:   tree.ViolationLink,
			Key:    t.root.Key(),
			Reason: "root has a parent",
		}
	}

	return t.root.Check()
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
// Since Go 1.23, t.InOrder can be used directly in a for-range loop.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	t.root.Walk(func(n *tree.Node[T]) bool {
		return f(n.Key())
	})
}

// All returns a sequence of the keys in the tree in-order.
// It walks the tree iteratively and can be ranged over more than once.
func (t *Tree[T]) All() iter.Seq[T] {
	return iterator.Seq(func() iterator.Iterator[T] {
		return t.InOrderStackIterator()
	})
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	return iterator.CoIterate[T](t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root)
}

// InOrderStackIterator is like InOrderIterator, but the iterator keeps
// a stack instead of following parent pointers.
func (t *Tree[T]) InOrderStackIterator() *iterator.InOrderStack[T] {
	return iterator.NewInOrderStack(t.root, 0)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in reverse order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root)
}

// String returns a string representation of the tree.
// See render.Box for the format.
func (t *Tree[T]) String() string {
	return render.Box(t.root, render.Options{})
}
