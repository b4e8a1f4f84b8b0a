// Package tree provides the node type shared by the tree implementations
// in this module, along with the raw structural primitives they are
// built from: search, insertion, deletion, rotation and height bookkeeping.
//
// The primitives operate on nodes only. They never know about the root
// slot of whatever tree owns the nodes, so callers that own a tree are
// responsible for replacing their root when the structural root changes.
// Nodes handed out by trees are meant for read-only navigation.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Left and right are owned by the node,
// parent is a back-reference used for upward walks and rotations.
// height is a cache maintained only by balancing trees. It is 0 for a
// leaf and is not kept up to date by the primitives in this package.
type Node[T constraints.Ordered] struct {
	key                 T
	left, right, parent *Node[T]
	height              int
}

// NodeOf returns a detached leaf holding k.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		key: k,
	}
}

// Key returns the key stored in n.
func (n *Node[T]) Key() T {
	return n.key
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent returns the parent of n, or nil if n is a root or detached.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Height returns the cached height of n.
func (n *Node[T]) Height() int {
	return n.height
}

// HeightOf returns the cached height of n, or -1 if n is nil.
func HeightOf[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// UpdateHeight recomputes the cached height of n from its children's
// cached heights.
func (n *Node[T]) UpdateHeight() {
	n.height = 1 + max(HeightOf(n.left), HeightOf(n.right))
}

// Balance returns the height-balance factor of n, which is the cached
// height of its left subtree minus that of its right subtree.
func (n *Node[T]) Balance() int {
	return HeightOf(n.left) - HeightOf(n.right)
}

// MeasureHeight walks the subtree rooted at n and returns its real height,
// ignoring any cached value. It is -1 for nil.
func MeasureHeight[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(MeasureHeight(n.left), MeasureHeight(n.right))
}

// replaceChild points whichever link of n referenced old at nu instead.
// If n is nil, old was a root and there is nothing to relink.
func (n *Node[T]) replaceChild(old, nu *Node[T]) {
	if n == nil {
		return
	}

	switch old {
	case n.left:
		n.left = nu
	case n.right:
		n.right = nu
	default:
		panic("replaceChild: not a child of this node")
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
