package avl

import (
	"go.lepak.sg/avltree/tree"
)

// rotateLeft rotates n to the left and recomputes the heights of the
// two nodes that moved. n is now below the pivot, so it goes first.
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
func (t *Tree[T]) rotateLeft(n *tree.Node[T]) *tree.Node[T] {
	p := t.core.RotateLeft(n)
	n.UpdateHeight()
	p.UpdateHeight()
	return p
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[T]) rotateRight(n *tree.Node[T]) *tree.Node[T] {
	l := t.core.RotateRight(n)
	n.UpdateHeight()
	l.UpdateHeight()
	return l
}

// balance walks from n up to the root. At every node on the way it
// recomputes the height and, if one subtree is more than one taller than
// the other, rotates to fix it:
//
//	LL: rotate right at n
//	LR: rotate left at n.Left, then right at n
//	RR: rotate left at n
//	RL: rotate right at n.Right, then left at n
//
// When the outer and inner grandchildren are equally tall, the single
// rotation is used. After a rotation n has moved down, so its parent is
// the pivot that took its place, and the walk carries on from there.
// The walk always goes all the way up: a lower rotation can change the
// height of a subtree and unbalance an ancestor.
func (t *Tree[T]) balance(n *tree.Node[T]) {
	for n != nil {
		n.UpdateHeight()

		switch b := n.Balance(); {
		case b > 1:
			l := n.Left()
			if tree.HeightOf(l.Left()) >= tree.HeightOf(l.Right()) {
				t.rotateRight(n)
			} else {
				t.rotateLeft(l)
				t.rotateRight(n)
			}
		case b < -1:
			r := n.Right()
			if tree.HeightOf(r.Right()) >= tree.HeightOf(r.Left()) {
				t.rotateLeft(n)
			} else {
				t.rotateRight(r)
				t.rotateLeft(n)
			}
		}

		n = n.Parent()
	}
}
