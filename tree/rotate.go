package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved.
// Any of m, o and q may be nil. If n had a parent, its child link is
// moved to p, otherwise p becomes a root.
// Cached heights are left alone.
func (n *Node[T]) RotateLeft() *Node[T] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	if n.right == nil {
		panic("cannot RotateLeft with nil right")
	}

	p, o := n.right, n.right.left

	p.parent = n.parent
	n.parent.replaceChild(n, p)

	n.right = o
	if o != nil {
		o.parent = n
	}

	p.left = n
	n.parent = p

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved.
// Any of k, m and o may be nil. If n had a parent, its child link is
// moved to l, otherwise l becomes a root.
// Cached heights are left alone.
func (n *Node[T]) RotateRight() *Node[T] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	if n.left == nil {
		panic("cannot RotateRight with nil left")
	}

	l, m := n.left, n.left.right

	l.parent = n.parent
	n.parent.replaceChild(n, l)

	n.left = m
	if m != nil {
		m.parent = n
	}

	l.right = n
	n.parent = l

	return l
}
