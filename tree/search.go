package tree

// Find searches the subtree rooted at n for k and returns the first node
// on the search path holding k, or nil.
func (n *Node[T]) Find(k T) *Node[T] {
	for n != nil {
		switch Compare(k, n.key) {
		case Less:
			n = n.left
		case Greater:
			n = n.right
		case Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// FindRecursive is the recursive form of Find. It returns the same node.
func (n *Node[T]) FindRecursive(k T) *Node[T] {
	if n == nil {
		return nil
	}

	switch Compare(k, n.key) {
	case Less:
		return n.left.FindRecursive(k)
	case Greater:
		return n.right.FindRecursive(k)
	case Equal:
		return n
	default:
		panic("unreachable")
	}
}

// Min returns the node with the smallest key in the subtree rooted at n.
func (n *Node[T]) Min() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the node with the largest key in the subtree rooted at n.
func (n *Node[T]) Max() *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Successor returns the node that follows n in an in-order walk of the
// whole tree, or nil if n is the last one.
func (n *Node[T]) Successor() *Node[T] {
	if n.right != nil {
		return n.right.Min()
	}

	// climb while we are coming up from a right child
	child, p := n, n.parent
	for p != nil && p.right == child {
		child, p = p, p.parent
	}

	return p
}

// Predecessor returns the node that precedes n in an in-order walk of the
// whole tree, or nil if n is the first one.
func (n *Node[T]) Predecessor() *Node[T] {
	if n.left != nil {
		return n.left.Max()
	}

	child, p := n, n.parent
	for p != nil && p.left == child {
		child, p = p, p.parent
	}

	return p
}

// Walk applies f to each node in the subtree rooted at n, in-order.
// If f returns false, the walk stops early and Walk returns false.
func (n *Node[T]) Walk(f func(*Node[T]) bool) bool {
	// Classic recursive in-order walk.
	// Compare this to iterator.InOrderStack which keeps its own stack
	if n == nil {
		return true
	}

	if !n.left.Walk(f) {
		return false
	}

	if !f(n) {
		return false
	}

	return n.right.Walk(f)
}
