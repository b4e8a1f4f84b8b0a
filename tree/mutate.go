package tree

// Insert descends from n to an empty child slot and attaches nn there.
// Keys equal to a node's key go to its right. No rebalancing is done.
// nn must be a detached node.
func (n *Node[T]) Insert(nn *Node[T]) {
	if n == nil {
		panic("cannot Insert into nil")
	}

	if nn == nil {
		panic("cannot Insert nil")
	}

	if nn.parent != nil || nn.left != nil || nn.right != nil {
		panic("cannot Insert an attached node")
	}

	p := n
	for {
		if Compare(nn.key, p.key) == Less {
			if p.left == nil {
				p.left = nn
				break
			}
			p = p.left
		} else {
			if p.right == nil {
				p.right = nn
				break
			}
			p = p.right
		}
	}

	nn.parent = p
}

// Delete removes n's key from the tree n belongs to and returns the node
// that was physically unlinked.
//
// If n has at most one child, n itself is spliced out: its parent is
// linked directly to the child. If n has two children, the key of its
// in-order successor is copied into n, and the successor node (which has
// no left child) is spliced out instead.
//
// The returned node keeps its parent link, so callers can walk upwards
// from the point of change. Its child links are cleared.
// If the unlinked node was a root, its child is now a root; updating the
// owner's root slot is up to the caller.
func (n *Node[T]) Delete() *Node[T] {
	if n == nil {
		panic("cannot Delete nil")
	}

	if n.left != nil && n.right != nil {
		succ := n.right.Min()
		n.key = succ.key
		return succ.Delete()
	}

	child := n.left
	if child == nil {
		child = n.right
	}

	n.parent.replaceChild(n, child)
	if child != nil {
		child.parent = n.parent
	}

	n.left, n.right = nil, nil

	return n
}
