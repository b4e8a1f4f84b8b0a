package tree

// Check validates the subtree rooted at n: every key in a left subtree is
// at most its ancestor's key, every key in a right subtree is at least its
// ancestor's key, and every child links back to its parent.
// Equal keys are allowed on either side, since a rotation can carry a
// duplicate key from the right side of its twin to the left side.
// The first violation found is returned.
func (n *Node[T]) Check() error {
	if n == nil {
		return nil
	}

	return n.check(nil, nil)
}

// check does the work of Check. lo and hi, when non-nil, are the nodes
// whose keys bound the subtree from below and above.
func (n *Node[T]) check(lo, hi *Node[T]) error {
	if lo != nil && n.key < lo.key {
		return violation(ViolationOrder, n.key,
			"key is less than ancestor %v on its left", lo.key)
	}

	if hi != nil && n.key > hi.key {
		return violation(ViolationOrder, n.key,
			"key is greater than ancestor %v on its right", hi.key)
	}

	if n.left != nil {
		if n.left.parent != n {
			return violation(ViolationLink, n.left.key,
				"left child of %v does not link back to it", n.key)
		}
		if err := n.left.check(lo, n); err != nil {
			return err
		}
	}

	if n.right != nil {
		if n.right.parent != n {
			return violation(ViolationLink, n.right.key,
				"right child of %v does not link back to it", n.key)
		}
		if err := n.right.check(n, hi); err != nil {
			return err
		}
	}

	return nil
}

// CheckBalance validates the cached heights in the subtree rooted at n
// and that no node is out of height balance by more than one.
func (n *Node[T]) CheckBalance() error {
	if n == nil {
		return nil
	}

	if err := n.left.CheckBalance(); err != nil {
		return err
	}

	if err := n.right.CheckBalance(); err != nil {
		return err
	}

	if want := 1 + max(HeightOf(n.left), HeightOf(n.right)); n.height != want {
		return violation(ViolationHeight, n.key,
			"cached height %d, children say %d", n.height, want)
	}

	if b := n.Balance(); b < -1 || b > 1 {
		return violation(ViolationBalance, n.key,
			"balance factor %d", b)
	}

	return nil
}
