package tree

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is matched by every *InvariantViolation.
// A violation means the tree implementation itself is broken.
var ErrInvariantViolation = errors.New("invariant violation")

// ViolationKind says which invariant was found broken.
type ViolationKind int

const (
	// ViolationOrder: a key is on the wrong side of an ancestor.
	ViolationOrder ViolationKind = iota
	// ViolationLink: a child's parent link does not point back at its
	// parent, or a root has a parent.
	ViolationLink
	// ViolationHeight: a cached height disagrees with the children.
	ViolationHeight
	// ViolationBalance: the subtrees of a node differ in height by more
	// than one.
	ViolationBalance
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationOrder:
		return "order"
	case ViolationLink:
		return "link"
	case ViolationHeight:
		return "height"
	case ViolationBalance:
		return "balance"
	default:
		return "<invalid tree.ViolationKind>"
	}
}

// InvariantViolation describes a broken tree invariant found by Check,
// CheckBalance or a tree's CheckInvariants.
type InvariantViolation struct {
	Kind ViolationKind
	// Key of the node where the violation was found.
	Key    any
	Reason string
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("%s %s at key %v: %s",
		ErrInvariantViolation, v.Kind, v.Key, v.Reason)
}

func (v *InvariantViolation) Is(target error) bool {
	return target == ErrInvariantViolation
}

func violation[T any](kind ViolationKind, key T, format string, args ...any) *InvariantViolation {
	return &InvariantViolation{
		Kind:   kind,
		Key:    key,
		Reason: fmt.Sprintf(format, args...),
	}
}
