// Package render draws trees for humans. It only reads trees through
// the navigation methods of tree.Node and never changes them.
package render

import (
	"fmt"
	"strings"

	"go.lepak.sg/avltree/tree"
	"golang.org/x/exp/constraints"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

// Options changes what Box draws.
type Options struct {
	// Heights appends the cached height of each node, as in "4 (h=2)".
	Heights bool
}

// Box returns a string representation of the tree rooted at root.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
//
// An empty tree is the empty string.
func Box[T constraints.Ordered](root *tree.Node[T], opts Options) string {
	var sb strings.Builder

	if root == nil {
		return ""
	}

	printvisit(&sb, root, opts, "", "", true, false)

	return sb.String()
}

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], opts Options,
	prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key()))
	if opts.Heights {
		fmt.Fprintf(sb, " (h=%d)", n.Height())
	}
	sb.WriteRune('\n')

	if n.Left() != nil {
		printvisit(sb, n.Left(), opts, prefix, treeLeftBranch, false, n.Right() != nil)
	}

	if n.Right() != nil {
		printvisit(sb, n.Right(), opts, prefix, treeRightBranch, false, false)
	}
}
