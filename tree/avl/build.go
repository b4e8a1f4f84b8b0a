package avl

import (
	"math"
	"math/rand"
)

// HeightBound returns the largest height an AVL tree with num keys can
// have, as a real number: 1.4405·log2(num+2) − 0.3277.
// The height of every AVL tree with num keys is at most its floor.
func HeightBound(num int) float64 {
	return 1.4405*math.Log2(float64(num)+2) - 0.3277
}

// BuildRandom builds an AVL tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := &Tree[int]{}
	for _, k := range rd.Perm(num) {
		tr.Insert(k)
	}

	return tr
}
