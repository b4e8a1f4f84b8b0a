package binary

import (
	"context"
	"math/rand"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := &Tree[int]{}
	for _, n := range shuffled(rd, num) {
		tr.Insert(n)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes
// by repeatedly building random trees until one happens to be balanced.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// The odds of success shrink quickly with num, so pass a ctx with a
// deadline; its error is returned if it is done before a balanced
// tree turns up.
func BuildRandomBalanced(ctx context.Context, num int, seed int64) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))
	nodes := shuffled(rd, num)

	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, attempts, err
		}

		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr := &Tree[int]{}
		for _, n := range nodes {
			tr.Insert(n)
		}

		if tr.Balanced() {
			return tr, attempts, nil
		}
	}
}

func shuffled(rd *rand.Rand, num int) []int {
	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return nodes
}
