package testutils

import (
	"math/rand"
)

// Shuffled returns the keys [0, num) in an order determined by seed.
func Shuffled(num int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := range keys {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}
