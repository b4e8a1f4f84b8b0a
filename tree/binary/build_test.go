package binary

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRandomBalanced(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))

	for _, size := range []int{0, 1, 7, 15} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			tr, attempts, err := BuildRandomBalanced(ctx, size, int64(seedrd.Uint64()))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, attempts, 1)
			assert.True(t, tr.Balanced())
			assert.Equal(t, size, tr.Len())
			require.NoError(t, tr.CheckInvariants())
			t.Logf("attempts=%d", attempts)
		})
	}
}

func TestBuildRandomBalanced_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, attempts, err := BuildRandomBalanced(ctx, 1000, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, tr)
	assert.Equal(t, 0, attempts)
}

var trForBench *Tree[int]

func BenchmarkBuildRandom(b *testing.B) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	sizes := []int{10, 100, 10000}

	for _, size := range sizes {
		seed := int64(seedrd.Uint64())
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				trForBench = BuildRandom(size, seed)
			}
		})
	}
}
