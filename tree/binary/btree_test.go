package binary

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/avltree/testutils"
	"go.lepak.sg/avltree/tree"
	"go.uber.org/goleak"
	"golang.org/x/exp/slices"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		post    func(t *testing.T, tr *Tree[int])
	}{
		{
			name: "empty",
			post: func(t *testing.T, tr *Tree[int]) {
				assert.Nil(t, tr.root)
				assert.Equal(t, 0, tr.Len())
				assert.Equal(t, -1, tr.Height())
			},
		},
		{
			name:    "one",
			inserts: []int{1},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 1, tr.root.Key())
				assert.Nil(t, tr.root.Left())
				assert.Nil(t, tr.root.Right())
				assert.Nil(t, tr.root.Parent())
				assert.Equal(t, 0, tr.Height())
			},
		},
		{
			name:    "one duplicate",
			inserts: []int{1, 1},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 1, tr.root.Key())
				assert.Nil(t, tr.root.Left())
				assert.NotNil(t, tr.root.Right(), "duplicates go right")
				assert.Equal(t, 1, tr.root.Right().Key())
				assert.Equal(t, 2, tr.Len())
			},
		},
		{
			name:    "left",
			inserts: []int{2, 1},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 2, tr.root.Key())
				assert.NotNil(t, tr.root.Left())
				assert.Nil(t, tr.root.Right())
				assert.Nil(t, tr.root.Parent())
				assert.Equal(t, 1, tr.root.Left().Key())
				assert.Nil(t, tr.root.Left().Left())
				assert.Nil(t, tr.root.Left().Right())
				assert.Equal(t, tr.root, tr.root.Left().Parent())
			},
		},
		{
			name:    "right",
			inserts: []int{1, 2},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 1, tr.root.Key())
				assert.Nil(t, tr.root.Left())
				assert.NotNil(t, tr.root.Right())
				assert.Nil(t, tr.root.Parent())
				assert.Equal(t, 2, tr.root.Right().Key())
				assert.Nil(t, tr.root.Right().Left())
				assert.Nil(t, tr.root.Right().Right())
				assert.Equal(t, tr.root, tr.root.Right().Parent())
			},
		},
		{
			name:    "no rebalancing",
			inserts: []int{1, 2, 3, 4},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.Equal(t, 3, tr.Height())
				assert.False(t, tr.Balanced())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tree[int]{}

			for _, k := range tt.inserts {
				n := tr.Insert(k)
				assert.Equal(t, k, n.Key())
				assert.Nil(t, n.Left())
				assert.Nil(t, n.Right())
			}

			require.NoError(t, tr.CheckInvariants())
			assert.Equal(t, len(tt.inserts), tr.Len())
			tt.post(t, &tr)
		})
	}
}

func newCompleteTree_2Tall() *Tree[int] {
	tr := &Tree[int]{}
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(k)
	}
	return tr
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name        string
		create      func() *Tree[int]
		del         int
		wantRemoved int
		post        func(t *testing.T, tr *Tree[int], removed *tree.Node[int])
	}{
		{
			name:        "only node",
			create:      func() *Tree[int] { tr := &Tree[int]{}; tr.Insert(1); return tr },
			del:         1,
			wantRemoved: 1,
			post: func(t *testing.T, tr *Tree[int], removed *tree.Node[int]) {
				assert.Nil(t, tr.Root())
				assert.Nil(t, removed.Parent())
			},
		},
		{
			name: "root with right child",
			create: func() *Tree[int] {
				tr := &Tree[int]{}
				tr.Insert(1)
				tr.Insert(2)
				return tr
			},
			del:         1,
			wantRemoved: 1,
			post: func(t *testing.T, tr *Tree[int], removed *tree.Node[int]) {
				assert.Equal(t, 2, tr.Root().Key())
				assert.Nil(t, tr.Root().Parent())
			},
		},
		{
			name: "root with left child",
			create: func() *Tree[int] {
				tr := &Tree[int]{}
				tr.Insert(2)
				tr.Insert(1)
				return tr
			},
			del:         2,
			wantRemoved: 2,
			post: func(t *testing.T, tr *Tree[int], removed *tree.Node[int]) {
				assert.Equal(t, 1, tr.Root().Key())
				assert.Nil(t, tr.Root().Parent())
			},
		},
		{
			name:        "root with two children",
			create:      newCompleteTree_2Tall,
			del:         4,
			wantRemoved: 5,
			post: func(t *testing.T, tr *Tree[int], removed *tree.Node[int]) {
				assert.Equal(t, 5, tr.Root().Key())
				assert.Equal(t, 6, removed.Parent().Key())
			},
		},
		{
			name:        "leaf",
			create:      newCompleteTree_2Tall,
			del:         7,
			wantRemoved: 7,
			post: func(t *testing.T, tr *Tree[int], removed *tree.Node[int]) {
				assert.Equal(t, 6, removed.Parent().Key())
				assert.Nil(t, removed.Parent().Right())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.create()
			before := tr.Len()

			removed, ok := tr.Delete(tt.del)
			require.True(t, ok)
			assert.Equal(t, tt.wantRemoved, removed.Key())
			assert.Equal(t, before-1, tr.Len())
			assert.False(t, tr.Contains(tt.del))
			require.NoError(t, tr.CheckInvariants())

			tt.post(t, tr, removed)
		})
	}
}

func TestDelete_Missing(t *testing.T) {
	tr := newCompleteTree_2Tall()

	n, ok := tr.Delete(42)
	assert.False(t, ok)
	assert.Nil(t, n)
	assert.Equal(t, 7, tr.Len())

	empty := &Tree[int]{}
	_, ok = empty.Delete(1)
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	tr := newCompleteTree_2Tall()

	for k := 1; k <= 7; k++ {
		n, ok := tr.Find(k)
		require.True(t, ok)
		assert.Equal(t, k, n.Key())

		nr, ok := tr.FindRecursive(k)
		require.True(t, ok)
		assert.Same(t, n, nr)
	}

	_, ok := tr.Find(0)
	assert.False(t, ok)
	_, ok = tr.FindRecursive(8)
	assert.False(t, ok)

	empty := &Tree[int]{}
	_, ok = empty.Find(1)
	assert.False(t, ok)
	assert.False(t, empty.Contains(1))
}

func TestMinMax(t *testing.T) {
	empty := &Tree[int]{}
	_, ok := empty.Min()
	assert.False(t, ok)
	_, ok = empty.Max()
	assert.False(t, ok)

	tr := newCompleteTree_2Tall()
	n, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 1, n.Key())
	n, ok = tr.Max()
	require.True(t, ok)
	assert.Equal(t, 7, n.Key())
}

func TestSuccessorPredecessor(t *testing.T) {
	tr := &Tree[int]{}
	for _, k := range []int{5, 3, 5, 8, 5, 1, 8} {
		tr.Insert(k)
	}

	tests := []struct {
		k          int
		succ, pred int
		sok, pok   bool
	}{
		{k: 1, succ: 3, sok: true},
		{k: 3, succ: 5, sok: true, pred: 1, pok: true},
		{k: 5, succ: 8, sok: true, pred: 3, pok: true},
		{k: 8, pred: 5, pok: true},
		{k: 4},
	}
	for _, tt := range tests {
		s, ok := tr.Successor(tt.k)
		assert.Equal(t, tt.sok, ok, "successor of %d", tt.k)
		if ok {
			assert.Equal(t, tt.succ, s.Key(), "successor of %d", tt.k)
		}

		p, ok := tr.Predecessor(tt.k)
		assert.Equal(t, tt.pok, ok, "predecessor of %d", tt.k)
		if ok {
			assert.Equal(t, tt.pred, p.Key(), "predecessor of %d", tt.k)
		}
	}
}

func TestLessGreater(t *testing.T) {
	tr := &Tree[int]{}
	for _, k := range []int{10, 20, 30, 40} {
		tr.Insert(k)
	}

	tests := []struct {
		k         int
		less, gr  int
		lok, grok bool
	}{
		{k: 5, gr: 10, grok: true},
		{k: 10, gr: 20, grok: true},
		{k: 15, less: 10, lok: true, gr: 20, grok: true},
		{k: 30, less: 20, lok: true, gr: 40, grok: true},
		{k: 40, less: 30, lok: true},
		{k: 99, less: 40, lok: true},
	}
	for _, tt := range tests {
		l, ok := tr.Less(tt.k)
		assert.Equal(t, tt.lok, ok, "less than %d", tt.k)
		assert.Equal(t, tt.less, l, "less than %d", tt.k)

		g, ok := tr.Greater(tt.k)
		assert.Equal(t, tt.grok, ok, "greater than %d", tt.k)
		assert.Equal(t, tt.gr, g, "greater than %d", tt.k)
	}

	empty := &Tree[int]{}
	_, ok := empty.Less(1)
	assert.False(t, ok)
	_, ok = empty.Greater(1)
	assert.False(t, ok)
}

func TestRotate(t *testing.T) {
	tr := newCompleteTree_2Tall()
	oldRoot := tr.Root()

	p := tr.RotateLeft(oldRoot)
	assert.Same(t, p, tr.Root())
	assert.Equal(t, 6, tr.Root().Key())
	require.NoError(t, tr.CheckInvariants())

	l := tr.RotateRight(tr.Root())
	assert.Same(t, oldRoot, l)
	assert.Same(t, oldRoot, tr.Root())
	require.NoError(t, tr.CheckInvariants())

	// rotating below the root leaves the root slot alone
	inner := tr.RotateRight(tr.Root().Left())
	assert.Equal(t, 1, inner.Key())
	assert.Same(t, oldRoot, tr.Root())
	require.NoError(t, tr.CheckInvariants())
}

func TestCheckInvariants_RootParent(t *testing.T) {
	tr := newCompleteTree_2Tall()
	// pretend someone rotated a subtree's node without telling us
	tr.root = tr.root.Left()

	err := tr.CheckInvariants()
	var v *tree.InvariantViolation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, tree.ViolationLink, v.Kind)
	assert.ErrorIs(t, err, tree.ErrInvariantViolation)
}

func TestTraversals(t *testing.T) {
	tr := BuildRandom(50, 0x123456789abcdef0)
	want := make([]int, 50)
	for i := range want {
		want[i] = i
	}

	var rec []int
	tr.InOrder(func(k int) bool {
		rec = append(rec, k)
		return true
	})
	assert.Equal(t, want, rec)

	var ranged []int
	for k := range tr.InOrder {
		ranged = append(ranged, k)
	}
	assert.Equal(t, want, ranged)

	var all []int
	for k := range tr.All() {
		all = append(all, k)
	}
	assert.Equal(t, want, all)

	var it []int
	i := tr.InOrderIterator()
	for i.Next() {
		it = append(it, i.Item())
	}
	assert.Equal(t, want, it)

	var rev []int
	ri := tr.InOrderReverseIterator()
	for ri.Next() {
		rev = append(rev, ri.Item())
	}
	slices.Reverse(rev)
	assert.Equal(t, want, rev)

	var co []int
	for k := range tr.InOrderCoroutine().Items() {
		co = append(co, k)
	}
	assert.Equal(t, want, co)
	goleak.VerifyNone(t)
}

func TestInOrder_Stop(t *testing.T) {
	tr := newCompleteTree_2Tall()

	var got []int
	tr.InOrder(func(k int) bool {
		got = append(got, k)
		return k < 3
	})
	assert.Equal(t, []int{1, 2, 3}, got)

	empty := &Tree[int]{}
	empty.InOrder(func(int) bool {
		t.Error("called on empty tree")
		return true
	})
}

func TestRandomOps(t *testing.T) {
	// compare against a sorted slice
	seedrd := rand.New(rand.NewSource(0x0ddba11))

	for round := 0; round < 20; round++ {
		rd := rand.New(rand.NewSource(int64(seedrd.Uint64())))
		tr := &Tree[int]{}
		var model []int

		for op := 0; op < 300; op++ {
			k := rd.Intn(100)
			if rd.Intn(3) == 0 {
				_, ok := tr.Delete(k)
				i, found := slices.BinarySearch(model, k)
				assert.Equal(t, found, ok)
				if found {
					model = slices.Delete(model, i, i+1)
				}
			} else {
				tr.Insert(k)
				i, _ := slices.BinarySearch(model, k)
				model = slices.Insert(model, i, k)
			}
		}

		require.NoError(t, tr.CheckInvariants(), "round %d", round)
		assert.Equal(t, len(model), tr.Len())

		got := []int{}
		for k := range tr.All() {
			got = append(got, k)
		}
		if model == nil {
			model = []int{}
		}
		assert.Equal(t, model, got, "round %d", round)
	}
}

func TestBuildRandom(t *testing.T) {
	tr := BuildRandom(100, 1)
	require.NoError(t, tr.CheckInvariants())
	assert.Equal(t, 100, tr.Len())
	assert.Equal(t, BuildRandom(100, 1).String(), tr.String(), "same seed, same shape")

	keys := testutils.Shuffled(100, 1)
	for _, k := range keys {
		assert.True(t, tr.Contains(k))
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "", (&Tree[int]{}).String())
	assert.Equal(t, "4\n"+
		"├─L─2\n"+
		"│   ├─L─1\n"+
		"│   └─R─3\n"+
		"└─R─6\n"+
		"    ├─L─5\n"+
		"    └─R─7\n", newCompleteTree_2Tall().String())
}
