package Trees

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Scenario(t *testing.T) {
	tree := build(t, Color, 10, 20, 30)
	root := tree.Root()
	assert.Equal(t, 20, *tree.Value(root))
	assert.False(t, tree.IsRed(root))
	assert.Equal(t, 10, *tree.Value(tree.Left(root)))
	assert.True(t, tree.IsRed(tree.Left(root)))
	assert.Equal(t, 30, *tree.Value(tree.Right(root)))
	assert.True(t, tree.IsRed(tree.Right(root)))
}

func TestColor_InsertCases(t *testing.T) {
	for name, c := range map[string]struct {
		in   []int
		want []int
	}{
		"red uncle":      {[]int{10, 5, 15, 1}, []int{10, 5, 1, 15}},
		"left line":      {[]int{30, 20, 10}, []int{20, 10, 30}},
		"left triangle":  {[]int{30, 10, 20}, []int{20, 10, 30}},
		"right triangle": {[]int{10, 30, 20}, []int{20, 10, 30}},
	} {
		t.Run(name, func(t *testing.T) {
			tree := build(t, Color, c.in...)
			assert.Equal(t, c.want, shape(tree))
			assert.False(t, tree.IsRed(tree.Root()))
		})
	}
	tree := build(t, Color, 10, 5, 15, 1)
	assert.False(t, tree.IsRed(tree.Left(tree.Root())), "the parent was recolored black")
	assert.False(t, tree.IsRed(tree.Right(tree.Root())), "the uncle was recolored black")
	n, _ := tree.Find(1)
	assert.True(t, tree.IsRed(n))
}

// Every deletion order of a small tree goes through all the sibling cases.
func TestColor_DeleteAllOrders(t *testing.T) {
	const n = 7
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var permute func(k int)
	count := 0
	permute = func(k int) {
		if k == n {
			tree := build(t, Color, 3, 1, 5, 0, 2, 4, 6)
			for i, v := range perm {
				require.NoError(t, tree.Delete(v))
				require.NoError(t, tree.Validate(), "deleting %v, step %d", perm, i)
			}
			assert.True(t, tree.IsEmpty())
			count++
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	assert.Equal(t, 5040, count)
}

func TestColor_Sequential(t *testing.T) {
	tree := NewOrdered[int, uint32](Color)
	const n = 1 << 12
	for i := range n {
		require.NoError(t, tree.Insert(i))
	}
	require.NoError(t, tree.Validate())
	assert.LessOrEqual(t, float64(tree.Depth()), 2*math.Log2(n+1))
	for i := n - 1; i >= 0; i -= 3 {
		require.NoError(t, tree.Delete(i))
	}
	require.NoError(t, tree.Validate())
	assert.LessOrEqual(t, float64(tree.Depth()), 2*math.Log2(float64(tree.Size())+1))
}

func TestColor_DeleteRoot(t *testing.T) {
	tree := build(t, Color, 2, 1, 3)
	for !tree.IsEmpty() {
		v := *tree.Value(tree.Root())
		require.NoError(t, tree.Delete(v))
		require.NoError(t, tree.Validate())
	}
	assert.Zero(t, tree.Size())
	require.NoError(t, tree.Insert(4))
	assert.False(t, tree.IsRed(tree.Root()))
}
