package Trees

import (
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparators(t *testing.T) {
	assert.Negative(t, Ordered[int]()(1, 2))
	assert.Positive(t, Reverse(Ordered[int]())(1, 2))
	assert.Zero(t, FromGods[string](utils.StringComparator)("a", "a"))
	assert.Negative(t, StringBySize("zz", "aaa"))
	assert.Positive(t, StringBySize("b", "a"))
}

func TestComparators_Tree(t *testing.T) {
	tree, err := New[int, uint16](Color, Reverse(FromGods[int](utils.IntComparator)), nil)
	require.NoError(t, err)
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		require.NoError(t, tree.Insert(v))
	}
	require.NoError(t, tree.Validate())
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1}, tree.Values())

	words, err := New[string, uint16](Height, StringBySize, nil)
	require.NoError(t, err)
	for _, w := range []string{"pear", "fig", "apple", "kiwi", "fig"} {
		require.NoError(t, words.Insert(w))
	}
	assert.Equal(t, []string{"fig", "kiwi", "pear", "apple"}, words.Values())
	assert.Equal(t, uint(5), words.Total())
}

// Only the sign of the comparator matters, not its magnitude.
func TestComparators_Magnitude(t *testing.T) {
	for _, s := range strategies {
		tree, err := New[int, uint32](s, func(a, b int) int { return 5 * (a - b) }, nil)
		require.NoError(t, err)
		for _, v := range []int{50, 10, 40, 20, 30, 41, 42} {
			require.NoError(t, tree.Insert(v))
		}
		require.NoError(t, tree.Validate())
		p, err := tree.Predecessor(41)
		require.NoError(t, err)
		assert.Equal(t, 40, *tree.Value(p))
		n, err := tree.LowestCommonAncestor(40, 42)
		require.NoError(t, err)
		v := *tree.Value(n)
		assert.True(t, v >= 40 && v <= 42)
	}
}
