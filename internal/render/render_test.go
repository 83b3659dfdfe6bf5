package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/render"
)

func tree(t *testing.T, s Trees.Strategy, vs ...int) *Trees.Tree[int, uint16] {
	t.Helper()

	tr := Trees.NewOrdered[int, uint16](s)
	for _, v := range vs {
		require.NoError(t, tr.Insert(v))
	}

	return tr
}

func TestRows_Color(t *testing.T) {
	t.Parallel()

	tr := tree(t, Trees.Color, 10, 20, 30, 30)
	rows, err := render.Rows(tr, tr.LevelOrder)
	require.NoError(t, err)

	assert.Equal(t, []render.Row{
		{Value: "20", Count: 1, Level: 0, Height: -1, Color: "black"},
		{Value: "10", Count: 1, Level: 1, Height: -1, Color: "red"},
		{Value: "30", Count: 2, Level: 1, Height: -1, Color: "red"},
	}, rows)
}

func TestRows_Height(t *testing.T) {
	t.Parallel()

	tr := tree(t, Trees.Height, 7, 4, 9, 2)
	rows, err := render.Rows(tr, tr.InOrder)
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, render.Row{Value: "2", Count: 1, Level: 2, Height: 0}, rows[0])
	assert.Equal(t, render.Row{Value: "7", Count: 1, Level: 0, Height: 2}, rows[2])
}

func TestRows_Empty(t *testing.T) {
	t.Parallel()

	tr := tree(t, Trees.Height)
	rows, err := render.Rows(tr, tr.PreOrder)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Contains(t, render.Table("", rows), "0 nodes")
}

func TestTable(t *testing.T) {
	t.Parallel()

	out := render.Table("level order", []render.Row{
		{Value: "20", Count: 1, Level: 0, Height: -1, Color: "black"},
		{Value: "10", Count: 3, Level: 1, Height: 1},
	})

	assert.Contains(t, out, "level order")
	assert.Contains(t, strings.ToLower(out), "value")
	assert.Contains(t, out, "black")
	assert.Contains(t, out, "2 nodes")
}

func TestPlain(t *testing.T) {
	t.Parallel()

	rows := []render.Row{
		{Value: "1", Count: 1, Color: "black"},
		{Value: "2", Count: 2, Color: "red"},
	}

	assert.Equal(t, "1 2×2", render.Plain(rows, false))

	out := render.Plain(rows, true)
	assert.Contains(t, out, "\x1b[31m2×2")
	assert.True(t, strings.HasPrefix(out, "1 "))
}
