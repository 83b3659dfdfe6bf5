// Package render formats the nodes of a tree for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-trees/Trees"
)

// Row is one node as it is printed.
type Row struct {
	Value  string
	Count  uint
	Level  int
	Height int    // -1 unless the tree uses the Height strategy.
	Color  string // "red" or "black", empty unless the tree uses the Color strategy.
}

// Order is one of the traversal methods of a Trees.Tree.
type Order[T any, S constraints.Unsigned] func(Trees.Visit[T, S])

// Rows visits tree in the given order and snapshots every node.
func Rows[T any, S constraints.Unsigned](tree *Trees.Tree[T, S], order Order[T, S]) ([]Row, error) {
	rows := make([]Row, 0, tree.Size())
	var err error
	order(func(v *T, n S) bool {
		var l int
		if l, err = tree.Level(n); err != nil {
			return false
		}
		r := Row{Value: fmt.Sprint(*v), Count: tree.Count(n), Level: l, Height: -1}
		switch tree.Strategy() {
		case Trees.Height:
			r.Height = tree.Height(n)
		case Trees.Color:
			r.Color = colorName(tree.IsRed(n))
		}
		rows = append(rows, r)
		return true
	})
	return rows, err
}

// Table renders rows with go-pretty. title is printed above the header when not empty.
func Table(title string, rows []Row) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Title.Format = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	if title != "" {
		tbl.SetTitle(title)
	}

	tbl.AppendHeader(table.Row{"value", "count", "level", "height", "color"})
	for _, r := range rows {
		h, c := "-", r.Color
		if r.Height >= 0 {
			h = fmt.Sprint(r.Height)
		}
		if c == "" {
			c = "-"
		}
		tbl.AppendRow(table.Row{r.Value, r.Count, r.Level, h, c})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d nodes", len(rows))})

	return tbl.Render()
}

// Plain renders rows on one line separated by spaces. Counts above one are
// written as value×count. Red nodes are printed in red when colorize is set.
func Plain(rows []Row, colorize bool) string {
	red := color.New(color.FgRed)
	if colorize {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s := r.Value
		if r.Count > 1 {
			s = fmt.Sprintf("%s×%d", s, r.Count)
		}
		if r.Color == "red" {
			s = red.Sprint(s)
		}
		sb.WriteString(s)
	}

	return sb.String()
}

func colorName(red bool) string {
	if red {
		return "red"
	}
	return "black"
}
