package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/config"
	"github.com/g-m-twostay/go-trees/internal/render"
)

// Traversal orders accepted by --order.
const (
	orderIn    = "in"
	orderPre   = "pre"
	orderPost  = "post"
	orderLevel = "level"
)

// ErrInvalidOrder indicates an unknown --order value.
var ErrInvalidOrder = errors.New("order must be in, pre, post or level")

// RunCommand holds the flags of treectl run.
type RunCommand struct {
	*app
	workload workloadFlags

	order   string
	format  string
	noColor bool
}

func newRunCommand(a *app) *cobra.Command {
	rc := &RunCommand{app: a}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply the workload and print a traversal",
		Long: `Build a tree from the configured workload and print its nodes in the chosen order,
followed by a summary line with the size, the depth and the extreme values.`,
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	rc.workload.register(cmd.Flags())
	cmd.Flags().StringVarP(&rc.order, "order", "o", orderIn, "Traversal order: in, pre, post, level")
	cmd.Flags().StringVarP(&rc.format, "format", "f", "", "Output format: table, plain")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored plain output")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("format") {
		rc.cfg.Format = rc.format
	}

	if rc.noColor {
		rc.cfg.Color = false
	}

	if err := rc.workload.apply(rc.cfg, cmd.Flags()); err != nil {
		return err
	}

	switch rc.order {
	case orderIn, orderPre, orderPost, orderLevel:
	default:
		return errors.Wrapf(ErrInvalidOrder, "%q", rc.order)
	}

	w := cmd.OutOrStdout()

	return withIndex(rc.cfg.IndexBits,
		func() error { return runTree[uint16](rc, w) },
		func() error { return runTree[uint32](rc, w) },
		func() error { return runTree[uint64](rc, w) },
	)
}

func runTree[S constraints.Unsigned](rc *RunCommand, w io.Writer) error {
	tree, err := buildTree[S](rc.cfg, rc.log)
	if err != nil {
		return err
	}
	defer tree.Destroy()

	rows, err := render.Rows(tree, traversal(tree, rc.order))
	if err != nil {
		return err
	}

	if rc.cfg.Format == config.FormatPlain {
		fmt.Fprintln(w, render.Plain(rows, rc.cfg.Color))
	} else {
		fmt.Fprintln(w, render.Table(fmt.Sprintf("%s order, %s", rc.order, tree.Strategy()), rows))
	}

	fmt.Fprintln(w, summary(tree))

	return nil
}

func traversal[S constraints.Unsigned](tree *Trees.Tree[int, S], order string) render.Order[int, S] {
	switch order {
	case orderPre:
		return tree.PreOrder
	case orderPost:
		return tree.PostOrder
	case orderLevel:
		return tree.LevelOrder
	}

	return tree.InOrder
}

func summary[S constraints.Unsigned](tree *Trees.Tree[int, S]) string {
	s := fmt.Sprintf("size=%d total=%d depth=%d", tree.Size(), tree.Total(), tree.Depth())
	if lo, ok := tree.Minimum(); ok {
		hi, _ := tree.Maximum()
		s += fmt.Sprintf(" min=%d max=%d", lo, hi)
	}

	return s
}
