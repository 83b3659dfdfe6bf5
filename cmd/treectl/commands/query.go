package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-trees/Trees"
)

// ErrQueryArgs indicates a query with the wrong number of operands.
var ErrQueryArgs = errors.New("wrong number of query operands")

// queries maps a query name to its number of operands.
var queries = map[string]int{
	"pred":  1,
	"succ":  1,
	"lca":   2,
	"level": 1,
}

// QueryCommand holds the flags of treectl query.
type QueryCommand struct {
	*app
	workload workloadFlags
}

func newQueryCommand(a *app) *cobra.Command {
	qc := &QueryCommand{app: a}

	cmd := &cobra.Command{
		Use:   "query (pred|succ|level) VALUE | query lca VALUE VALUE",
		Short: "Run one query against the workload tree",
		Long: `Build a tree from the configured workload and answer one query:
  pred VALUE     the closest smaller value
  succ VALUE     the closest greater value
  lca A B        the lowest common ancestor of the nodes holding A and B
  level VALUE    the depth of the node holding VALUE, the root being 0`,
		Args:      cobra.RangeArgs(2, 3),
		ValidArgs: []string{"pred", "succ", "lca", "level"},
		RunE:      qc.run,
	}

	qc.workload.register(cmd.Flags())

	return cmd
}

func (qc *QueryCommand) run(cmd *cobra.Command, args []string) error {
	want, ok := queries[args[0]]
	if !ok {
		return errors.Errorf("unknown query %q", args[0])
	}

	if len(args)-1 != want {
		return errors.Wrapf(ErrQueryArgs, "%s takes %d", args[0], want)
	}

	vs := make([]int, 0, 2)
	for _, a := range args[1:] {
		v, err := strconv.Atoi(a)
		if err != nil {
			return errors.Wrapf(err, "operand %q", a)
		}
		vs = append(vs, v)
	}

	if err := qc.workload.apply(qc.cfg, cmd.Flags()); err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	return withIndex(qc.cfg.IndexBits,
		func() error { return queryTree[uint16](qc, w, args[0], vs) },
		func() error { return queryTree[uint32](qc, w, args[0], vs) },
		func() error { return queryTree[uint64](qc, w, args[0], vs) },
	)
}

func queryTree[S constraints.Unsigned](qc *QueryCommand, w io.Writer, name string, vs []int) error {
	tree, err := buildTree[S](qc.cfg, qc.log)
	if err != nil {
		return err
	}
	defer tree.Destroy()

	var n S
	switch name {
	case "pred":
		n, err = tree.Predecessor(vs[0])
	case "succ":
		n, err = tree.Successor(vs[0])
	case "lca":
		n, err = tree.LowestCommonAncestor(vs[0], vs[1])
	case "level":
		var found bool
		if n, found = tree.Find(vs[0]); !found {
			return errors.Wrapf(Trees.ErrNotFound, "level %d", vs[0])
		}

		l, err := tree.Level(n)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "level(%d) = %d\n", vs[0], l)

		return nil
	}

	if err != nil {
		return err
	}

	qc.log.Debug("query answered", "query", name, "operands", vs, "node", n)

	if n == 0 {
		fmt.Fprintf(w, "%s(%s) = none\n", name, operands(vs))
	} else {
		fmt.Fprintf(w, "%s(%s) = %d\n", name, operands(vs), *tree.Value(n))
	}

	return nil
}

func operands(vs []int) string {
	if len(vs) == 2 {
		return fmt.Sprintf("%d, %d", vs[0], vs[1])
	}

	return strconv.Itoa(vs[0])
}
