package commands

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/config"
)

// workloadFlags are the flags shared by run and query. They override the config file when set.
type workloadFlags struct {
	strategy string
	insert   []int
	delete   []int
	check    bool
}

func (f *workloadFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.strategy, "strategy", "s", "", "Balancing strategy: height (AVL) or color (red-black)")
	fs.IntSliceVarP(&f.insert, "insert", "i", nil, "Values to insert, in order")
	fs.IntSliceVarP(&f.delete, "delete", "d", nil, "Values to delete after all insertions, in order")
	fs.BoolVar(&f.check, "check", config.DefaultCheck, "Validate the tree after the workload")
}

// apply copies the flags that were set into cfg.
func (f *workloadFlags) apply(cfg *config.Config, fs *pflag.FlagSet) error {
	changed := fs.Changed
	if changed("strategy") {
		cfg.Strategy = f.strategy
	}

	if changed("insert") {
		cfg.Workload.Insert = f.insert
	}

	if changed("delete") {
		cfg.Workload.Delete = f.delete
	}

	if changed("check") {
		cfg.Check = f.check
	}

	return cfg.Validate()
}

// buildTree applies the workload to a fresh tree. Deleting an absent value is logged and skipped.
func buildTree[S constraints.Unsigned](cfg *config.Config, log *slog.Logger) (*Trees.Tree[int, S], error) {
	s, err := cfg.TreeStrategy()
	if err != nil {
		return nil, err
	}

	tree := Trees.NewOrdered[int, S](s)
	tree.Grow(len(cfg.Workload.Insert))

	for _, v := range cfg.Workload.Insert {
		if err := tree.Insert(v); err != nil {
			log.Warn("insert failed", "value", v, "error", err)
			return nil, errors.Wrapf(err, "insert %d", v)
		}

		log.Debug("inserted", "value", v, "size", tree.Size(), "total", tree.Total())
	}

	for _, v := range cfg.Workload.Delete {
		if err := tree.Delete(v); err != nil {
			if errors.Is(err, Trees.ErrNotFound) {
				log.Warn("delete skipped", "value", v, "error", err)
				continue
			}

			return nil, errors.Wrapf(err, "delete %d", v)
		}

		log.Debug("deleted", "value", v, "size", tree.Size(), "total", tree.Total())
	}

	if cfg.Check {
		if err := tree.Validate(); err != nil {
			return nil, err
		}

		log.Debug("tree validated", "strategy", s, "depth", tree.Depth())
	}

	log.Info("workload applied",
		"strategy", s, "inserted", len(cfg.Workload.Insert), "deleted", len(cfg.Workload.Delete), "size", tree.Size())

	return tree, nil
}

// withIndex calls the instantiation of f matching the configured index width.
func withIndex(bits int, f16 func() error, f32 func() error, f64 func() error) error {
	switch bits {
	case 16:
		return f16()
	case 32:
		return f32()
	case 64:
		return f64()
	}

	return config.ErrInvalidIndexBits
}
