// Package commands implements the subcommands of treectl.
package commands

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-trees/internal/config"
)

// app is the state shared by every subcommand: the loaded configuration and the logger built from it.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool

	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand creates treectl with all its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "treectl",
		Short: "Build balanced search trees from a workload and inspect them",
		Long: `treectl builds an int tree kept balanced by AVL heights or red-black colors,
applies a workload of insertions and deletions and prints the result.

Commands:
  run       Apply the workload and print a traversal
  query     Run one query against the workload tree
  version   Show version information`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: .treectl.yaml in CWD or $HOME)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Log as JSON")

	root.AddCommand(newRunCommand(a))
	root.AddCommand(newQueryCommand(a))
	root.AddCommand(newVersionCommand())

	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}

	a.log, err = newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg

	return nil
}

func newLogger(w io.Writer, c config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errors.Wrapf(config.ErrInvalidLogLevel, "%q", c.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.JSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
