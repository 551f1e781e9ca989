// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/lvbuild/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once flags are parsed.
type app struct {
	logLevel string
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "lvbuild",
		Short: "lvbuild assembles particle structures from ports, lattices and recipes",
		Long: `lvbuild builds hierarchical particle structures: directional ports,
Bravais lattices and declarative YAML recipes. Output is XYZ on stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = logging.New(os.Stderr, level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newPortCmd(a),
		newBuildCmd(a),
		newVersionCmd(),
	)

	return root
}
