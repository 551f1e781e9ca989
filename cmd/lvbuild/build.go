// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvbuild/recipe"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	var ghosts bool

	cmd := &cobra.Command{
		Use:   "build <recipe.yaml>",
		Short: "Build a structure from a YAML recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			r, err := recipe.Load(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			root, err := r.Build(a.log)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			return writeXYZ(cmd.OutOrStdout(), root.String(), root.Particles(ghosts))
		},
	}
	cmd.Flags().BoolVar(&ghosts, "ghosts", false, "include ghost (port) particles in the output")

	return cmd
}
