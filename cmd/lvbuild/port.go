// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvbuild/compound"
	"github.com/katalvlaran/lvbuild/vecmath"
	"github.com/spf13/cobra"
)

func newPortCmd(a *app) *cobra.Command {
	var (
		orientation []float64
		anchor      []float64
		separation  float64
	)

	cmd := &cobra.Command{
		Use:   "port",
		Short: "Build a single port and print its ghost particles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := vecmath.FromSlice(orientation)
			if err != nil {
				return fmt.Errorf("--orientation: %w", err)
			}
			opts := []compound.PortOption{
				compound.WithOrientation(o),
				compound.WithSeparation(separation),
			}
			if cmd.Flags().Changed("anchor") {
				pos, err := vecmath.FromSlice(anchor)
				if err != nil {
					return fmt.Errorf("--anchor: %w", err)
				}
				opts = append(opts, compound.WithAnchor(compound.NewParticle("anchor", pos)))
			}

			p, err := compound.NewPort(opts...)
			if err != nil {
				return err
			}
			dir, err := p.Direction()
			if err != nil {
				return err
			}
			a.log.Info("port built", "center", p.Center(), "direction", dir)

			title := fmt.Sprintf("port center=%v direction=%v", p.Center(), dir)
			return writeXYZ(cmd.OutOrStdout(), title, p.Particles(true))
		},
	}
	cmd.Flags().Float64SliceVar(&orientation, "orientation", []float64{0, 1, 0}, "facing of the port as x,y,z")
	cmd.Flags().Float64SliceVar(&anchor, "anchor", nil, "anchor position as x,y,z")
	cmd.Flags().Float64Var(&separation, "separation", 0, "distance from the anchor along the orientation")

	return cmd
}
