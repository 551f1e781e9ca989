// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvbuild/compound"
)

// writeXYZ writes the plain XYZ format: count line, title line, then one
// "name x y z" record per particle.
func writeXYZ(w io.Writer, title string, particles []*compound.Particle) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", len(particles), title)
	for _, p := range particles {
		pos := p.Position()
		fmt.Fprintf(bw, "%-4s %12.6f %12.6f %12.6f\n", p.Name(), pos.X, pos.Y, pos.Z)
	}

	return bw.Flush()
}
