// SPDX-License-Identifier: MIT

// Command lvbuild builds compound structures from the command line.
//
//	lvbuild port --orientation 1,0,0 --separation 0.07
//	lvbuild build water.yaml --ghosts
//	lvbuild version
//
// Coordinates are written to stdout in XYZ format; logs go to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
