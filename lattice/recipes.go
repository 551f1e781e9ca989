// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbuild/vecmath"
)

// Basis tables of the built-in recipes (fractional coordinates).
var (
	scBasis = []Site{
		{Label: "A", Points: []vecmath.Vec3{{}}},
	}
	bccBasis = []Site{
		{Label: "A", Points: []vecmath.Vec3{{}}},
		{Label: "B", Points: []vecmath.Vec3{{X: 0.5, Y: 0.5, Z: 0.5}}},
	}
	fccBasis = []Site{
		{Label: "A", Points: []vecmath.Vec3{{}}},
		{Label: "B", Points: []vecmath.Vec3{{Y: 0.5, Z: 0.5}}},
		{Label: "C", Points: []vecmath.Vec3{{X: 0.5, Z: 0.5}}},
		{Label: "D", Points: []vecmath.Vec3{{X: 0.5, Y: 0.5}}},
	}
	hexAngles = vecmath.New(90, 90, 120)
)

// SC returns the simple cubic lattice with edge a (one basis site "A").
func SC(a float64) (*Lattice, error) { return cubic("SC", a, scBasis) }

// BCC returns the body-centred cubic lattice with edge a (sites "A", "B").
func BCC(a float64) (*Lattice, error) { return cubic("BCC", a, bccBasis) }

// FCC returns the face-centred cubic lattice with edge a (sites "A".."D").
func FCC(a float64) (*Lattice, error) { return cubic("FCC", a, fccBasis) }

// HEX3D returns the hexagonal lattice with in-plane edge a and height c
// (γ = 120°, one basis site "A").
func HEX3D(a, c float64) (*Lattice, error) {
	if !positive(a) || !positive(c) {
		return nil, fmt.Errorf("HEX3D(%g,%g): %w", a, c, ErrBadSpacing)
	}

	return New(
		WithSpacing(vecmath.New(a, a, c)),
		WithAngles(hexAngles),
		withSites(scBasis),
	)
}

func cubic(name string, a float64, basis []Site) (*Lattice, error) {
	if !positive(a) {
		return nil, fmt.Errorf("%s(%g): %w", name, a, ErrBadSpacing)
	}

	return New(WithSpacing(vecmath.New(a, a, a)), withSites(basis))
}

func withSites(sites []Site) Option {
	return func(c *config) {
		for _, s := range sites {
			WithBasis(s.Label, s.Points...)(c)
		}
	}
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }
