// SPDX-License-Identifier: MIT
// Package: lvbuild/lattice
//
// options.go — construction knobs and deterministic defaults.
//
// Deterministic defaults:
//   • vectors = identity (cubic axes)
//   • basis   = "default": [(0,0,0)]
//   • spacing has no default and must be supplied.

package lattice

import "github.com/katalvlaran/lvbuild/vecmath"

// DefaultBasisLabel names the single-site basis used when none is supplied.
const DefaultBasisLabel = "default"

// Option configures New. Options apply in order; later spacing/vectors/angles
// override earlier ones, while WithBasis accumulates labels.
type Option func(*config)

type config struct {
	spacing    vecmath.Vec3
	spacingSet bool
	vectors    *vecmath.Matrix3
	angles     vecmath.Vec3
	anglesSet  bool
	basis      []Site
}

// Site is one basis label and its fractional coordinates.
type Site struct {
	Label  string
	Points []vecmath.Vec3
}

// WithSpacing sets the edge lengths of the unit cell along each lattice vector.
func WithSpacing(spacing vecmath.Vec3) Option {
	return func(c *config) {
		c.spacing = spacing
		c.spacingSet = true
	}
}

// WithVectors sets the lattice vectors (rows); they are normalized on New.
func WithVectors(vectors *vecmath.Matrix3) Option {
	return func(c *config) { c.vectors = vectors }
}

// WithAngles derives the lattice vectors from α, β, γ in degrees.
func WithAngles(angles vecmath.Vec3) Option {
	return func(c *config) {
		c.angles = angles
		c.anglesSet = true
	}
}

// WithBasis appends a basis label with its fractional coordinates.
func WithBasis(label string, points ...vecmath.Vec3) Option {
	return func(c *config) {
		pts := make([]vecmath.Vec3, len(points))
		copy(pts, points)
		c.basis = append(c.basis, Site{Label: label, Points: pts})
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
