// SPDX-License-Identifier: MIT

// Package lattice fills space with copies of basis compounds arranged on a
// Bravais lattice.
//
// A Lattice is described by a spacing per lattice vector, three unit
// lattice vectors (rows, right-handed), and a basis: labelled fractional
// coordinates inside the unit cell. Populate clones one compound per basis
// point per cell and centers it on the cartesian lattice point
//
//	r = Σ_d (frac_d + cell_d) · spacing_d · v_d
//
// Cells are visited x-major (i, then j, then k) inside each basis label, and
// labels in declaration order, so the output order is deterministic.
package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbuild/box"
	"github.com/katalvlaran/lvbuild/compound"
	"github.com/katalvlaran/lvbuild/vecmath"
)

// Name of the compound returned by Populate.
const Name = "lattice"

const epsilon = 1e-8

// ctx tags for error wrapping.
const (
	ctxNew      = "New"
	ctxPopulate = "Populate"
	ctxBox      = "Box"
)

// Lattice is an immutable Bravais lattice description.
type Lattice struct {
	spacing vecmath.Vec3
	vectors *vecmath.Matrix3 // unit rows
	angles  vecmath.Vec3     // degrees
	basis   []Site
}

// New validates the options and builds a Lattice.
// MAIN DESCRIPTION:
//   - Spacing is required; vectors default to identity; basis defaults to a
//     single site at the cell origin labelled DefaultBasisLabel.
//
// Errors:
//   - ErrBadSpacing, ErrOverdefined, ErrBadVectors, ErrBadBasis.
func New(opts ...Option) (*Lattice, error) {
	cfg := newConfig(opts...)

	if err := validateSpacing(cfg); err != nil {
		return nil, err
	}
	if cfg.vectors != nil && cfg.anglesSet {
		return nil, fmt.Errorf("%s: %w", ctxNew, ErrOverdefined)
	}

	l := &Lattice{spacing: cfg.spacing}
	var err error
	switch {
	case cfg.anglesSet:
		l.vectors, err = vectorsFromAngles(cfg.angles)
		l.angles = cfg.angles
	case cfg.vectors != nil:
		l.vectors, err = normalizeVectors(cfg.vectors)
		if err == nil {
			l.angles = anglesOf(l.vectors)
		}
	default:
		l.vectors = vecmath.Identity3()
		l.angles = vecmath.New(90, 90, 90)
	}
	if err != nil {
		return nil, err
	}

	if len(cfg.basis) == 0 {
		cfg.basis = []Site{{Label: DefaultBasisLabel, Points: []vecmath.Vec3{{}}}}
	}
	if err = validateBasis(cfg.basis); err != nil {
		return nil, err
	}
	l.basis = cfg.basis

	return l, nil
}

func validateSpacing(cfg config) error {
	s := cfg.spacing
	if !cfg.spacingSet {
		return fmt.Errorf("%s: spacing is required: %w", ctxNew, ErrBadSpacing)
	}
	if !s.IsFinite() || s.X < 0 || s.Y < 0 || s.Z < 0 {
		return fmt.Errorf("%s(spacing=%v): %w", ctxNew, s, ErrBadSpacing)
	}
	if s.X == 0 && s.Y == 0 && s.Z == 0 {
		return fmt.Errorf("%s(spacing=%v): all zero: %w", ctxNew, s, ErrBadSpacing)
	}

	return nil
}

func vectorsFromAngles(angles vecmath.Vec3) (*vecmath.Matrix3, error) {
	b, err := box.FromLengthsAngles(vecmath.New(1, 1, 1), angles)
	if err != nil {
		return nil, fmt.Errorf("%s(angles=%v): %w: %w", ctxNew, angles, ErrBadVectors, err)
	}

	return b.Vectors(), nil
}

// normalizeVectors scales each row to unit length and requires a
// right-handed, non-degenerate basis.
func normalizeVectors(m *vecmath.Matrix3) (*vecmath.Matrix3, error) {
	var rows [3]vecmath.Vec3
	for i := range rows {
		u, err := vecmath.UnitVector(m.Row(i))
		if err != nil {
			return nil, fmt.Errorf("%s: vector %d: %w: %w", ctxNew, i, ErrBadVectors, err)
		}
		rows[i] = u
	}
	out := vecmath.FromRows(rows[0], rows[1], rows[2])
	if det := out.Det(); det <= epsilon {
		return nil, fmt.Errorf("%s: det=%g (co-planar or left-handed): %w", ctxNew, det, ErrBadVectors)
	}

	return out, nil
}

func anglesOf(v *vecmath.Matrix3) vecmath.Vec3 {
	// Rows are unit vectors here; Angle cannot fail.
	alpha, _ := vecmath.Angle(v.Row(1), v.Row(2))
	beta, _ := vecmath.Angle(v.Row(0), v.Row(2))
	gamma, _ := vecmath.Angle(v.Row(0), v.Row(1))

	return vecmath.New(alpha*180/math.Pi, beta*180/math.Pi, gamma*180/math.Pi)
}

func validateBasis(sites []Site) error {
	seen := make(map[string]struct{}, len(sites))
	for _, s := range sites {
		if s.Label == "" || len(s.Points) == 0 {
			return fmt.Errorf("%s: basis %q: %w", ctxNew, s.Label, ErrBadBasis)
		}
		if _, dup := seen[s.Label]; dup {
			return fmt.Errorf("%s: basis %q declared twice: %w", ctxNew, s.Label, ErrBadBasis)
		}
		seen[s.Label] = struct{}{}
		for _, p := range s.Points {
			if !p.IsFinite() || !inUnit(p.X) || !inUnit(p.Y) || !inUnit(p.Z) {
				return fmt.Errorf("%s: basis %q point %v outside [0,1): %w", ctxNew, s.Label, p, ErrBadBasis)
			}
		}
	}

	return nil
}

func inUnit(x float64) bool { return x >= 0 && x < 1 }

// Spacing returns the per-vector cell lengths.
func (l *Lattice) Spacing() vecmath.Vec3 { return l.spacing }

// Vectors returns a copy of the unit lattice vectors (rows).
func (l *Lattice) Vectors() *vecmath.Matrix3 { return l.vectors.Clone() }

// Angles returns α, β, γ in degrees.
func (l *Lattice) Angles() vecmath.Vec3 { return l.angles }

// Basis returns the basis sites in declaration order.
func (l *Lattice) Basis() []Site {
	out := make([]Site, len(l.basis))
	for i, s := range l.basis {
		pts := make([]vecmath.Vec3, len(s.Points))
		copy(pts, s.Points)
		out[i] = Site{Label: s.Label, Points: pts}
	}

	return out
}

// Cartesian maps fractional lattice coordinates to cartesian space.
func (l *Lattice) Cartesian(frac vecmath.Vec3) vecmath.Vec3 {
	return l.vectors.Row(0).Scale(frac.X * l.spacing.X).
		Add(l.vectors.Row(1).Scale(frac.Y * l.spacing.Y)).
		Add(l.vectors.Row(2).Scale(frac.Z * l.spacing.Z))
}

// Points returns every cartesian lattice point of an x×y×z block, per basis
// label, in Populate order.
func (l *Lattice) Points(x, y, z int) (map[string][]vecmath.Vec3, error) {
	if x < 1 || y < 1 || z < 1 {
		return nil, fmt.Errorf("Points(%d,%d,%d): %w", x, y, z, ErrBadRepeats)
	}
	out := make(map[string][]vecmath.Vec3, len(l.basis))
	for _, site := range l.basis {
		pts := make([]vecmath.Vec3, 0, len(site.Points)*x*y*z)
		for _, frac := range site.Points {
			for i := 0; i < x; i++ {
				for j := 0; j < y; j++ {
					for k := 0; k < z; k++ {
						cell := vecmath.New(float64(i), float64(j), float64(k))
						pts = append(pts, l.Cartesian(frac.Add(cell)))
					}
				}
			}
		}
		out[site.Label] = pts
	}

	return out, nil
}

// Populate builds an x×y×z block of cells.
// MAIN DESCRIPTION:
//   - compounds maps basis labels to the node placed on their points; each
//     placement is an independent clone centered on the lattice point.
//
// Behavior highlights:
//   - nil/empty map: every label gets a particle named after the label.
//   - one entry: that node fills every label, whatever its key.
//   - otherwise every basis label must be present.
//
// Errors:
//   - ErrBadRepeats, ErrMissingBasis, compound.ErrNilNode, clone errors.
//
// Complexity:
//   - O(B·x·y·z·n) for B basis points and n particles per placed node.
func (l *Lattice) Populate(compounds map[string]compound.Node, x, y, z int) (*compound.Compound, error) {
	points, err := l.Points(x, y, z)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxPopulate, err)
	}
	templates, err := l.resolveTemplates(compounds)
	if err != nil {
		return nil, err
	}

	out := compound.NewCompound(Name)
	for _, site := range l.basis {
		for _, pt := range points[site.Label] {
			placed, err := compound.Clone(templates[site.Label])
			if err != nil {
				return nil, fmt.Errorf("%s(%s): %w", ctxPopulate, site.Label, err)
			}
			placed.TranslateTo(pt)
			if err = out.Add(placed, ""); err != nil {
				return nil, fmt.Errorf("%s(%s): %w", ctxPopulate, site.Label, err)
			}
		}
	}

	return out, nil
}

func (l *Lattice) resolveTemplates(compounds map[string]compound.Node) (map[string]compound.Node, error) {
	out := make(map[string]compound.Node, len(l.basis))
	switch len(compounds) {
	case 0:
		for _, site := range l.basis {
			out[site.Label] = compound.NewParticle(site.Label, vecmath.Vec3{})
		}
		return out, nil

	case 1:
		for key, n := range compounds {
			if n == nil {
				return nil, fmt.Errorf("%s(%s): %w", ctxPopulate, key, compound.ErrNilNode)
			}
			for _, site := range l.basis {
				out[site.Label] = n
			}
		}
		return out, nil
	}

	for _, site := range l.basis {
		n, ok := compounds[site.Label]
		if !ok {
			return nil, fmt.Errorf("%s(%s): %w", ctxPopulate, site.Label, ErrMissingBasis)
		}
		if n == nil {
			return nil, fmt.Errorf("%s(%s): %w", ctxPopulate, site.Label, compound.ErrNilNode)
		}
		out[site.Label] = n
	}

	return out, nil
}

// Box returns the periodic box spanned by an x×y×z block of cells.
func (l *Lattice) Box(x, y, z int) (*box.Box, error) {
	if x < 1 || y < 1 || z < 1 {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxBox, x, y, z, ErrBadRepeats)
	}
	v := vecmath.FromRows(
		l.vectors.Row(0).Scale(l.spacing.X*float64(x)),
		l.vectors.Row(1).Scale(l.spacing.Y*float64(y)),
		l.vectors.Row(2).Scale(l.spacing.Z*float64(z)),
	)
	b, err := box.FromVectors(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxBox, err)
	}

	return b, nil
}
