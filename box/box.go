// SPDX-License-Identifier: MIT

// Package box describes the periodic cell around a structure: edge lengths
// a, b, c and the interplanar angles α (b∧c), β (a∧c), γ (a∧b) in degrees.
//
// A Box is stored in its reduced form: a lies on +x, b in the xy-plane and c
// completes a right-handed basis, so the tilt factors (xy, xz, yz) can be read
// straight off Vectors().
package box

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbuild/vecmath"
)

const (
	right   = 90.0
	epsilon = 1e-8
)

// Box is a parallelepiped anchored at Mins.
type Box struct {
	lengths   vecmath.Vec3 // a, b, c
	angles    vecmath.Vec3 // α, β, γ in degrees
	mins      vecmath.Vec3 // origin corner
	reflected bool         // built from a left-handed basis
}

// Option configures a Box before validation.
type Option func(*Box)

// WithAngles sets α, β, γ in degrees (default 90, 90, 90).
func WithAngles(angles vecmath.Vec3) Option {
	return func(b *Box) { b.angles = angles }
}

// WithOrigin sets the corner the box is anchored at (default origin).
func WithOrigin(mins vecmath.Vec3) Option {
	return func(b *Box) { b.mins = mins }
}

// New builds a Box from edge lengths; options apply in order.
//
// Errors:
//   - ErrBadLengths for negative or non-finite lengths.
//   - ErrBadAngles for angles outside (0,180) or an unclosable triple.
func New(lengths vecmath.Vec3, opts ...Option) (*Box, error) {
	b := &Box{lengths: lengths, angles: vecmath.New(right, right, right)}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// FromLengthsAngles is New(lengths, WithAngles(angles)).
func FromLengthsAngles(lengths, angles vecmath.Vec3) (*Box, error) {
	return New(lengths, WithAngles(angles))
}

// FromMinsMaxs builds the orthorhombic box spanning [mins, maxs].
func FromMinsMaxs(mins, maxs vecmath.Vec3) (*Box, error) {
	if maxs.X < mins.X || maxs.Y < mins.Y || maxs.Z < mins.Z {
		return nil, fmt.Errorf("FromMinsMaxs(%v,%v): %w", mins, maxs, ErrBadLengths)
	}

	return New(maxs.Sub(mins), WithOrigin(mins))
}

// FromVectors builds a Box whose edges are the rows of vectors.
// A left-handed basis is reflected into a right-handed one by negating the
// third vector; Reflected reports when that happened.
//
// Errors:
//   - ErrColinearVectors when any pair is co-linear or all three are co-planar.
//   - ErrBadLengths for non-finite input.
func FromVectors(vectors *vecmath.Matrix3) (*Box, error) {
	a, b, c := vectors.Row(0), vectors.Row(1), vectors.Row(2)
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return nil, fmt.Errorf("FromVectors: %w", ErrBadLengths)
	}
	for _, pair := range [][2]vecmath.Vec3{{a, b}, {a, c}, {b, c}} {
		if vecmath.Cross(pair[0], pair[1]).Norm() <= epsilon {
			return nil, fmt.Errorf("FromVectors: %v and %v: %w", pair[0], pair[1], ErrColinearVectors)
		}
	}
	det := vectors.Det()
	if math.Abs(det) <= epsilon {
		return nil, fmt.Errorf("FromVectors: co-planar: %w", ErrColinearVectors)
	}
	reflected := det < 0
	if reflected {
		c = c.Neg()
	}

	// Pairwise angles cannot fail: no vector is zero at this point.
	alpha, _ := vecmath.Angle(b, c)
	beta, _ := vecmath.Angle(a, c)
	gamma, _ := vecmath.Angle(a, b)

	out, err := FromLengthsAngles(
		vecmath.New(a.Norm(), b.Norm(), c.Norm()),
		vecmath.New(degrees(alpha), degrees(beta), degrees(gamma)),
	)
	if err != nil {
		return nil, fmt.Errorf("FromVectors: %w", err)
	}
	out.reflected = reflected

	return out, nil
}

func (b *Box) validate() error {
	l := b.lengths
	if !l.IsFinite() || l.X < 0 || l.Y < 0 || l.Z < 0 {
		return fmt.Errorf("New(lengths=%v): %w", l, ErrBadLengths)
	}
	if !b.mins.IsFinite() {
		return fmt.Errorf("New(origin=%v): %w", b.mins, ErrBadLengths)
	}
	an := b.angles
	if !an.IsFinite() {
		return fmt.Errorf("New(angles=%v): %w", an, ErrBadAngles)
	}
	for _, deg := range []float64{an.X, an.Y, an.Z} {
		if deg <= 0 || deg >= 180 {
			return fmt.Errorf("New(angles=%v): %w", an, ErrBadAngles)
		}
	}
	if _, _, cz2 := b.cTerms(); cz2 <= 0 {
		return fmt.Errorf("New(angles=%v): cannot close cell: %w", an, ErrBadAngles)
	}

	return nil
}

// cTerms returns the unit-length components of c and the square of its z part.
func (b *Box) cTerms() (cx, cy, cz2 float64) {
	alpha, beta, gamma := radians(b.angles.X), radians(b.angles.Y), radians(b.angles.Z)
	cx = math.Cos(beta)
	cy = (math.Cos(alpha) - math.Cos(beta)*math.Cos(gamma)) / math.Sin(gamma)
	cz2 = 1 - cx*cx - cy*cy

	return cx, cy, cz2
}

// Vectors returns the reduced box vectors as rows:
//
//	a = (a, 0, 0)
//	b = (b·cosγ, b·sinγ, 0)
//	c = (c·cosβ, c·(cosα − cosβ·cosγ)/sinγ, c·√(1 − cx² − cy²))
func (b *Box) Vectors() *vecmath.Matrix3 {
	gamma := radians(b.angles.Z)
	cx, cy, cz2 := b.cTerms()
	la, lb, lc := b.lengths.X, b.lengths.Y, b.lengths.Z

	return vecmath.FromRows(
		vecmath.New(la, 0, 0),
		vecmath.New(lb*math.Cos(gamma), lb*math.Sin(gamma), 0),
		vecmath.New(lc*cx, lc*cy, lc*math.Sqrt(cz2)),
	)
}

// TiltFactors returns (xy, xz, yz) of the reduced vectors.
func (b *Box) TiltFactors() (xy, xz, yz float64) {
	v := b.Vectors()
	return v.Row(1).X, v.Row(2).X, v.Row(2).Y
}

// Volume returns the volume of the cell.
func (b *Box) Volume() float64 { return b.Vectors().Det() }

// Lengths returns (a, b, c).
func (b *Box) Lengths() vecmath.Vec3 { return b.lengths }

// Angles returns (α, β, γ) in degrees.
func (b *Box) Angles() vecmath.Vec3 { return b.angles }

// Mins returns the origin corner.
func (b *Box) Mins() vecmath.Vec3 { return b.mins }

// Maxs returns the corner opposite Mins: Mins + a + b + c.
func (b *Box) Maxs() vecmath.Vec3 {
	v := b.Vectors()
	return b.mins.Add(v.Row(0)).Add(v.Row(1)).Add(v.Row(2))
}

// Lx is the length of a.
func (b *Box) Lx() float64 { return b.lengths.X }

// Ly is the length of b.
func (b *Box) Ly() float64 { return b.lengths.Y }

// Lz is the length of c.
func (b *Box) Lz() float64 { return b.lengths.Z }

// Reflected reports whether FromVectors had to fix a left-handed basis.
func (b *Box) Reflected() bool { return b.reflected }

// String renders lengths, angles and origin.
func (b *Box) String() string {
	return fmt.Sprintf("Box(lengths=%v, angles=%v, mins=%v)", b.lengths, b.angles, b.mins)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
