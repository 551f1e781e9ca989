// SPDX-License-Identifier: MIT

package vecmath

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used for degeneracy checks and by AllClose
// when callers do not supply their own tolerance.
const Epsilon = 1e-8

// ctx tags for error wrapping.
const (
	ctxUnitVector     = "UnitVector"
	ctxAngle          = "Angle"
	ctxRotationMatrix = "RotationMatrix"
)

// Canonical axes.
var (
	XAxis = Vec3{X: 1}
	YAxis = Vec3{Y: 1}
	ZAxis = Vec3{Z: 1}
)

// Vec3 is a point or displacement in 3D cartesian space.
type Vec3 struct{ X, Y, Z float64 }

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// FromSlice builds a Vec3 from exactly three components.
func FromSlice(s []float64) (Vec3, error) {
	if len(s) != 3 {
		return Vec3{}, fmt.Errorf("FromSlice: got %d components: %w", len(s), ErrIndexOutOfBounds)
	}
	v := Vec3{X: s[0], Y: s[1], Z: s[2]}
	if !v.IsFinite() {
		return Vec3{}, fmt.Errorf("FromSlice: %w", ErrNaNInf)
	}

	return v, nil
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product v·o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Norm returns the Euclidean length |v|.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Slice returns the components as []float64{X, Y, Z}.
func (v Vec3) Slice() []float64 { return []float64{v.X, v.Y, v.Z} }

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec3) IsFinite() bool {
	return !(math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) ||
		math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0))
}

// String renders the vector as "(x, y, z)".
func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// Cross returns the vector product a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// UnitVector returns v/|v|.
//
// Errors:
//   - ErrDegenerateVector when |v| <= Epsilon.
//   - ErrNaNInf when v has a non-finite component.
func UnitVector(v Vec3) (Vec3, error) {
	if !v.IsFinite() {
		return Vec3{}, fmt.Errorf("%s%v: %w", ctxUnitVector, v, ErrNaNInf)
	}
	n := v.Norm()
	if n <= Epsilon {
		return Vec3{}, fmt.Errorf("%s%v: %w", ctxUnitVector, v, ErrDegenerateVector)
	}

	return v.Scale(1 / n), nil
}

// Angle returns the angle between a and b in radians, within [0, π].
// The dot product of the unit vectors is clamped to [-1, 1] so rounding
// never pushes acos out of its domain.
func Angle(a, b Vec3) (float64, error) {
	ua, err := UnitVector(a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctxAngle, err)
	}
	ub, err := UnitVector(b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctxAngle, err)
	}

	return math.Acos(clamp(ua.Dot(ub), -1, 1)), nil
}

// Mean returns the arithmetic mean of points; the zero vector for no points.
func Mean(points []Vec3) Vec3 {
	if len(points) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum.Scale(1 / float64(len(points)))
}

// AllClose reports whether every component of a and b differs by at most tol.
func AllClose(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// IsClose reports whether every component satisfies
// |a_i - b_i| <= atol + rtol·|b_i|. The tolerance scales with b, so the
// test is not symmetric in its arguments.
func IsClose(a, b Vec3, rtol, atol float64) bool {
	return math.Abs(a.X-b.X) <= atol+rtol*math.Abs(b.X) &&
		math.Abs(a.Y-b.Y) <= atol+rtol*math.Abs(b.Y) &&
		math.Abs(a.Z-b.Z) <= atol+rtol*math.Abs(b.Z)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
