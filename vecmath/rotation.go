// SPDX-License-Identifier: MIT

package vecmath

import (
	"fmt"
	"math"
)

// RotationMatrix returns the matrix rotating by theta radians about axis.
// MAIN DESCRIPTION:
//   - Axis–angle (Rodrigues) construction, right-hand rule.
//
// Implementation:
//   - Stage 1: normalize axis (ErrDegenerateVector on a zero axis).
//   - Stage 2: R = cosθ·I + sinθ·[u]× + (1−cosθ)·u⊗u.
//
// Complexity:
//   - Time O(1), Space O(1).
func RotationMatrix(theta float64, axis Vec3) (*Matrix3, error) {
	u, err := UnitVector(axis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRotationMatrix, err)
	}
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return nil, fmt.Errorf("%s(theta=%g): %w", ctxRotationMatrix, theta, ErrNaNInf)
	}

	c, s := math.Cos(theta), math.Sin(theta)
	t := 1 - c
	x, y, z := u.X, u.Y, u.Z

	return &Matrix3{data: [dim * dim]float64{
		c + x*x*t, x*y*t - z*s, x*z*t + y*s,
		y*x*t + z*s, c + y*y*t, y*z*t - x*s,
		z*x*t - y*s, z*y*t + x*s, c + z*z*t,
	}}, nil
}

// Rotate is a convenience for RotationMatrix(theta, axis).Apply(v).
func Rotate(v Vec3, theta float64, axis Vec3) (Vec3, error) {
	r, err := RotationMatrix(theta, axis)
	if err != nil {
		return Vec3{}, err
	}

	return r.Apply(v), nil
}
