// SPDX-License-Identifier: MIT
// Package vecmath: sentinel error set.
//
// Callers MUST branch with errors.Is; call sites wrap these with
// fmt.Errorf("Op: %w", ErrX) to attach context.

package vecmath

import "errors"

var (
	// ErrDegenerateVector is returned when a vector whose norm is within
	// Epsilon of zero is normalized or used as a rotation axis.
	ErrDegenerateVector = errors.New("vecmath: degenerate (near-zero) vector")

	// ErrIndexOutOfBounds indicates a Matrix3 row or column outside [0,3).
	ErrIndexOutOfBounds = errors.New("vecmath: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are required.
	ErrNaNInf = errors.New("vecmath: NaN or Inf encountered")
)
