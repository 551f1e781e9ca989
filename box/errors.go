// SPDX-License-Identifier: MIT
// Package box: sentinel error set.
//
// All constructors return these sentinels (wrapped with call-site context via
// %w); tests and callers match them with errors.Is.

package box

import "errors"

var (
	// ErrBadLengths indicates negative, non-finite, or inverted (max < min) extents.
	ErrBadLengths = errors.New("box: invalid lengths")

	// ErrBadAngles indicates angles outside (0°, 180°) or a triple that
	// cannot close a parallelepiped.
	ErrBadAngles = errors.New("box: invalid angles")

	// ErrColinearVectors indicates box vectors that are co-linear or co-planar
	// and therefore do not span a volume.
	ErrColinearVectors = errors.New("box: box vectors are co-linear")
)
