// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.

package lattice

import "errors"

var (
	// ErrBadSpacing indicates a missing, negative, non-finite or all-zero spacing.
	ErrBadSpacing = errors.New("lattice: invalid lattice spacing")

	// ErrBadVectors indicates lattice vectors that are co-linear, co-planar,
	// left-handed, or angles that cannot produce vectors.
	ErrBadVectors = errors.New("lattice: invalid lattice vectors")

	// ErrOverdefined indicates both vectors and angles were supplied.
	ErrOverdefined = errors.New("lattice: vectors and angles are mutually exclusive")

	// ErrBadBasis indicates an empty label, a label without points, a
	// duplicate label, or a fractional coordinate outside [0, 1).
	ErrBadBasis = errors.New("lattice: invalid basis")

	// ErrBadRepeats indicates a non-positive repeat count in Populate/Box.
	ErrBadRepeats = errors.New("lattice: repeats must be >= 1")

	// ErrMissingBasis indicates Populate got compounds for some but not all basis labels.
	ErrMissingBasis = errors.New("lattice: no compound for basis label")
)
