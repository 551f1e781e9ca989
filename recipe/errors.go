// SPDX-License-Identifier: MIT
// Package recipe: sentinel error set.

package recipe

import "errors"

var (
	// ErrInvalidRecipe indicates malformed YAML, unknown keys or a field
	// that fails validation (wrong vector arity, bad repeat counts).
	ErrInvalidRecipe = errors.New("recipe: invalid recipe")

	// ErrUnknownAnchor indicates a port anchor label that names no particle.
	ErrUnknownAnchor = errors.New("recipe: unknown anchor")

	// ErrUnknownLattice indicates a lattice kind other than sc, bcc, fcc or hex.
	ErrUnknownLattice = errors.New("recipe: unknown lattice kind")
)
