// SPDX-License-Identifier: MIT
// Package compound: sentinel error set.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with fmt.Errorf("Op(args): %w", ErrX).
//   • Degenerate Port orientations (parallel or antiparallel to the default)
//     are NOT errors; a zero orientation surfaces vecmath.ErrDegenerateVector.

package compound

import "errors"

var (
	// ErrNilNode indicates a nil Particle/Compound/Port was passed where a node is required.
	ErrNilNode = errors.New("compound: nil node")

	// ErrDuplicateLabel indicates Add was asked to reuse a label already present in the parent.
	ErrDuplicateLabel = errors.New("compound: duplicate label")

	// ErrAlreadyParented indicates Add received a node owned by another compound,
	// or an attachment that would make a compound its own descendant.
	ErrAlreadyParented = errors.New("compound: node already has a parent")

	// ErrLabelNotFound indicates a lookup (Child/Find/Remove) named a missing label.
	ErrLabelNotFound = errors.New("compound: label not found")

	// ErrNotParticle indicates a lookup resolved to a container where a Particle was required.
	ErrNotParticle = errors.New("compound: node is not a particle")

	// ErrSealedPort indicates an attempt to add or remove children of a Port.
	ErrSealedPort = errors.New("compound: port children are fixed")

	// ErrMalformedTree indicates a subtree that cannot be traversed or cloned
	// (nil child, a node reachable twice, a port missing its sub-frames).
	ErrMalformedTree = errors.New("compound: malformed tree")

	// ErrEmpty indicates a geometric query that needs at least one particle.
	ErrEmpty = errors.New("compound: no particles")
)
