// SPDX-License-Identifier: MIT

// Package vecmath provides the small, allocation-free 3D vector toolkit used
// by the composition engine: the Vec3 value type, normalization, angles,
// cross products and the dense 3×3 Matrix3 with axis–angle rotation.
//
// Purpose:
//   - Keep every geometric primitive pure (no state, no hidden globals).
//   - Surface degenerate input (zero-length vectors) as ErrDegenerateVector
//     instead of producing NaN coordinates downstream.
//   - Offer one tolerance policy (Epsilon, AllClose) shared by all callers.
//
// Conventions:
//   - Angles are radians unless a function name says otherwise.
//   - Matrices are row-major; Apply computes M·v for a column vector v.
//   - Rotations follow the right-hand rule about the normalized axis.
//
// Complexity quicksheet:
//   - Every Vec3 operation is O(1); Matrix3 products are O(27) flops.
package vecmath
