// SPDX-License-Identifier: MIT

// Package compound is the rigid-body composition engine: a tree of
// positioned point entities, whole-subtree rigid transforms, the Port
// connector used to align two fragments, and a reference-aware deep copy.
//
// 🚀 Building blocks
//
//	Particle — leaf with a name and a 3D position, optionally a ghost.
//	Compound — container owning named children in insertion order.
//	Port     — ghost Compound of two antiparallel four-point sub-frames
//	           ("up", "down") plus a non-owning Anchor and a Used flag.
//	Clone    — structural deep copy that remaps Port anchors through an
//	           identity map so copies never alias the source tree.
//
// Ownership:
//   - Every node has at most one parent; Add rejects nodes that are already
//     attached (ErrAlreadyParented) and attachments that would form a cycle.
//   - Port.Anchor is a plain reference, not an ownership edge: the anchor may
//     live anywhere in the overall tree, or nowhere.
//
// Determinism:
//   - Children are traversed pre-order in insertion order. Center, Particles
//     and Port.Direction all depend on this order.
//
// Transforms:
//   - Rotate turns positions about the global origin, not about the subtree's
//     center. Apply rotations before translations to reach a target pose.
//
// Concurrency:
//   - No internal locking. A tree must not be mutated from several
//     goroutines at once; clones share no state with their source.
//
// Quick example:
//
//	c := compound.NewCompound("CH2")
//	carbon := compound.NewParticle("C", vecmath.Vec3{})
//	_ = c.Add(carbon, "C")
//	p, _ := compound.NewPort(compound.WithAnchor(carbon),
//		compound.WithOrientation(vecmath.New(0, 0, 1)), compound.WithSeparation(0.07))
//	_ = c.Add(p, "up")
package compound
