// SPDX-License-Identifier: MIT
// File: transform.go
// Role: whole-subtree rigid transforms and the centroid query.
// Determinism:
//   - Every transform visits particles pre-order in insertion order; Center
//     sums in that same order so repeated calls are bit-for-bit stable.
// Notes:
//   - Transforms are not commutative. Rotate is about the global origin, so
//     rotating after TranslateTo swings the subtree around (0,0,0).

package compound

import (
	"fmt"

	"github.com/katalvlaran/lvbuild/vecmath"
)

// Center returns the mean position of every descendant particle, ghosts
// included. An empty compound has its center at the origin.
// Complexity: O(n) particles.
func (c *Compound) Center() vecmath.Vec3 {
	var (
		sum vecmath.Vec3
		n   int
	)
	c.walk(func(p *Particle) {
		sum = sum.Add(p.pos)
		n++
	})
	if n == 0 {
		return vecmath.Vec3{}
	}

	return sum.Scale(1 / float64(n))
}

// Translate adds delta to every descendant particle.
func (c *Compound) Translate(delta vecmath.Vec3) {
	c.walk(func(p *Particle) { p.pos = p.pos.Add(delta) })
}

// TranslateTo moves the subtree rigidly so that its Center lands on point.
func (c *Compound) TranslateTo(point vecmath.Vec3) {
	c.Translate(point.Sub(c.Center()))
}

// Rotate applies RotationMatrix(theta, axis) to every descendant particle.
// The rotation is about the global origin, not about c.Center().
//
// Errors:
//   - vecmath.ErrDegenerateVector for a zero axis; nothing is moved.
func (c *Compound) Rotate(theta float64, axis vecmath.Vec3) error {
	r, err := vecmath.RotationMatrix(theta, axis)
	if err != nil {
		return fmt.Errorf("Rotate(%s): %w", c.name, err)
	}
	c.walk(func(p *Particle) { p.pos = r.Apply(p.pos) })

	return nil
}

// Spin rotates the subtree by theta about axis passing through its own
// center, leaving Center unchanged.
func (c *Compound) Spin(theta float64, axis vecmath.Vec3) error {
	r, err := vecmath.RotationMatrix(theta, axis)
	if err != nil {
		return fmt.Errorf("Spin(%s): %w", c.name, err)
	}
	center := c.Center()
	c.walk(func(p *Particle) { p.pos = r.Apply(p.pos.Sub(center)).Add(center) })

	return nil
}
