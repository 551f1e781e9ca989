// SPDX-License-Identifier: MIT

package compound

import "github.com/katalvlaran/lvbuild/vecmath"

const defaultParticleName = "Particle"

// Particle is a named point. It owns nothing and is owned by at most one Compound.
type Particle struct {
	name   string
	pos    vecmath.Vec3
	ghost  bool
	parent Node
}

// NewParticle returns a detached particle at pos. An empty name becomes "Particle".
func NewParticle(name string, pos vecmath.Vec3, opts ...NodeOption) *Particle {
	if name == "" {
		name = defaultParticleName
	}
	cfg := newNodeConfig(opts...)

	return &Particle{name: name, pos: pos, ghost: cfg.ghost}
}

// Name returns the particle name.
func (p *Particle) Name() string { return p.name }

// Ghost reports whether p is a placeholder point.
func (p *Particle) Ghost() bool { return p.ghost }

// Parent returns the owning compound or nil.
func (p *Particle) Parent() Node { return p.parent }

// Position returns the current coordinates.
func (p *Particle) Position() vecmath.Vec3 { return p.pos }

// SetPosition overwrites the coordinates.
func (p *Particle) SetPosition(pos vecmath.Vec3) { p.pos = pos }

// Center of a single particle is its position.
func (p *Particle) Center() vecmath.Vec3 { return p.pos }

// Translate shifts the particle by delta.
func (p *Particle) Translate(delta vecmath.Vec3) { p.pos = p.pos.Add(delta) }

// TranslateTo places the particle at point.
func (p *Particle) TranslateTo(point vecmath.Vec3) { p.pos = point }

// Rotate turns the particle about axis through the origin.
func (p *Particle) Rotate(theta float64, axis vecmath.Vec3) error {
	r, err := vecmath.RotationMatrix(theta, axis)
	if err != nil {
		return err
	}
	p.pos = r.Apply(p.pos)

	return nil
}

// String renders "name(x, y, z)".
func (p *Particle) String() string { return p.name + p.pos.String() }

func (p *Particle) setParent(parent Node) { p.parent = parent }

func (p *Particle) walk(fn func(*Particle)) { fn(p) }
