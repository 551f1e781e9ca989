// SPDX-License-Identifier: MIT
// File: port.go
// Role: the Port connector — construction, orientation alignment, and the
//       Center/Direction contract consumed by fragment fusion.
// Determinism:
//   - "up" is always the first child and "middle", "top" its first two
//     particles, so Direction() = unit(top - middle) of the up sub-frame.
// AI-HINT (file):
//   - The degenerate branches rotate about the fixed z axis. This is valid
//     only because the canonical direction is +Y; changing defaultDirection
//     requires re-deriving those branches.

package compound

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbuild/vecmath"
)

// Port labels and names.
const (
	PortName    = "Port"
	SubportName = "subport"
	UpLabel     = "up"
	DownLabel   = "down"

	ghostName = "G"
)

// Tolerances for recognising an orientation as parallel or antiparallel to
// defaultDirection: |d_i - u_i| <= alignAtol + alignRtol·|u_i|. An
// orientation that fails the test has a sideways component above alignAtol,
// so the general branch's cross product stays above vecmath.Epsilon.
const (
	alignRtol = 1e-5
	alignAtol = vecmath.Epsilon
)

// defaultDirection is the facing of a freshly built sub-frame.
var defaultDirection = vecmath.YAxis

// subportSites are the canonical local offsets of one sub-frame, in order.
var subportSites = []struct {
	label string
	pos   vecmath.Vec3
}{
	{"middle", vecmath.New(0.005, 0.0025, -0.0025)},
	{"top", vecmath.New(0.005, 0.0225, -0.0025)},
	{"left", vecmath.New(-0.015, -0.0075, -0.0025)},
	{"right", vecmath.New(0.005, -0.0175, 0.0075)},
}

// Port is a ghost connector made of two antiparallel sub-frames.
//
// Anchor is a non-owning reference: the Port never manages its lifetime and
// Clone remaps it rather than sharing it. Used is flipped by the consumer
// that fuses two ports.
type Port struct {
	Compound
	Anchor *Particle
	Used   bool
}

// PortOption configures NewPort.
type PortOption func(*portConfig)

type portConfig struct {
	anchor      *Particle
	orientation vecmath.Vec3
	separation  float64
}

// WithAnchor positions the Port relative to anchor.
func WithAnchor(anchor *Particle) PortOption {
	return func(c *portConfig) { c.anchor = anchor }
}

// WithOrientation sets the facing of the Port (default (0,1,0)); any
// non-zero length is accepted.
func WithOrientation(orientation vecmath.Vec3) PortOption {
	return func(c *portConfig) { c.orientation = orientation }
}

// WithSeparation shifts the Port along its orientation by distance (may be negative).
func WithSeparation(distance float64) PortOption {
	return func(c *portConfig) { c.separation = distance }
}

func newPortConfig(opts ...PortOption) portConfig {
	cfg := portConfig{orientation: defaultDirection}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// NewPort builds a Port facing the requested orientation.
// MAIN DESCRIPTION:
//   - up and down start as identical sub-frames facing +Y; the alignment
//     step turns up onto the orientation and down onto its opposite.
//
// Implementation:
//   - Stage 1: validate orientation/separation.
//   - Stage 2: build up, clone it into down, attach both.
//   - Stage 3: align (antiparallel / parallel / general branch).
//   - Stage 4: TranslateTo(anchor) if any, then Translate(separation·û).
//
// Errors:
//   - vecmath.ErrDegenerateVector for a zero orientation.
//   - vecmath.ErrNaNInf for non-finite orientation or separation.
func NewPort(opts ...PortOption) (*Port, error) {
	cfg := newPortConfig(opts...)
	if math.IsNaN(cfg.separation) || math.IsInf(cfg.separation, 0) {
		return nil, fmt.Errorf("NewPort(separation=%g): %w", cfg.separation, vecmath.ErrNaNInf)
	}
	unit, err := vecmath.UnitVector(cfg.orientation)
	if err != nil {
		return nil, fmt.Errorf("NewPort: orientation: %w", err)
	}

	p := &Port{Compound: Compound{name: PortName, ghost: true, children: make(map[string]Node)}}
	p.self = p

	up, err := newSubport()
	if err != nil {
		return nil, fmt.Errorf("NewPort: %w", err)
	}
	down, err := CloneCompound(up)
	if err != nil {
		return nil, fmt.Errorf("NewPort: %w", err)
	}
	if err = p.Compound.add(up, UpLabel); err != nil {
		return nil, fmt.Errorf("NewPort: %w", err)
	}
	if err = p.Compound.add(down, DownLabel); err != nil {
		return nil, fmt.Errorf("NewPort: %w", err)
	}

	if err = p.align(up, down, unit); err != nil {
		return nil, fmt.Errorf("NewPort: %w", err)
	}

	p.Anchor = cfg.anchor
	if p.Anchor != nil {
		p.TranslateTo(p.Anchor.Position())
	}
	p.Translate(unit.Scale(cfg.separation))

	return p, nil
}

// align turns up onto unit and down onto -unit.
func (p *Port) align(up, down *Compound, unit vecmath.Vec3) error {
	switch {
	case vecmath.IsClose(defaultDirection, unit.Neg(), alignRtol, alignAtol):
		// Antiparallel: the cross-product axis would vanish.
		if err := down.Rotate(math.Pi, vecmath.ZAxis); err != nil {
			return err
		}
		return p.Rotate(math.Pi, vecmath.ZAxis)

	case vecmath.IsClose(defaultDirection, unit, alignRtol, alignAtol):
		return down.Rotate(math.Pi, vecmath.ZAxis)

	default:
		normal := vecmath.Cross(defaultDirection, unit)
		theta, err := vecmath.Angle(defaultDirection, unit)
		if err != nil {
			return err
		}
		if err = p.Rotate(theta, normal); err != nil {
			return err
		}
		return down.Rotate(math.Pi, normal)
	}
}

func newSubport() (*Compound, error) {
	sub := NewCompound(SubportName, AsGhost())
	for _, site := range subportSites {
		if err := sub.add(NewParticle(ghostName, site.pos, AsGhost()), site.label); err != nil {
			return nil, fmt.Errorf("%s/%s: %w", SubportName, site.label, err)
		}
	}

	return sub, nil
}

// Add is rejected: a Port's children are exactly "up" and "down". The seal
// also holds when called through the embedded Compound.
func (p *Port) Add(child Node, label string) error {
	return p.Compound.Add(child, label)
}

// Remove is rejected like Add.
func (p *Port) Remove(label string) (Node, error) {
	return p.Compound.Remove(label)
}

// Up returns the sub-frame facing the Port's direction.
func (p *Port) Up() *Compound { return p.subframe(UpLabel) }

// Down returns the sub-frame facing away from the Port's direction.
func (p *Port) Down() *Compound { return p.subframe(DownLabel) }

func (p *Port) subframe(label string) *Compound {
	c, _ := p.children[label].(*Compound)
	return c
}

// Direction returns unit(P[1] − P[0]) over the pre-order particle sequence,
// i.e. the facing of the up sub-frame.
//
// Errors:
//   - ErrMalformedTree if the Port lost its sub-frame particles.
//   - vecmath.ErrDegenerateVector if the first two particles coincide.
func (p *Port) Direction() (vecmath.Vec3, error) {
	return frameDirection(&p.Compound)
}

// UpDirection is the facing of the up sub-frame (equal to Direction).
func (p *Port) UpDirection() (vecmath.Vec3, error) {
	return frameDirection(p.Up())
}

// DownDirection is the facing of the down sub-frame, antiparallel to Direction.
func (p *Port) DownDirection() (vecmath.Vec3, error) {
	return frameDirection(p.Down())
}

// Separation returns the distance from the anchor (or origin) to Center.
func (p *Port) Separation() float64 {
	var from vecmath.Vec3
	if p.Anchor != nil {
		from = p.Anchor.Position()
	}

	return p.Center().Sub(from).Norm()
}

func frameDirection(c *Compound) (vecmath.Vec3, error) {
	if c == nil {
		return vecmath.Vec3{}, fmt.Errorf("Direction: %w", ErrMalformedTree)
	}
	ps := c.Particles(true)
	if len(ps) < 2 {
		return vecmath.Vec3{}, fmt.Errorf("Direction(%s): %d particles: %w", c.name, len(ps), ErrMalformedTree)
	}
	d, err := vecmath.UnitVector(ps[1].pos.Sub(ps[0].pos))
	if err != nil {
		return vecmath.Vec3{}, fmt.Errorf("Direction(%s): %w", c.name, err)
	}

	return d, nil
}

// String renders the port facing and center.
func (p *Port) String() string {
	d, _ := p.Direction()
	return fmt.Sprintf("Port(center=%v, direction=%v, used=%t)", p.Center(), d, p.Used)
}
