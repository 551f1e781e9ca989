// SPDX-License-Identifier: MIT

// Package recipe turns a declarative YAML description into a compound tree.
//
// A recipe lists particles, ports anchored to those particles by label, and
// an optional lattice block:
//
//	name: water-ish
//	particles:
//	  - {name: O, label: O, position: [0, 0, 0]}
//	  - {name: H, label: H1, position: [0.1, 0, 0]}
//	ports:
//	  - {label: up, anchor: H1, orientation: [1, 0, 0], separation: 0.07}
//	lattice:
//	  kind: fcc
//	  spacing: [0.36]
//	  repeat: [2, 2, 2]
//	  basis: Cu
//
// Unknown keys are rejected so that typos surface as errors.
package recipe

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvbuild/compound"
	"github.com/katalvlaran/lvbuild/internal/logging"
	"github.com/katalvlaran/lvbuild/lattice"
	"github.com/katalvlaran/lvbuild/vecmath"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Lattice kinds accepted in LatticeSpec.Kind.
const (
	KindSC  = "sc"
	KindBCC = "bcc"
	KindFCC = "fcc"
	KindHex = "hex"
)

// LatticeLabel is the child label the populated lattice is stored under.
const LatticeLabel = "lattice"

// Recipe is the decoded form of a recipe document.
type Recipe struct {
	Name      string         `mapstructure:"name"`
	Particles []ParticleSpec `mapstructure:"particles"`
	Ports     []PortSpec     `mapstructure:"ports"`
	Lattice   *LatticeSpec   `mapstructure:"lattice"`
}

// ParticleSpec describes one particle. An empty Label is generated.
type ParticleSpec struct {
	Name     string    `mapstructure:"name"`
	Label    string    `mapstructure:"label"`
	Position []float64 `mapstructure:"position"`
	Ghost    bool      `mapstructure:"ghost"`
}

// PortSpec describes one port. Anchor is the label of a particle declared
// in the same recipe; Orientation defaults to (0, 1, 0).
type PortSpec struct {
	Label       string    `mapstructure:"label"`
	Anchor      string    `mapstructure:"anchor"`
	Orientation []float64 `mapstructure:"orientation"`
	Separation  float64   `mapstructure:"separation"`
}

// LatticeSpec describes a lattice block. Spacing holds one value for the
// cubic kinds and (a, c) for hex. Repeat defaults to (1, 1, 1). Basis names
// the particle placed on every site; empty means one particle per basis
// label named after it.
type LatticeSpec struct {
	Kind    string    `mapstructure:"kind"`
	Spacing []float64 `mapstructure:"spacing"`
	Repeat  []int     `mapstructure:"repeat"`
	Basis   string    `mapstructure:"basis"`
}

// Parse decodes and validates a YAML recipe.
func Parse(data []byte) (*Recipe, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidRecipe)
	}

	var r Recipe
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &r,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err = dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	if err = r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Load reads a whole recipe from rd and parses it.
func Load(rd io.Reader) (*Recipe, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("recipe: read: %w", err)
	}

	return Parse(data)
}

// Validate checks arities, repeat counts, anchor references and the lattice
// kind without building anything.
func (r *Recipe) Validate() error {
	labels := make(map[string]struct{}, len(r.Particles))
	for i, p := range r.Particles {
		if len(p.Position) != 3 {
			return fmt.Errorf("%w: particles[%d]: position needs 3 components, got %d",
				ErrInvalidRecipe, i, len(p.Position))
		}
		if p.Label != "" {
			if _, dup := labels[p.Label]; dup {
				return fmt.Errorf("%w: particles[%d]: duplicate label %q", ErrInvalidRecipe, i, p.Label)
			}
			labels[p.Label] = struct{}{}
		}
	}
	for i, p := range r.Ports {
		if n := len(p.Orientation); n != 0 && n != 3 {
			return fmt.Errorf("%w: ports[%d]: orientation needs 3 components, got %d", ErrInvalidRecipe, i, n)
		}
		if p.Anchor == "" {
			continue
		}
		if _, ok := labels[p.Anchor]; !ok {
			return fmt.Errorf("ports[%d]: %q: %w", i, p.Anchor, ErrUnknownAnchor)
		}
	}
	if r.Lattice != nil {
		return r.Lattice.validate()
	}

	return nil
}

func (l *LatticeSpec) validate() error {
	want := 1
	switch strings.ToLower(l.Kind) {
	case KindSC, KindBCC, KindFCC:
	case KindHex:
		want = 2
	default:
		return fmt.Errorf("lattice: %q: %w", l.Kind, ErrUnknownLattice)
	}
	if len(l.Spacing) != want {
		return fmt.Errorf("%w: lattice %s: spacing needs %d value(s), got %d",
			ErrInvalidRecipe, l.Kind, want, len(l.Spacing))
	}
	if n := len(l.Repeat); n != 0 && n != 3 {
		return fmt.Errorf("%w: lattice: repeat needs 3 counts, got %d", ErrInvalidRecipe, n)
	}
	for _, n := range l.Repeat {
		if n < 1 {
			return fmt.Errorf("%w: lattice: repeat %v: %w", ErrInvalidRecipe, l.Repeat, lattice.ErrBadRepeats)
		}
	}

	return nil
}

// Build validates r and assembles the compound tree.
// MAIN DESCRIPTION:
//   - Root compound named r.Name ("Compound" when empty).
//   - Stage 1: particles, in declaration order.
//   - Stage 2: ports, anchored by particle label.
//   - Stage 3: the lattice, stored under LatticeLabel.
//
// A nil logger discards output.
func (r *Recipe) Build(log *slog.Logger) (*compound.Compound, error) {
	if log == nil {
		log = logging.NewNop()
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	root := compound.NewCompound(r.Name)
	for i, spec := range r.Particles {
		pos, err := vecmath.FromSlice(spec.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: particles[%d]: %w", ErrInvalidRecipe, i, err)
		}
		var opts []compound.NodeOption
		if spec.Ghost {
			opts = append(opts, compound.AsGhost())
		}
		if err = root.Add(compound.NewParticle(spec.Name, pos, opts...), spec.Label); err != nil {
			return nil, fmt.Errorf("particles[%d]: %w", i, err)
		}
		log.Debug("particle added", "name", spec.Name, "label", spec.Label, "position", pos)
	}

	for i, spec := range r.Ports {
		port, err := r.buildPort(root, spec)
		if err != nil {
			return nil, fmt.Errorf("ports[%d]: %w", i, err)
		}
		if err = root.Add(port, spec.Label); err != nil {
			return nil, fmt.Errorf("ports[%d]: %w", i, err)
		}
		log.Debug("port added", "label", spec.Label, "anchor", spec.Anchor, "center", port.Center())
	}

	if r.Lattice != nil {
		lat, err := r.Lattice.populate()
		if err != nil {
			return nil, err
		}
		if err = root.Add(lat, LatticeLabel); err != nil {
			return nil, fmt.Errorf("lattice: %w", err)
		}
		log.Debug("lattice populated", "kind", r.Lattice.Kind, "particles", lat.NParticles(false))
	}

	log.Info("recipe built", "name", root.Name(),
		"particles", root.NParticles(false), "ports", len(root.Ports()))

	return root, nil
}

func (r *Recipe) buildPort(root *compound.Compound, spec PortSpec) (*compound.Port, error) {
	var opts []compound.PortOption
	if spec.Anchor != "" {
		anchor, err := root.FindParticle(spec.Anchor)
		if err != nil {
			return nil, fmt.Errorf("%q: %w: %w", spec.Anchor, ErrUnknownAnchor, err)
		}
		opts = append(opts, compound.WithAnchor(anchor))
	}
	if len(spec.Orientation) > 0 {
		o, err := vecmath.FromSlice(spec.Orientation)
		if err != nil {
			return nil, fmt.Errorf("%w: orientation: %w", ErrInvalidRecipe, err)
		}
		opts = append(opts, compound.WithOrientation(o))
	}
	opts = append(opts, compound.WithSeparation(spec.Separation))

	return compound.NewPort(opts...)
}

func (l *LatticeSpec) populate() (*compound.Compound, error) {
	var (
		lat *lattice.Lattice
		err error
	)
	switch strings.ToLower(l.Kind) {
	case KindSC:
		lat, err = lattice.SC(l.Spacing[0])
	case KindBCC:
		lat, err = lattice.BCC(l.Spacing[0])
	case KindFCC:
		lat, err = lattice.FCC(l.Spacing[0])
	case KindHex:
		lat, err = lattice.HEX3D(l.Spacing[0], l.Spacing[1])
	default:
		err = ErrUnknownLattice
	}
	if err != nil {
		return nil, fmt.Errorf("lattice %s: %w", l.Kind, err)
	}

	var templates map[string]compound.Node
	if l.Basis != "" {
		templates = map[string]compound.Node{l.Basis: compound.NewParticle(l.Basis, vecmath.Vec3{})}
	}
	x, y, z := 1, 1, 1
	if len(l.Repeat) == 3 {
		x, y, z = l.Repeat[0], l.Repeat[1], l.Repeat[2]
	}

	return lat.Populate(templates, x, y, z)
}
