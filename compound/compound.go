// SPDX-License-Identifier: MIT

package compound

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbuild/box"
	"github.com/katalvlaran/lvbuild/vecmath"
)

const defaultCompoundName = "Compound"

// ctx tags for error wrapping.
const (
	ctxAdd         = "Add"
	ctxRemove      = "Remove"
	ctxFind        = "Find"
	ctxBoundingBox = "BoundingBox"
)

// Compound owns an insertion-ordered set of labelled children.
//
// self is the outermost value that embeds this Compound (the *Port for a
// port, the *Compound itself otherwise). Children record self as their
// parent so that Parent() never hides a Port behind its embedded Compound.
type Compound struct {
	name     string
	ghost    bool
	parent   Node
	self     Node
	labels   []string        // insertion order
	children map[string]Node // label -> owned child
}

// NewCompound returns an empty, detached compound. An empty name becomes "Compound".
func NewCompound(name string, opts ...NodeOption) *Compound {
	if name == "" {
		name = defaultCompoundName
	}
	cfg := newNodeConfig(opts...)
	c := &Compound{name: name, ghost: cfg.ghost, children: make(map[string]Node)}
	c.self = c

	return c
}

// node returns the identity under which c is seen by its children.
func (c *Compound) node() Node {
	if c.self != nil {
		return c.self
	}

	return c
}

// Name returns the compound name.
func (c *Compound) Name() string { return c.name }

// Ghost reports whether c is a placeholder container.
func (c *Compound) Ghost() bool { return c.ghost }

// Parent returns the owning compound or nil.
func (c *Compound) Parent() Node { return c.parent }

func (c *Compound) setParent(parent Node) { c.parent = parent }

// Add attaches child under label. An empty label is generated as "name[N]"
// with N the first free index counting from the number of children that
// already carry child's name.
//
// Errors:
//   - ErrSealedPort when c is a Port (or its embedded Compound).
//   - ErrNilNode for a nil child.
//   - ErrAlreadyParented when child has a parent or is an ancestor of c.
//   - ErrDuplicateLabel when label is taken.
//
// Complexity: O(depth) for the cycle check, O(children) for auto-labels.
func (c *Compound) Add(child Node, label string) error {
	if c.sealed() {
		return fmt.Errorf("%s(%q): %w", ctxAdd, label, ErrSealedPort)
	}

	return c.add(child, label)
}

// sealed reports whether c is the embedded Compound of a Port.
func (c *Compound) sealed() bool {
	_, isPort := c.node().(*Port)
	return isPort
}

func (c *Compound) add(child Node, label string) error {
	if isNil(child) {
		return fmt.Errorf("%s(%q): %w", ctxAdd, label, ErrNilNode)
	}
	if child.Parent() != nil {
		return fmt.Errorf("%s(%q): %w", ctxAdd, label, ErrAlreadyParented)
	}
	for n := c.node(); n != nil; n = n.Parent() {
		if n == child {
			return fmt.Errorf("%s(%q): would create a cycle: %w", ctxAdd, label, ErrAlreadyParented)
		}
	}
	if c.children == nil {
		c.children = make(map[string]Node)
	}
	if label == "" {
		label = c.nextLabel(child.Name())
	}
	if _, taken := c.children[label]; taken {
		return fmt.Errorf("%s(%q): %w", ctxAdd, label, ErrDuplicateLabel)
	}

	c.labels = append(c.labels, label)
	c.children[label] = child
	child.setParent(c.node())

	return nil
}

func (c *Compound) nextLabel(name string) string {
	n := 0
	for _, l := range c.labels {
		if c.children[l].Name() == name {
			n++
		}
	}
	for {
		label := fmt.Sprintf("%s[%d]", name, n)
		if _, taken := c.children[label]; !taken {
			return label
		}
		n++
	}
}

// Remove detaches and returns the child stored under label.
//
// Errors:
//   - ErrSealedPort when c is a Port (or its embedded Compound).
//   - ErrLabelNotFound when label is absent.
func (c *Compound) Remove(label string) (Node, error) {
	if c.sealed() {
		return nil, fmt.Errorf("%s(%q): %w", ctxRemove, label, ErrSealedPort)
	}

	return c.remove(label)
}

func (c *Compound) remove(label string) (Node, error) {
	child, ok := c.children[label]
	if !ok {
		return nil, fmt.Errorf("%s(%q): %w", ctxRemove, label, ErrLabelNotFound)
	}
	delete(c.children, label)
	for i, l := range c.labels {
		if l == label {
			c.labels = append(c.labels[:i], c.labels[i+1:]...)
			break
		}
	}
	child.setParent(nil)

	return child, nil
}

// Child returns the direct child stored under label.
func (c *Compound) Child(label string) (Node, bool) {
	child, ok := c.children[label]
	return child, ok
}

// Find resolves a label path from c, e.g. Find("Port[0]", "up", "middle").
//
// Errors:
//   - ErrLabelNotFound naming the first missing segment.
func (c *Compound) Find(path ...string) (Node, error) {
	var cur Node = c.node()
	for i, label := range path {
		var parent *Compound
		switch v := cur.(type) {
		case *Compound:
			parent = v
		case *Port:
			parent = &v.Compound
		default:
			return nil, fmt.Errorf("%s(%s): %q is a leaf: %w",
				ctxFind, strings.Join(path, "/"), strings.Join(path[:i], "/"), ErrLabelNotFound)
		}
		next, ok := parent.children[label]
		if !ok {
			return nil, fmt.Errorf("%s(%s): missing %q: %w",
				ctxFind, strings.Join(path, "/"), label, ErrLabelNotFound)
		}
		cur = next
	}

	return cur, nil
}

// FindParticle is Find restricted to a Particle result.
func (c *Compound) FindParticle(path ...string) (*Particle, error) {
	n, err := c.Find(path...)
	if err != nil {
		return nil, err
	}
	p, ok := n.(*Particle)
	if !ok {
		return nil, fmt.Errorf("%s(%s): %w", ctxFind, strings.Join(path, "/"), ErrNotParticle)
	}

	return p, nil
}

// Labels returns the child labels in insertion order (a copy).
func (c *Compound) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)

	return out
}

// Children returns the direct children in insertion order.
func (c *Compound) Children() []Node {
	out := make([]Node, 0, len(c.labels))
	for _, l := range c.labels {
		out = append(out, c.children[l])
	}

	return out
}

// walk visits every descendant particle pre-order.
func (c *Compound) walk(fn func(*Particle)) {
	for _, l := range c.labels {
		c.children[l].walk(fn)
	}
}

// Particles returns descendant particles pre-order; ghost particles are
// skipped unless includeGhosts is set.
func (c *Compound) Particles(includeGhosts bool) []*Particle {
	var out []*Particle
	c.walk(func(p *Particle) {
		if includeGhosts || !p.ghost {
			out = append(out, p)
		}
	})

	return out
}

// NParticles counts descendant particles, with the same ghost policy as Particles.
func (c *Compound) NParticles(includeGhosts bool) int {
	n := 0
	c.walk(func(p *Particle) {
		if includeGhosts || !p.ghost {
			n++
		}
	})

	return n
}

// XYZ returns the positions of Particles(includeGhosts).
func (c *Compound) XYZ(includeGhosts bool) []vecmath.Vec3 {
	ps := c.Particles(includeGhosts)
	out := make([]vecmath.Vec3, len(ps))
	for i, p := range ps {
		out[i] = p.pos
	}

	return out
}

// Ports returns every Port in the subtree (pre-order), c itself excluded.
// Ports nested inside a Port are not visited.
func (c *Compound) Ports() []*Port {
	var out []*Port
	var visit func(*Compound)
	visit = func(cc *Compound) {
		for _, l := range cc.labels {
			switch v := cc.children[l].(type) {
			case *Port:
				out = append(out, v)
			case *Compound:
				visit(v)
			}
		}
	}
	visit(c)

	return out
}

// AvailablePorts returns the Ports whose Used flag is false.
func (c *Compound) AvailablePorts() []*Port {
	var out []*Port
	for _, p := range c.Ports() {
		if !p.Used {
			out = append(out, p)
		}
	}

	return out
}

// BoundingBox returns the orthorhombic box spanning the non-ghost particles.
//
// Errors:
//   - ErrEmpty when c holds no non-ghost particle.
func (c *Compound) BoundingBox() (*box.Box, error) {
	xyz := c.XYZ(false)
	if len(xyz) == 0 {
		return nil, fmt.Errorf("%s(%s): %w", ctxBoundingBox, c.name, ErrEmpty)
	}
	lo, hi := xyz[0], xyz[0]
	for _, p := range xyz[1:] {
		lo = vecmath.New(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
		hi = vecmath.New(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
	}

	return box.FromMinsMaxs(lo, hi)
}

// String renders "name(n particles, m children)".
func (c *Compound) String() string {
	return fmt.Sprintf("%s(%d particles, %d children)", c.name, c.NParticles(true), len(c.labels))
}
