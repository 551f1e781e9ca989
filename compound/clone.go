// SPDX-License-Identifier: MIT
// File: clone.go
// Role: structure-preserving deep copy with non-owning reference remap.
// Determinism:
//   - Phase 1 copies pre-order in insertion order; phase 2 remaps ports in
//     the order phase 1 met them, so external anchors are cloned in a fixed order.
// AI-HINT (file):
//   - cloneMap is keyed by node identity (pointer). It is both the remap
//     table and the visited set: a node already in it is never copied twice.

package compound

import "fmt"

const ctxClone = "Clone"

// cloneMap records original -> copy for one Clone call.
type cloneMap struct {
	copies map[Node]Node
	ports  []*Port // originals, in discovery order
}

func newCloneMap() *cloneMap {
	return &cloneMap{copies: make(map[Node]Node)}
}

// Clone returns an independent deep copy of n.
// MAIN DESCRIPTION:
//   - Copies names, ghost flags, positions, child labels and their order.
//   - Port.Anchor is remapped: to the copy of the anchor when it lies inside
//     the cloned subtree, otherwise to a fresh copy of the external anchor.
//     The result never references a node of the source tree.
//
// Implementation:
//   - Stage 1: structural copy, recording every original -> copy pair.
//   - Stage 2: remap each Port anchor through the map; unmapped anchors are
//     cloned once and recorded, so ports sharing an anchor share its copy.
//
// Behavior highlights:
//   - The copy is detached (Parent() == nil); Used flags are preserved.
//   - On error no partial copy is returned.
//
// Errors:
//   - ErrMalformedTree for nil children or a node reachable twice.
//   - ErrNilNode when n is nil.
//
// Complexity:
//   - Time O(n + a), Space O(n + a) for n subtree nodes and a external anchors.
func Clone(n Node) (Node, error) {
	if isNil(n) {
		return nil, fmt.Errorf("%s: %w", ctxClone, ErrNilNode)
	}
	cm := newCloneMap()
	out, err := cm.copyTree(n)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", ctxClone, n.Name(), err)
	}
	cm.remap()

	return out, nil
}

// CloneCompound clones a plain Compound. Ports must use ClonePort.
func CloneCompound(c *Compound) (*Compound, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", ctxClone, ErrNilNode)
	}
	if _, isPort := c.node().(*Port); isPort {
		return nil, fmt.Errorf("%s(%s): embedded in a Port, use ClonePort: %w", ctxClone, c.name, ErrMalformedTree)
	}
	n, err := Clone(c)
	if err != nil {
		return nil, err
	}

	return n.(*Compound), nil
}

// ClonePort clones a Port, remapping its Anchor.
func ClonePort(p *Port) (*Port, error) {
	if p == nil {
		return nil, fmt.Errorf("%s: %w", ctxClone, ErrNilNode)
	}
	n, err := Clone(p)
	if err != nil {
		return nil, err
	}

	return n.(*Port), nil
}

// CloneParticle returns a detached copy of p.
func CloneParticle(p *Particle) (*Particle, error) {
	if p == nil {
		return nil, fmt.Errorf("%s: %w", ctxClone, ErrNilNode)
	}
	n, err := Clone(p)
	if err != nil {
		return nil, err
	}

	return n.(*Particle), nil
}

// copyTree is phase 1.
func (cm *cloneMap) copyTree(n Node) (Node, error) {
	if isNil(n) {
		return nil, ErrMalformedTree
	}
	if _, seen := cm.copies[n]; seen {
		return nil, fmt.Errorf("%s reached twice: %w", n.Name(), ErrMalformedTree)
	}

	switch v := n.(type) {
	case *Particle:
		cp := &Particle{name: v.name, pos: v.pos, ghost: v.ghost}
		cm.copies[v] = cp
		return cp, nil

	case *Port:
		cp := &Port{Used: v.Used}
		cp.self = cp
		cm.copies[v] = cp
		cm.ports = append(cm.ports, v)
		if err := cm.copyChildren(&v.Compound, &cp.Compound); err != nil {
			return nil, err
		}
		return cp, nil

	case *Compound:
		cp := &Compound{}
		cp.self = cp
		cm.copies[v] = cp
		if err := cm.copyChildren(v, cp); err != nil {
			return nil, err
		}
		return cp, nil
	}

	return nil, fmt.Errorf("unknown node type %T: %w", n, ErrMalformedTree)
}

func (cm *cloneMap) copyChildren(src, dst *Compound) error {
	dst.name = src.name
	dst.ghost = src.ghost
	dst.labels = make([]string, 0, len(src.labels))
	dst.children = make(map[string]Node, len(src.labels))
	for _, label := range src.labels {
		child, err := cm.copyTree(src.children[label])
		if err != nil {
			return fmt.Errorf("%s/%s: %w", src.name, label, err)
		}
		dst.labels = append(dst.labels, label)
		dst.children[label] = child
		child.setParent(dst.node())
	}

	return nil
}

// remap is phase 2.
func (cm *cloneMap) remap() {
	for _, orig := range cm.ports {
		cp := cm.copies[orig].(*Port)
		if orig.Anchor == nil {
			continue
		}
		if mapped, ok := cm.copies[orig.Anchor]; ok {
			cp.Anchor = mapped.(*Particle)
			continue
		}
		// External anchor: clone it alone; it stays detached.
		fresh := &Particle{name: orig.Anchor.name, pos: orig.Anchor.pos, ghost: orig.Anchor.ghost}
		cm.copies[orig.Anchor] = fresh
		cp.Anchor = fresh
	}
}
