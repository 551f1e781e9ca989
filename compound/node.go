// SPDX-License-Identifier: MIT

package compound

import "github.com/katalvlaran/lvbuild/vecmath"

// Node is the tagged variant Particle | Compound | Port.
//
// The unexported methods keep the set closed: only this package's types
// implement Node, so traversal and cloning can switch on the concrete type.
type Node interface {
	// Name is the node's kind-like name ("C", "Port", "subport", ...);
	// the label under which it is stored lives in the parent.
	Name() string
	// Ghost reports whether the node is a placeholder not meant for rendering.
	Ghost() bool
	// Parent returns the owning node, or nil for a detached root.
	Parent() Node

	// Center is the centroid of every particle in the subtree, ghosts included.
	Center() vecmath.Vec3
	// Translate adds delta to every particle position in the subtree.
	Translate(delta vecmath.Vec3)
	// TranslateTo moves the subtree so that Center() equals point.
	TranslateTo(point vecmath.Vec3)
	// Rotate turns every particle about axis through the global origin.
	Rotate(theta float64, axis vecmath.Vec3) error

	setParent(parent Node)
	walk(fn func(*Particle))
}

// Compile-time assertions.
var (
	_ Node = (*Particle)(nil)
	_ Node = (*Compound)(nil)
	_ Node = (*Port)(nil)
)

// NodeOption configures a Particle or Compound at construction.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	ghost bool
}

// AsGhost marks the node as a ghost (placeholder) point or container.
func AsGhost() NodeOption {
	return func(c *nodeConfig) { c.ghost = true }
}

func newNodeConfig(opts ...NodeOption) nodeConfig {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Particle:
		return v == nil
	case *Compound:
		return v == nil
	case *Port:
		return v == nil
	}

	return false
}

// Root walks Parent links up to the detached top of n's tree.
func Root(n Node) Node {
	for n != nil && n.Parent() != nil {
		n = n.Parent()
	}

	return n
}
