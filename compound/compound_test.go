package compound_test

import (
	"testing"

	"github.com/katalvlaran/lvbuild/compound"
	"github.com/katalvlaran/lvbuild/vecmath"
	"github.com/stretchr/testify/require"
)

// TestAddAutoLabels verifies generated "name[N]" labels and insertion order.
func TestAddAutoLabels(t *testing.T) {
	m, c := methane(t)

	require.Equal(t, []string{"C", "H[0]", "H[1]", "H[2]", "H[3]"}, m.Labels())
	require.Equal(t, compound.Node(m), c.Parent())
	require.Equal(t, 5, m.NParticles(false))
	require.Len(t, m.Children(), 5)
	require.Equal(t, "CH4(5 particles, 5 children)", m.String())
}

// TestAddRejections covers nil, duplicate, re-parenting and cycles.
func TestAddRejections(t *testing.T) {
	m, c := methane(t)

	require.ErrorIs(t, m.Add(nil, "x"), compound.ErrNilNode)
	var nilParticle *compound.Particle
	require.ErrorIs(t, m.Add(nilParticle, "x"), compound.ErrNilNode)

	require.ErrorIs(t, m.Add(compound.NewParticle("C", vecmath.Vec3{}), "C"), compound.ErrDuplicateLabel)

	other := compound.NewCompound("other")
	require.ErrorIs(t, other.Add(c, "C"), compound.ErrAlreadyParented)

	inner := compound.NewCompound("inner")
	require.NoError(t, m.Add(inner, "inner"))
	require.ErrorIs(t, inner.Add(m, "outer"), compound.ErrAlreadyParented)
	require.ErrorIs(t, m.Add(m, "self"), compound.ErrAlreadyParented)
}

// TestRemoveDetaches checks Remove clears the parent so the node can move.
func TestRemoveDetaches(t *testing.T) {
	m, c := methane(t)

	got, err := m.Remove("C")
	require.NoError(t, err)
	require.Same(t, c, got)
	require.Nil(t, c.Parent())
	require.Equal(t, []string{"H[0]", "H[1]", "H[2]", "H[3]"}, m.Labels())

	other := compound.NewCompound("other")
	require.NoError(t, other.Add(c, ""))
	require.Equal(t, []string{"C[0]"}, other.Labels())

	_, err = m.Remove("C")
	require.ErrorIs(t, err, compound.ErrLabelNotFound)
}

// TestFind resolves nested paths through plain compounds and ports.
func TestFind(t *testing.T) {
	m, c := methane(t)
	p, err := compound.NewPort(compound.WithAnchor(c))
	require.NoError(t, err)
	require.NoError(t, m.Add(p, "port"))

	n, err := m.Find("port", "up", "top")
	require.NoError(t, err)
	require.Equal(t, "G", n.Name())
	require.True(t, n.Ghost())
	require.Equal(t, compound.Node(m), compound.Root(n))

	_, err = m.FindParticle("port", "up")
	require.ErrorIs(t, err, compound.ErrNotParticle)

	_, err = m.Find("port", "sideways")
	require.ErrorIs(t, err, compound.ErrLabelNotFound)

	_, err = m.Find("C", "deeper")
	require.ErrorIs(t, err, compound.ErrLabelNotFound)

	carbon, err := m.FindParticle("C")
	require.NoError(t, err)
	require.Same(t, c, carbon)
	require.Equal(t, compound.Node(m), p.Parent())
}

// TestParticlesGhostPolicy checks ghost filtering and Ports bookkeeping.
func TestParticlesGhostPolicy(t *testing.T) {
	m, c := methane(t)
	p, err := compound.NewPort(compound.WithAnchor(c))
	require.NoError(t, err)
	require.NoError(t, m.Add(p, "up"))

	require.Equal(t, 5, m.NParticles(false))
	require.Equal(t, 13, m.NParticles(true))
	require.Len(t, m.XYZ(true), 13)
	require.Equal(t, "C", m.Particles(false)[0].Name())

	require.Equal(t, []*compound.Port{p}, m.Ports())
	require.Len(t, m.AvailablePorts(), 1)
	p.Used = true
	require.Empty(t, m.AvailablePorts())
}

// TestBoundingBox spans non-ghost particles only.
func TestBoundingBox(t *testing.T) {
	m, c := methane(t)
	p, err := compound.NewPort(compound.WithAnchor(c), compound.WithSeparation(5))
	require.NoError(t, err)
	require.NoError(t, m.Add(p, "far"))

	b, err := m.BoundingBox()
	require.NoError(t, err)
	requireVecClose(t, vecmath.New(-0.1, -0.1, -0.1), b.Mins())
	requireVecClose(t, vecmath.New(0.2, 0.2, 0.2), b.Lengths())

	_, err = compound.NewCompound("").BoundingBox()
	require.ErrorIs(t, err, compound.ErrEmpty)
	require.InDelta(t, 0.2*0.2*0.2, b.Volume(), tol)
}

// TestDefaultNames covers the empty-name fallbacks.
func TestDefaultNames(t *testing.T) {
	require.Equal(t, "Compound", compound.NewCompound("").Name())
	require.Equal(t, "Particle", compound.NewParticle("", vecmath.Vec3{}).Name())
	require.True(t, compound.NewCompound("g", compound.AsGhost()).Ghost())
}
