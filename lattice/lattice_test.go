// Package lattice_test contains unit tests for lattice construction and population.
package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvbuild/compound"
	"github.com/katalvlaran/lvbuild/lattice"
	"github.com/katalvlaran/lvbuild/vecmath"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestSpacing mirrors the accepted/rejected spacings of the original lattice tests.
func TestSpacing(t *testing.T) {
	good := []vecmath.Vec3{
		vecmath.New(1, 1, 1),
		vecmath.New(0.1, 0.1, 0.1),
		vecmath.New(1, 2, 3),
		vecmath.New(1, 0, 0),
		vecmath.New(1, 1, 0),
	}
	for _, s := range good {
		l, err := lattice.New(lattice.WithSpacing(s))
		require.NoError(t, err, "spacing %v", s)
		require.Equal(t, s, l.Spacing())
	}

	bad := []vecmath.Vec3{
		vecmath.New(-1, 1, 1),
		vecmath.New(0, 0, 0),
		vecmath.New(math.NaN(), 1, 1),
	}
	for _, s := range bad {
		_, err := lattice.New(lattice.WithSpacing(s))
		require.ErrorIs(t, err, lattice.ErrBadSpacing, "spacing %v", s)
	}

	_, err := lattice.New()
	require.ErrorIs(t, err, lattice.ErrBadSpacing)
}

// TestVectors covers valid, degenerate and over-defined inputs.
func TestVectors(t *testing.T) {
	spacing := lattice.WithSpacing(vecmath.New(1, 1, 1))

	for _, v := range []*vecmath.Matrix3{
		vecmath.Identity3(),
		vecmath.FromRows(vecmath.New(1, 0, 0), vecmath.New(-0.5, 0.85, 0), vecmath.New(0, 0, 1)),
	} {
		l, err := lattice.New(spacing, lattice.WithVectors(v))
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.InDelta(t, 1.0, l.Vectors().Row(i).Norm(), tol)
		}
	}

	for _, v := range []*vecmath.Matrix3{
		vecmath.FromRows(vecmath.New(1, 0, 0), vecmath.New(0, 1, 0), vecmath.New(0, 1, 0)),
		vecmath.FromRows(vecmath.New(1, 2, 3), vecmath.New(3, 2, 1), vecmath.New(2, 1, 3)),
		vecmath.FromRows(vecmath.New(1, 0, 0), vecmath.Vec3{}, vecmath.New(0, 0, 1)),
	} {
		_, err := lattice.New(spacing, lattice.WithVectors(v))
		require.ErrorIs(t, err, lattice.ErrBadVectors)
	}

	_, err := lattice.New(spacing,
		lattice.WithVectors(vecmath.Identity3()),
		lattice.WithAngles(vecmath.New(90, 90, 90)))
	require.ErrorIs(t, err, lattice.ErrOverdefined)

	_, err = lattice.New(spacing, lattice.WithAngles(vecmath.New(30, 30, 120)))
	require.ErrorIs(t, err, lattice.ErrBadVectors)
}

// TestBasisValidation rejects empty, duplicate and out-of-cell sites.
func TestBasisValidation(t *testing.T) {
	spacing := lattice.WithSpacing(vecmath.New(1, 1, 1))

	l, err := lattice.New(spacing)
	require.NoError(t, err)
	require.Equal(t, lattice.DefaultBasisLabel, l.Basis()[0].Label)

	for _, opts := range [][]lattice.Option{
		{lattice.WithBasis("")},
		{lattice.WithBasis("A")},
		{lattice.WithBasis("A", vecmath.Vec3{}), lattice.WithBasis("A", vecmath.New(0.5, 0, 0))},
		{lattice.WithBasis("A", vecmath.New(1, 0, 0))},
		{lattice.WithBasis("A", vecmath.New(-0.1, 0, 0))},
	} {
		_, err = lattice.New(append([]lattice.Option{spacing}, opts...)...)
		require.ErrorIs(t, err, lattice.ErrBadBasis)
	}
}

// TestRecipeCounts checks n_basis·x·y·z placements for the cubic recipes.
func TestRecipeCounts(t *testing.T) {
	cases := []struct {
		name  string
		build func(float64) (*lattice.Lattice, error)
		sites int
	}{
		{"SC", lattice.SC, 1},
		{"BCC", lattice.BCC, 2},
		{"FCC", lattice.FCC, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := tc.build(0.5)
			require.NoError(t, err)

			out, err := l.Populate(nil, 2, 3, 1)
			require.NoError(t, err)
			require.Equal(t, lattice.Name, out.Name())
			require.Equal(t, tc.sites*2*3*1, out.NParticles(true))
		})
	}

	_, err := lattice.SC(0)
	require.ErrorIs(t, err, lattice.ErrBadSpacing)
	_, err = lattice.HEX3D(1, -1)
	require.ErrorIs(t, err, lattice.ErrBadSpacing)
}

// TestPopulatePositions checks the cartesian placement and ordering of BCC.
func TestPopulatePositions(t *testing.T) {
	l, err := lattice.BCC(2)
	require.NoError(t, err)

	out, err := l.Populate(nil, 2, 1, 1)
	require.NoError(t, err)

	xyz := out.XYZ(true)
	require.Len(t, xyz, 4)
	require.Equal(t, vecmath.New(0, 0, 0), xyz[0])
	require.Equal(t, vecmath.New(2, 0, 0), xyz[1])
	require.Equal(t, vecmath.New(1, 1, 1), xyz[2])
	require.Equal(t, vecmath.New(3, 1, 1), xyz[3])
	require.Equal(t, []string{"A[0]", "A[1]", "B[0]", "B[1]"}, out.Labels())
}

// TestPopulateCompounds places clones of a template compound, single and per label.
func TestPopulateCompounds(t *testing.T) {
	dimer := compound.NewCompound("dimer")
	require.NoError(t, dimer.Add(compound.NewParticle("X", vecmath.New(-0.1, 0, 0)), ""))
	require.NoError(t, dimer.Add(compound.NewParticle("X", vecmath.New(0.1, 0, 0)), ""))

	l, err := lattice.BCC(1)
	require.NoError(t, err)

	out, err := l.Populate(map[string]compound.Node{"anything": dimer}, 1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, out.NParticles(true))
	require.Equal(t, []string{"dimer[0]", "dimer[1]"}, out.Labels())

	second, ok := out.Child("dimer[1]")
	require.True(t, ok)
	require.True(t, vecmath.AllClose(vecmath.New(0.5, 0.5, 0.5), second.Center(), tol))
	require.True(t, vecmath.AllClose(vecmath.Vec3{}, dimer.Center(), tol)) // template untouched
	require.Nil(t, dimer.Parent())

	probe := compound.NewParticle("P", vecmath.Vec3{})
	out, err = l.Populate(map[string]compound.Node{"A": dimer, "B": probe}, 1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 3, out.NParticles(true))

	_, err = l.Populate(map[string]compound.Node{"A": dimer, "Z": probe}, 1, 1, 1)
	require.ErrorIs(t, err, lattice.ErrMissingBasis)

	_, err = l.Populate(nil, 0, 1, 1)
	require.ErrorIs(t, err, lattice.ErrBadRepeats)
}

// TestHexagonal checks the 120° in-plane geometry and the spanned box.
func TestHexagonal(t *testing.T) {
	l, err := lattice.HEX3D(1, 2)
	require.NoError(t, err)
	require.InDelta(t, 120.0, l.Angles().Z, 1e-9)

	p := l.Cartesian(vecmath.New(0, 1, 1))
	require.True(t, vecmath.AllClose(vecmath.New(-0.5, math.Sqrt(3)/2, 2), p, tol))

	b, err := l.Box(2, 2, 1)
	require.NoError(t, err)
	require.True(t, vecmath.AllClose(vecmath.New(2, 2, 2), b.Lengths(), 1e-9))
	require.InDelta(t, 120.0, b.Angles().Z, 1e-6)

	_, err = l.Box(0, 1, 1)
	require.ErrorIs(t, err, lattice.ErrBadRepeats)
}
