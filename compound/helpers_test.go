// SPDX-License-Identifier: MIT
// Package compound_test contains fixtures and assertion helpers shared by the
// compound tests.

package compound_test

import (
	"testing"

	"github.com/katalvlaran/lvbuild/compound"
	"github.com/katalvlaran/lvbuild/vecmath"
	"github.com/stretchr/testify/require"
)

// Tolerance used for every geometric comparison in this package.
const tol = 1e-6

// requireVecClose fails unless got is within tol of want component-wise.
func requireVecClose(t *testing.T, want, got vecmath.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	require.Truef(t, vecmath.AllClose(want, got, tol), "want %v, got %v %v", want, got, msgAndArgs)
}

// requireParallel fails unless a and b point the same way.
func requireParallel(t *testing.T, a, b vecmath.Vec3) {
	t.Helper()
	ua, err := vecmath.UnitVector(a)
	require.NoError(t, err)
	ub, err := vecmath.UnitVector(b)
	require.NoError(t, err)
	requireVecClose(t, ua, ub)
}

// methane builds a small CH4-like fixture: one carbon and four hydrogens.
func methane(t *testing.T) (*compound.Compound, *compound.Particle) {
	t.Helper()
	m := compound.NewCompound("CH4")
	c := compound.NewParticle("C", vecmath.Vec3{})
	require.NoError(t, m.Add(c, "C"))
	for _, pos := range []vecmath.Vec3{
		vecmath.New(0.1, 0.1, 0.1),
		vecmath.New(-0.1, -0.1, 0.1),
		vecmath.New(-0.1, 0.1, -0.1),
		vecmath.New(0.1, -0.1, -0.1),
	} {
		require.NoError(t, m.Add(compound.NewParticle("H", pos), ""))
	}

	return m, c
}
