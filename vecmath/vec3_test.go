// Package vecmath_test contains unit tests for the Vec3 helpers.
package vecmath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvbuild/vecmath"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestUnitVector checks normalization and the degenerate-input sentinels.
func TestUnitVector(t *testing.T) {
	u, err := vecmath.UnitVector(vecmath.New(3, 0, 4)) // |v| = 5
	require.NoError(t, err)
	require.True(t, vecmath.AllClose(vecmath.New(0.6, 0, 0.8), u, tol))
	require.InDelta(t, 1.0, u.Norm(), tol)

	_, err = vecmath.UnitVector(vecmath.Vec3{})
	require.ErrorIs(t, err, vecmath.ErrDegenerateVector)

	_, err = vecmath.UnitVector(vecmath.New(1e-12, 0, 0)) // below Epsilon
	require.ErrorIs(t, err, vecmath.ErrDegenerateVector)

	_, err = vecmath.UnitVector(vecmath.New(math.NaN(), 1, 0))
	require.ErrorIs(t, err, vecmath.ErrNaNInf)
}

// TestAngle covers orthogonal, parallel, antiparallel and degenerate inputs.
func TestAngle(t *testing.T) {
	cases := []struct {
		name string
		a, b vecmath.Vec3
		want float64
	}{
		{"orthogonal", vecmath.XAxis, vecmath.YAxis, math.Pi / 2},
		{"parallel-scaled", vecmath.New(2, 0, 0), vecmath.New(0.5, 0, 0), 0},
		{"antiparallel", vecmath.YAxis, vecmath.YAxis.Neg(), math.Pi},
		{"diagonal", vecmath.YAxis, vecmath.New(1, 1, 0), math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vecmath.Angle(tc.a, tc.b)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)
		})
	}

	_, err := vecmath.Angle(vecmath.Vec3{}, vecmath.XAxis)
	require.ErrorIs(t, err, vecmath.ErrDegenerateVector)
}

// TestCross verifies the right-handed basis identities.
func TestCross(t *testing.T) {
	require.Equal(t, vecmath.ZAxis, vecmath.Cross(vecmath.XAxis, vecmath.YAxis))
	require.Equal(t, vecmath.XAxis, vecmath.Cross(vecmath.YAxis, vecmath.ZAxis))
	require.Equal(t, vecmath.ZAxis.Neg(), vecmath.Cross(vecmath.YAxis, vecmath.XAxis))
	require.Equal(t, vecmath.Vec3{}, vecmath.Cross(vecmath.YAxis, vecmath.YAxis.Scale(-3)))
}

// TestMean checks the centroid helper, including the empty case.
func TestMean(t *testing.T) {
	require.Equal(t, vecmath.Vec3{}, vecmath.Mean(nil))

	got := vecmath.Mean([]vecmath.Vec3{{X: 1}, {Y: 2}, {Z: 3}, {X: -1, Y: -2, Z: -3}})
	require.True(t, vecmath.AllClose(vecmath.Vec3{}, got, tol))
}

// TestFromSlice validates component count and finiteness.
func TestFromSlice(t *testing.T) {
	v, err := vecmath.FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, vecmath.New(1, 2, 3), v)

	_, err = vecmath.FromSlice([]float64{1, 2})
	require.ErrorIs(t, err, vecmath.ErrIndexOutOfBounds)

	_, err = vecmath.FromSlice([]float64{1, math.Inf(1), 3})
	require.ErrorIs(t, err, vecmath.ErrNaNInf)
}

// TestIsClose checks the scaled tolerance |a-b| <= atol + rtol·|b|.
func TestIsClose(t *testing.T) {
	require.True(t, vecmath.IsClose(vecmath.YAxis, vecmath.New(0, 1+5e-6, 0), 1e-5, 1e-8))
	require.True(t, vecmath.IsClose(vecmath.YAxis, vecmath.New(5e-9, 1, 0), 1e-5, 1e-8))
	require.False(t, vecmath.IsClose(vecmath.YAxis, vecmath.New(5e-6, 1, 0), 1e-5, 1e-8))
	require.False(t, vecmath.IsClose(vecmath.YAxis, vecmath.New(0, 1.1, 0), 1e-5, 1e-8))

	// The tolerance follows b only.
	big, small := vecmath.New(1000, 0, 0), vecmath.New(1000.005, 0, 0)
	require.True(t, vecmath.IsClose(big, small, 1e-5, 0))
	require.True(t, vecmath.IsClose(small, big, 1e-5, 0))
	require.False(t, vecmath.IsClose(vecmath.New(0.005, 0, 0), vecmath.Vec3{}, 1e-5, 1e-8))
}
