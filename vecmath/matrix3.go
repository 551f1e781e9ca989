// SPDX-License-Identifier: MIT

// Package vecmath - Matrix3 storage (row-major) & safe accessors.
//
// Purpose:
//   - Fixed 3×3 row-major buffer with the explicit index formula i*3 + j.
//   - At/Set return errors instead of panicking on bad indices.
//   - Fixed loop orders everywhere so results are bit-for-bit reproducible.
//
// Complexity quicksheet:
//   - At/Set/Apply: O(1); Mul: 27 multiply-adds; Det: 9 multiply-adds.

package vecmath

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

const dim = 3

// matrixErrorf attaches "Matrix3.<method>(row,col)" context to a sentinel.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix3.%s(%d,%d): %w", method, row, col, err)
}

// Matrix3 is a dense 3×3 matrix stored row-major (offset = i*3 + j).
// The zero value is the zero matrix.
type Matrix3 struct {
	data [dim * dim]float64
}

var _ fmt.Stringer = (*Matrix3)(nil)

// Identity3 returns the 3×3 identity.
func Identity3() *Matrix3 {
	m := &Matrix3{}
	for i := 0; i < dim; i++ {
		m.data[i*dim+i] = 1
	}

	return m
}

// FromRows builds a matrix whose rows are r0, r1, r2.
// Box and lattice vectors are stored this way: one vector per row.
func FromRows(r0, r1, r2 Vec3) *Matrix3 {
	return &Matrix3{data: [dim * dim]float64{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}}
}

// indexOf validates (row, col) and returns the flat offset.
func (m *Matrix3) indexOf(row, col int) (int, error) {
	if row < 0 || row >= dim || col < 0 || col >= dim {
		return 0, ErrIndexOutOfBounds
	}

	return row*dim + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrIndexOutOfBounds when row or col is outside [0,3).
func (m *Matrix3) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Non-finite values are rejected.
//
// Errors:
//   - ErrIndexOutOfBounds for bad indices; ErrNaNInf for NaN/±Inf.
func (m *Matrix3) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return matrixErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a vector; an index outside [0,3) yields the zero vector.
func (m *Matrix3) Row(i int) Vec3 {
	if i < 0 || i >= dim {
		return Vec3{}
	}
	base := i * dim

	return Vec3{m.data[base], m.data[base+1], m.data[base+2]}
}

// Apply returns M·v.
func (m *Matrix3) Apply(v Vec3) Vec3 {
	d := &m.data
	return Vec3{
		X: d[0]*v.X + d[1]*v.Y + d[2]*v.Z,
		Y: d[3]*v.X + d[4]*v.Y + d[5]*v.Z,
		Z: d[6]*v.X + d[7]*v.Y + d[8]*v.Z,
	}
}

// Mul returns the product m × o as a new matrix.
// Loop order i→k→j keeps the inner loop on contiguous rows of o.
func (m *Matrix3) Mul(o *Matrix3) *Matrix3 {
	out := &Matrix3{}
	var i, j, k int
	var aik float64
	for i = 0; i < dim; i++ {
		for k = 0; k < dim; k++ {
			aik = m.data[i*dim+k]
			for j = 0; j < dim; j++ {
				out.data[i*dim+j] += aik * o.data[k*dim+j]
			}
		}
	}

	return out
}

// Transpose returns mᵀ.
func (m *Matrix3) Transpose() *Matrix3 {
	out := &Matrix3{}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.data[j*dim+i] = m.data[i*dim+j]
		}
	}

	return out
}

// Det returns the determinant. For a matrix whose rows are basis vectors it
// is the signed volume of the spanned parallelepiped: positive for a
// right-handed basis, negative for a left-handed one, ~0 when co-planar.
func (m *Matrix3) Det() float64 {
	return Cross(m.Row(0), m.Row(1)).Dot(m.Row(2))
}

// Clone returns an independent copy.
func (m *Matrix3) Clone() *Matrix3 {
	cp := *m
	return &cp
}

// String renders the rows on separate lines for diagnostics.
func (m *Matrix3) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < dim; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < dim; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[i*dim+j]))
			if j+1 < dim {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
