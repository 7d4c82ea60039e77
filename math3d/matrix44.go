package math3d

import (
	"fmt"
	"strings"
)

// Matrix44 is a rigid transform in homogeneous coordinates. Vectors are rows,
// so they're multiplied on the left, and the translation lives in the fourth
// row.
type Matrix44 [4][4]float64

var (
	IdentityMatrix44 = Matrix44{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
)

// MakeMatrix44 returns the matrix which rotates by o, then translates by v.
func MakeMatrix44(v Vector3, o Orientation) Matrix44 {
	m := IdentityMatrix44
	m.SetRotation(o)
	m.SetTranslation(v)
	return m
}

func (m Matrix44) String() string {
	rows := make([]string, 4)
	for r := range m {
		rows[r] = fmt.Sprintf("%+.4f %+.4f %+.4f %+.4f", m[r][0], m[r][1], m[r][2], m[r][3])
	}

	return "&M44{" + strings.Join(rows, " | ") + "}"
}

// Elements returns the matrix as a plain 4x4 array. This is pretty much only
// useful for dumping its contents.
func (m Matrix44) Elements() [4][4]float64 {
	return m
}

// Inverse returns the inverse of a rigid transform: the transposed rotation,
// and the translation un-rotated and negated. This is not valid for matrices
// which scale or shear, but we never build those.
func (m Matrix44) Inverse() Matrix44 {
	r := IdentityMatrix44
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}

	t := Vector3{m[3][0], m[3][1], m[3][2]}
	r.SetTranslation(t.MultiplyByMatrix44(r).MultiplyByScalar(-1))
	return r
}

// MultiplyMatrices multiplies two 4x4 matrices together. Since vectors are
// rows, the result applies a first and then b.
func MultiplyMatrices(a Matrix44, b Matrix44) Matrix44 {
	var out Matrix44
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for k := 0; k < 4; k++ {
				out[r][c] += a[r][k] * b[k][c]
			}
		}
	}

	return out
}

// SetRotation overwrites the upper 3x3 of the matrix with the given rotation.
// Each row is the image of one basis vector.
func (m *Matrix44) SetRotation(o Orientation) {
	for r, basis := range [3]Vector3{UnitX, UnitY, UnitZ} {
		v := o.Rotate(basis)
		m[r] = [4]float64{v.X, v.Y, v.Z, 0}
	}

	m[3][3] = 1
}

// SetTranslation sets the translation of a matrix by overwriting the fourth
// row. Other cells are left alone.
func (m *Matrix44) SetTranslation(v Vector3) {
	m[3][0], m[3][1], m[3][2] = v.X, v.Y, v.Z
}
