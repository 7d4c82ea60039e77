package math3d

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}

	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

// FromR3 converts an r3.Vector into a Vector3.
func FromR3(v r3.Vector) Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// R3 returns the vector as an r3.Vector, which does the heavy lifting for
// most of the methods below.
func (v Vector3) R3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Finite returns false if any component is NaN or infinite.
func (v Vector3) Finite() bool {
	for _, f := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// Add adds two vectors, and returns the result.
func (v Vector3) Add(vv Vector3) Vector3 {
	return FromR3(v.R3().Add(vv.R3()))
}

// Subtract returns the vector from vv to v.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return FromR3(v.R3().Sub(vv.R3()))
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return FromR3(v.R3().Mul(s))
}

// Cross returns the cross product v × vv.
func (v Vector3) Cross(vv Vector3) Vector3 {
	return FromR3(v.R3().Cross(vv.R3()))
}

func (v Vector3) Dot(vv Vector3) float64 {
	return v.R3().Dot(vv.R3())
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return v.R3().Norm()
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.R3().Distance(vv.R3())
}

// Unit returns a vector of length one pointing in the same direction. The zero
// vector stays zero.
func (v Vector3) Unit() Vector3 {
	return FromR3(v.R3().Normalize())
}

// MirrorX reflects the vector through the YZ plane, which is how the left side
// of the body relates to the right.
func (v Vector3) MirrorX() Vector3 {
	return Vector3{-v.X, v.Y, v.Z}
}

// MultiplyByMatrix44 transforms the vector as a point (w=1) by a 4x4 matrix.
func (v Vector3) MultiplyByMatrix44(m Matrix44) Vector3 {
	var out [3]float64
	for c := range out {
		out[c] = v.X*m[0][c] + v.Y*m[1][c] + v.Z*m[2][c] + m[3][c]
	}

	return Vector3{out[0], out[1], out[2]}
}
