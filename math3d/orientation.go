package math3d

import (
	"fmt"
	"math"

	"github.com/hexwalker/hexapod/utils"
	"gonum.org/v1/gonum/num/quat"
)

// Below this, the vector part of a quaternion is too short to extract a
// meaningful rotation axis from.
const axisEpsilon = 1e-9

// Orientation is a rotation in 3d space, stored as a unit quaternion.
type Orientation struct {
	q quat.Number
}

var (
	IdentityOrientation = Orientation{quat.Number{Real: 1}}
)

// MakeOrientation wraps a quaternion, scaling it to unit length. The zero
// quaternion has no meaningful rotation, so is treated as the identity.
func MakeOrientation(q quat.Number) Orientation {
	n := quat.Abs(q)
	if n == 0 {
		return IdentityOrientation
	}

	return Orientation{quat.Scale(1/n, q)}
}

// AxisAngle returns the rotation of theta radians about the given axis. The
// axis need not be normalised, but its sign matters: a rotation of theta about
// (0,0,-1) is the same as one of -theta about (0,0,1).
func AxisAngle(axis Vector3, theta float64) Orientation {
	u := axis.Unit()
	if u.Zero() {
		return IdentityOrientation
	}

	s := math.Sin(theta / 2)
	return Orientation{quat.Number{
		Real: math.Cos(theta / 2),
		Imag: u.X * s,
		Jmag: u.Y * s,
		Kmag: u.Z * s,
	}}
}

func (o Orientation) String() string {
	axis, ok := o.Axis()
	if !ok {
		return "&Orient{identity}"
	}

	return fmt.Sprintf("&Orient{%+.2f° about %s}", utils.Deg(o.Angle()), axis)
}

// Quaternion returns the underlying unit quaternion.
func (o Orientation) Quaternion() quat.Number {
	return o.q
}

// Mul composes two rotations. The result applies oo first, then o, so a chain
// of frames is built up left to right, parent first.
func (o Orientation) Mul(oo Orientation) Orientation {
	return Orientation{quat.Mul(o.q, oo.q)}
}

// Conjugate returns the inverse rotation.
func (o Orientation) Conjugate() Orientation {
	return Orientation{quat.Conj(o.q)}
}

// Rotate applies the rotation to a vector.
func (o Orientation) Rotate(v Vector3) Vector3 {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(o.q, p), quat.Conj(o.q))
	return Vector3{r.Imag, r.Jmag, r.Kmag}
}

// Angle returns the magnitude of the rotation, in radians, in [0, 2π].
func (o Orientation) Angle() float64 {
	v := math.Sqrt(o.q.Imag*o.q.Imag + o.q.Jmag*o.q.Jmag + o.q.Kmag*o.q.Kmag)
	return 2 * math.Atan2(v, o.q.Real)
}

// Axis returns the unit axis of the rotation. Rotations very close to the
// identity don't have a well-defined axis, so ok is false for those and the
// caller must use an axis it already knows.
func (o Orientation) Axis() (axis Vector3, ok bool) {
	v := Vector3{o.q.Imag, o.q.Jmag, o.q.Kmag}
	n := v.Magnitude()
	if n < axisEpsilon {
		return ZeroVector3, false
	}

	return v.MultiplyByScalar(1 / n), true
}

// Finite returns false if any component of the quaternion is NaN or infinite.
func (o Orientation) Finite() bool {
	return !quat.IsNaN(o.q) && !quat.IsInf(o.q)
}

// AlmostEqual returns true if the two orientations describe the same rotation,
// to within tol. q and -q are the same rotation.
func (o Orientation) AlmostEqual(oo Orientation, tol float64) bool {
	d1 := quat.Abs(quat.Sub(o.q, oo.q))
	d2 := quat.Abs(quat.Add(o.q, oo.q))
	return math.Min(d1, d2) <= tol
}
