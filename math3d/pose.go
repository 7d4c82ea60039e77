package math3d

import (
	"fmt"
)

// Pose is a position and orientation in some parent space.
type Pose struct {
	Position    Vector3
	Orientation Orientation
}

var (
	IdentityPose = Pose{Orientation: IdentityOrientation}
)

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, o=%s}", p.Position.X, p.Position.Y, p.Position.Z, p.Orientation)
}

// Add composes pp (expressed in the space of p) onto p, returning a pose in
// the parent space of p.
func (p Pose) Add(pp Pose) Pose {
	return Pose{
		Position:    p.Position.Add(p.Orientation.Rotate(pp.Position)),
		Orientation: p.Orientation.Mul(pp.Orientation),
	}
}

// ToWorld returns a matrix to transform a vector in the space of this pose
// into the parent space.
func (p Pose) ToWorld() Matrix44 {
	return MakeMatrix44(p.Position, p.Orientation)
}

// ToLocal returns a matrix to transform a vector in the parent space into the
// space of this pose.
func (p Pose) ToLocal() Matrix44 {
	return p.ToWorld().Inverse()
}

// Finite returns false if any part of the pose is NaN or infinite.
func (p Pose) Finite() bool {
	return p.Position.Finite() && p.Orientation.Finite()
}
