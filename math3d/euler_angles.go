package math3d

import (
	"fmt"

	"github.com/hexwalker/hexapod/utils"
)

// EulerAngles is an orientation expressed as three rotations, in radians:
// yaw about Z, pitch about Y and roll about X.
type EulerAngles struct {
	Yaw   float64 // z
	Pitch float64 // y
	Roll  float64 // x
}

type rotation int

const (
	RotationYaw rotation = iota
	RotationPitch
	RotationRoll
)

func MakeSingularEulerAngle(rot rotation, angle float64) EulerAngles {
	ea := EulerAngles{}

	switch rot {
	case RotationYaw:
		ea.Yaw = angle

	case RotationPitch:
		ea.Pitch = angle

	case RotationRoll:
		ea.Roll = angle

	default:
		panic("invalid rotation")
	}

	return ea
}

// Orientation converts the angles into a single rotation. Yaw is applied
// outermost: R = Rz(yaw) · Ry(pitch) · Rx(roll).
func (ea EulerAngles) Orientation() Orientation {
	return AxisAngle(UnitZ, ea.Yaw).
		Mul(AxisAngle(UnitY, ea.Pitch)).
		Mul(AxisAngle(UnitX, ea.Roll))
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{y=%+.2f° p=%+.2f° r=%+.2f°}", utils.Deg(ea.Yaw), utils.Deg(ea.Pitch), utils.Deg(ea.Roll))
}
