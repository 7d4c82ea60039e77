package legs

import (
	"math"

	"github.com/hexwalker/hexapod"
	"github.com/hexwalker/hexapod/math3d"
)

// Every leg has a coxa (yaw), femur (pitch) and tibia (pitch).
const segmentCount = 3

// The femur is mounted 30.1mm off-center along its 55.4mm length, so it rests
// tilted by this much (about 33.06°).
var femurElevation = math.Asin(30.1 / 55.4)

// JointGeometry is the fixed shape of one joint: the axis it rotates around,
// the offset (in mm) from its parent, and the rotation between the parent frame
// and the joint's zero position.
type JointGeometry struct {
	Name         string
	Axis         math3d.Vector3
	Displacement math3d.Vector3
	PreRotation  math3d.Orientation
}

// Geometry is the ordered joints of one leg, root to tip.
type Geometry [segmentCount]JointGeometry

func yaw(a float64) math3d.Orientation {
	return math3d.MakeSingularEulerAngle(math3d.RotationYaw, a).Orientation()
}

func pitch(a float64) math3d.Orientation {
	return math3d.MakeSingularEulerAngle(math3d.RotationPitch, a).Orientation()
}

var RightGeometry = Geometry{
	{
		Name:         "coxa",
		Axis:         math3d.Vector3{X: 0, Y: 0, Z: 1},
		Displacement: math3d.Vector3{X: 13.3, Y: 14.9, Z: 0},
		PreRotation:  yaw(-math.Pi / 2),
	},
	{
		Name:         "femur",
		Axis:         math3d.Vector3{X: 0, Y: 1, Z: 0},
		Displacement: math3d.Vector3{X: 0, Y: 55.4, Z: 0},
		PreRotation:  pitch(femurElevation),
	},
	{
		Name:         "tibia",
		Axis:         math3d.Vector3{X: 0, Y: 1, Z: 0},
		Displacement: math3d.Vector3{X: 0, Y: 90.0, Z: 0},
		PreRotation:  pitch(-(math.Pi/2 + femurElevation)),
	},
}

// LeftGeometry is RightGeometry reflected through the YZ plane: lateral offsets,
// axes and fixed rotations all change sign.
var LeftGeometry = Geometry{
	{
		Name:         "coxa",
		Axis:         math3d.Vector3{X: 0, Y: 0, Z: -1},
		Displacement: math3d.Vector3{X: -13.3, Y: 14.9, Z: 0},
		PreRotation:  yaw(math.Pi / 2),
	},
	{
		Name:         "femur",
		Axis:         math3d.Vector3{X: 0, Y: -1, Z: 0},
		Displacement: math3d.Vector3{X: 0, Y: 55.4, Z: 0},
		PreRotation:  pitch(-femurElevation),
	},
	{
		Name:         "tibia",
		Axis:         math3d.Vector3{X: 0, Y: -1, Z: 0},
		Displacement: math3d.Vector3{X: 0, Y: 90.0, Z: 0},
		PreRotation:  pitch(math.Pi/2 + femurElevation),
	},
}

// GeometryFor returns the joint table for legs on the given side.
func GeometryFor(side hexapod.Side) Geometry {
	if side == hexapod.Left {
		return LeftGeometry
	}

	return RightGeometry
}
