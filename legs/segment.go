package legs

import (
	"fmt"

	"github.com/hexwalker/hexapod/math3d"
)

// rootIndex is the parent of the first segment in a leg: the leg's attachment
// point on the body.
const rootIndex = -1

// Segment is one joint of a leg. Segments live in their leg's slice, and refer
// to their parent by index into it.
type Segment struct {
	JointGeometry

	parent int
	angle  float64

	// Rotation by angle about Axis. Recomputed by SetAngle.
	orientation math3d.Orientation
}

func makeSegment(g JointGeometry, parent int) Segment {
	s := Segment{
		JointGeometry: g,
		parent:        parent,
	}

	s.SetAngle(0)
	return s
}

func (s Segment) String() string {
	return fmt.Sprintf("&Seg{%s: %+.4f rad}", s.Name, s.angle)
}

// Parent returns the index of the previous segment in the leg, or -1 if this
// segment is attached directly to the body.
func (s *Segment) Parent() int {
	return s.parent
}

// Angle returns the current joint angle, in radians.
func (s *Segment) Angle() float64 {
	return s.angle
}

// SetAngle sets the joint angle, in radians. The angle is stored as given; the
// mirroring of left legs is all in their geometry.
func (s *Segment) SetAngle(theta float64) {
	s.angle = theta
	s.orientation = math3d.AxisAngle(s.Axis, theta)
}

// Orientation returns the rotation of the joint away from its zero position.
func (s *Segment) Orientation() math3d.Orientation {
	return s.orientation
}

// Next returns the pose of this segment, given the pose of its parent. The
// displacement is in the parent's frame, and the joint's own rotation is
// applied after its fixed pre-rotation.
func (s *Segment) Next(parent math3d.Pose) math3d.Pose {
	return math3d.Pose{
		Position:    parent.Position.Add(parent.Orientation.Rotate(s.Displacement)),
		Orientation: parent.Orientation.Mul(s.PreRotation).Mul(s.orientation),
	}
}
