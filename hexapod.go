package hexapod

import (
	"github.com/hexwalker/hexapod/math3d"
	"github.com/sirupsen/logrus"
)

const (

	// Distance (in mm) between the front (or rear) pair of leg mounts, and the
	// middle pair. The middle legs are mounted further out.
	bodyWidthEnd = 63.0
	bodyWidthMid = 84.0

	// Distance (in mm) between the front and rear leg mounts.
	bodyLength = 113.0

	// The height (in mm) of the body origin above the ground at rest.
	DefaultHeight = 40.0
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "hexapod",
})

// BodyFrame is the pose of the body of the robot in the world. It remembers the
// pose it was created with, and all changes are expressed relative to that, so
// setting the same offset twice doesn't move it twice.
//
// A single BodyFrame is shared by all of the legs. It's not safe to mutate it
// while they're being queried.
type BodyFrame struct {
	initialPosition    math3d.Vector3
	initialOrientation math3d.Orientation

	position    math3d.Vector3
	orientation math3d.Orientation
}

// NewBodyFrame creates a body at the given initial pose.
func NewBodyFrame(position math3d.Vector3, orientation math3d.Orientation) *BodyFrame {
	return &BodyFrame{
		initialPosition:    position,
		initialOrientation: orientation,
		position:           position,
		orientation:        orientation,
	}
}

// NewDefaultBodyFrame creates a level body, standing DefaultHeight above the
// world origin.
func NewDefaultBodyFrame() *BodyFrame {
	return NewBodyFrame(math3d.Vector3{X: 0, Y: 0, Z: DefaultHeight}, math3d.IdentityOrientation)
}

func (b *BodyFrame) InitialPosition() math3d.Vector3 {
	return b.initialPosition
}

func (b *BodyFrame) InitialOrientation() math3d.Orientation {
	return b.initialOrientation
}

func (b *BodyFrame) Position() math3d.Vector3 {
	return b.position
}

func (b *BodyFrame) Orientation() math3d.Orientation {
	return b.orientation
}

// InitialPose returns the pose that the body was created with.
func (b *BodyFrame) InitialPose() math3d.Pose {
	return math3d.Pose{Position: b.initialPosition, Orientation: b.initialOrientation}
}

// Pose returns the current pose of the body.
func (b *BodyFrame) Pose() math3d.Pose {
	return math3d.Pose{Position: b.position, Orientation: b.orientation}
}

// SetOrientation rotates the body (in radians) away from its initial
// orientation. Previous calls are forgotten.
func (b *BodyFrame) SetOrientation(yaw, pitch, roll float64) {
	ea := math3d.EulerAngles{Yaw: yaw, Pitch: pitch, Roll: roll}
	b.orientation = b.initialOrientation.Mul(ea.Orientation())
	log.Debugf("orientation=%s (%s)", b.orientation, ea)
}

// SetPosition moves the body by delta (in mm) away from its initial position.
// Previous calls are forgotten.
func (b *BodyFrame) SetPosition(delta math3d.Vector3) {
	b.position = b.initialPosition.Add(delta)
	log.Debugf("position=%s", b.position)
}

// AttachmentOffset returns the position at which the given leg is mounted, in
// the body coordinate space. This never changes.
func AttachmentOffset(id string) math3d.Vector3 {
	p := ParsePosition(id)
	v := math3d.Vector3{}

	switch p.Section {
	case Front:
		v.Y = bodyLength / 2
		v.X = bodyWidthEnd / 2
	case Rear:
		v.Y = -bodyLength / 2
		v.X = bodyWidthEnd / 2
	default:
		v.X = bodyWidthMid / 2
	}

	v.X *= p.Side.Sign()
	return v
}

// AttachmentOffset returns the position at which the given leg is mounted, in
// the body coordinate space.
func (b *BodyFrame) AttachmentOffset(id string) math3d.Vector3 {
	return AttachmentOffset(id)
}

// WorldAnchorPose returns the pose at which the given leg would be mounted if
// the body were still at its initial pose. This is fixed in the world, so is
// useful as a reference point when planning steps.
func (b *BodyFrame) WorldAnchorPose(id string) math3d.Pose {
	return b.InitialPose().Add(math3d.Pose{Position: AttachmentOffset(id), Orientation: math3d.IdentityOrientation})
}

// CurrentRootPose returns the pose at which the given leg is mounted, in the
// world coordinate space, taking into account the current body pose.
func (b *BodyFrame) CurrentRootPose(id string) math3d.Pose {
	return b.Pose().Add(math3d.Pose{Position: AttachmentOffset(id), Orientation: math3d.IdentityOrientation})
}

// World returns a matrix to transform a vector in the body coordinate space
// into the world space.
func (b *BodyFrame) World() math3d.Matrix44 {
	return b.Pose().ToWorld()
}

// Local returns a matrix to transform a vector in the world coordinate space
// into the body space, taking into account its current position and rotation.
func (b *BodyFrame) Local() math3d.Matrix44 {
	return b.Pose().ToLocal()
}
