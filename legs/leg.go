package legs

import (
	"github.com/hexwalker/hexapod"
	"github.com/hexwalker/hexapod/math3d"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Leg is a chain of segments mounted on a body. Only the joint angles (and the
// pose of the body) change after construction.
type Leg struct {
	id       string
	position hexapod.Position
	body     *hexapod.BodyFrame

	// Where the leg is mounted, in the body coordinate space.
	offset math3d.Vector3

	segments []Segment
}

// NewLeg creates a leg with the given identifier (e.g. "front_left"), mounted
// on the given body. All joints start at zero.
func NewLeg(body *hexapod.BodyFrame, id string) *Leg {
	l := &Leg{
		id:       id,
		position: hexapod.ParsePosition(id),
		body:     body,
		offset:   hexapod.AttachmentOffset(id),
	}

	parent := rootIndex
	for _, g := range GeometryFor(l.position.Side) {
		l.segments = append(l.segments, makeSegment(g, parent))
		parent = len(l.segments) - 1
	}

	log.Debugf("new leg %s (%s) at %s", id, l.position, l.offset)
	return l
}

func (l *Leg) ID() string {
	return l.id
}

func (l *Leg) Position() hexapod.Position {
	return l.position
}

func (l *Leg) Side() hexapod.Side {
	return l.position.Side
}

// NumSegments returns the number of joints in the leg.
func (l *Leg) NumSegments() int {
	return len(l.segments)
}

// Segment returns the ith segment, counting from the body. The pointer stays
// valid for the life of the leg.
func (l *Leg) Segment(i int) *Segment {
	return &l.segments[i]
}

// Angles returns the current joint angles, in radians, root first.
func (l *Leg) Angles() []float64 {
	a := make([]float64, len(l.segments))
	for i := range l.segments {
		a[i] = l.segments[i].Angle()
	}

	return a
}

// SetAngles sets every joint angle at once, root first.
func (l *Leg) SetAngles(angles ...float64) error {
	if len(angles) != len(l.segments) {
		return errors.Errorf("leg %s has %d segments, got %d angles", l.id, len(l.segments), len(angles))
	}

	for i, a := range angles {
		l.segments[i].SetAngle(a)
	}

	return nil
}

// RootOffset returns the position at which the leg is mounted, in the body
// coordinate space.
func (l *Leg) RootOffset() math3d.Vector3 {
	return l.offset
}

// RootPose returns the current pose of the mount point in the world.
func (l *Leg) RootPose() math3d.Pose {
	return l.body.CurrentRootPose(l.id)
}

// WorldAnchorPose returns the mount point of the leg as if the body had never
// moved. See BodyFrame.WorldAnchorPose.
func (l *Leg) WorldAnchorPose() math3d.Pose {
	return l.body.WorldAnchorPose(l.id)
}

// ChainPose returns the poses from the root of the leg up to and including
// segment i. Each segment asks for its parent's chain and appends its own pose;
// nothing is cached, so the result always reflects the latest angles and body
// pose.
func (l *Leg) ChainPose(i int) Chain {
	if i == rootIndex {
		return rootChain(l.RootPose())
	}

	s := &l.segments[i]
	c := l.ChainPose(s.parent)
	return c.append(s.Next(c.Tip()))
}

// EndEffectorPose returns the poses of every joint in the leg, from the root to
// the foot.
func (l *Leg) EndEffectorPose() Chain {
	return l.ChainPose(len(l.segments) - 1)
}

// EndEffector returns the position of the foot in the world.
func (l *Leg) EndEffector() math3d.Vector3 {
	return l.EndEffectorPose().Tip().Position
}
