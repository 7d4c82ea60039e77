package legs

import (
	"github.com/hexwalker/hexapod/math3d"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// jacobian returns the 3×N matrix mapping joint angle rates to the linear
// velocity of the foot, for the given chain.
//
// Segment i's rotation is composed into chain entry i+1, and the first
// position it moves is entry i+2. So the pivot is the position at i+1, and the
// axis is the joint's own (fixed) axis carried into the world by the
// orientation at i+1. A rotation leaves its own axis alone, so that's the
// direction the joint actually turns about.
func (l *Leg) jacobian(c Chain) *mat.Dense {
	foot := c.Tip().Position
	j := mat.NewDense(3, len(l.segments), nil)

	for i := range l.segments {
		pivot := c.Positions[i+1]
		postRotation := c.Orientations[i+1]

		axis := postRotation.Rotate(l.segments[i].Axis)
		col := axis.Cross(foot.Subtract(pivot))
		j.SetCol(i, []float64{col.X, col.Y, col.Z})
	}

	return j
}

// Jacobian returns the positional Jacobian of the leg at its current angles.
// Callers can pass it to math3d.SingularValues to check how close the leg is to
// a singularity before trusting the pseudoinverse.
func (l *Leg) Jacobian() (*mat.Dense, error) {
	c := l.EndEffectorPose()
	if err := c.Validate(); err != nil {
		log.Errorf("invalid %s chain: %s", l.id, c)
		return nil, errors.Wrapf(err, "leg %s", l.id)
	}

	return l.jacobian(c), nil
}

// InverseKinematicsPass computes the pose of every joint, and the pseudoinverse
// of the Jacobian at the current angles. For a small displacement dx of the
// foot, pinv · dx approximates the change in joint angles needed to get there.
//
// This is a single first-order step. Near a singularity (e.g. a fully
// extended leg) the result is unbounded; nothing here damps or rejects it.
func (l *Leg) InverseKinematicsPass() ([]math3d.Vector3, *mat.Dense, error) {
	c := l.EndEffectorPose()
	if err := c.Validate(); err != nil {
		log.Errorf("invalid %s chain: %s", l.id, c)
		return nil, nil, errors.Wrapf(err, "leg %s", l.id)
	}

	pinv, err := math3d.Pinv(l.jacobian(c))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "while inverting %s jacobian", l.id)
	}

	return c.Positions, pinv, nil
}

// DeltaAngles returns the change in joint angles (radians, root first) which
// should move the foot by approximately dx.
func (l *Leg) DeltaAngles(dx math3d.Vector3) ([]float64, error) {
	_, pinv, err := l.InverseKinematicsPass()
	if err != nil {
		return nil, err
	}

	return math3d.MulVector3(pinv, dx), nil
}

// ApplyDelta adds the given change to each joint angle.
func (l *Leg) ApplyDelta(dtheta []float64) error {
	if len(dtheta) != len(l.segments) {
		return errors.Errorf("leg %s has %d segments, got %d deltas", l.id, len(l.segments), len(dtheta))
	}

	for i, d := range dtheta {
		s := &l.segments[i]
		s.SetAngle(s.Angle() + d)
	}

	return nil
}
