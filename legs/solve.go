package legs

import (
	"math"

	"github.com/hexwalker/hexapod/math3d"
	"github.com/pkg/errors"
)

var ErrNotConverged = errors.New("foot did not reach target")

// Below this (in radians, summed over all joints), a step isn't going to get
// us anywhere. This happens when the target is off in a direction the leg
// can't move.
const minStepAngle = 1e-9

type SolveOptions struct {

	// The most passes to make before giving up.
	MaxIterations int

	// How close (in mm) the foot must get to the target.
	Tolerance float64

	// The furthest (in mm) to try to move the foot in a single pass. The
	// Jacobian is only a linear approximation, so big steps overshoot.
	MaxStep float64
}

var DefaultSolveOptions = SolveOptions{
	MaxIterations: 100,
	Tolerance:     0.1,
	MaxStep:       10.0,
}

type SolveResult struct {
	Iterations int

	// How far (in mm) the foot ended up from the target. When the target could
	// not be reached, the closest the foot got along the way.
	Distance float64

	Angles []float64
}

// Solve repeatedly applies InverseKinematicsPass to move the foot of the leg
// towards target (in world space), until it's within tolerance. This is what a
// planner would do with the pass; the engine itself only ever takes one step.
//
// If the target can't be reached, the original angles are restored and
// ErrNotConverged is returned, along with the closest distance seen.
func Solve(l *Leg, target math3d.Vector3, opts SolveOptions) (SolveResult, error) {
	orig := l.Angles()
	res := SolveResult{}
	best := math.Inf(1)

	for res.Iterations = 0; res.Iterations < opts.MaxIterations; res.Iterations++ {
		positions, pinv, err := l.InverseKinematicsPass()
		if err != nil {
			if rerr := l.SetAngles(orig...); rerr != nil {
				return res, errors.Wrapf(rerr, "while restoring %s after %s", l.id, err)
			}

			return res, err
		}

		foot := positions[len(positions)-1]
		dx := target.Subtract(foot)
		res.Distance = dx.Magnitude()
		if res.Distance < best {
			best = res.Distance
		}

		if res.Distance <= opts.Tolerance {
			res.Angles = l.Angles()
			log.Debugf("%s reached %s in %d iterations", l.id, target, res.Iterations)
			return res, nil
		}

		if opts.MaxStep > 0 && res.Distance > opts.MaxStep {
			dx = dx.Unit().MultiplyByScalar(opts.MaxStep)
		}

		dtheta := math3d.MulVector3(pinv, dx)
		if sumAbs(dtheta) < minStepAngle {
			break
		}

		if err := l.ApplyDelta(dtheta); err != nil {
			return res, err
		}
	}

	// One last look, in case the final step got us there.
	res.Distance = l.EndEffector().Distance(target)
	if res.Distance <= opts.Tolerance {
		res.Angles = l.Angles()
		return res, nil
	}

	if res.Distance < best {
		best = res.Distance
	}

	if err := l.SetAngles(orig...); err != nil {
		return res, errors.Wrapf(err, "while restoring %s", l.id)
	}

	res.Distance = best
	res.Angles = orig
	log.Infof("%s gave up on %s after %d iterations (%.2fmm away)", l.id, target, res.Iterations, res.Distance)
	return res, errors.Wrapf(ErrNotConverged, "leg %s: %.2fmm from %s after %d iterations", l.id, res.Distance, target, res.Iterations)
}

func sumAbs(fs []float64) float64 {
	t := 0.0
	for _, f := range fs {
		if f < 0 {
			t -= f
		} else {
			t += f
		}
	}

	return t
}
