package legs

import (
	"testing"

	"github.com/hexwalker/hexapod"
	"github.com/hexwalker/hexapod/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveReachesTarget(t *testing.T) {
	b := hexapod.NewDefaultBodyFrame()

	for _, id := range hexapod.StandardLegIDs {
		l := NewLeg(b, id)

		// Find somewhere the foot can actually get to.
		require.NoError(t, l.SetAngles(0.4, 0, 0))
		target := l.EndEffector()
		require.NoError(t, l.SetAngles(0, 0, 0))

		res, err := Solve(l, target, DefaultSolveOptions)
		require.NoError(t, err, id)
		assert.LessOrEqual(t, res.Distance, DefaultSolveOptions.Tolerance, id)
		assert.Greater(t, res.Iterations, 0, id)
		assert.Equal(t, l.Angles(), res.Angles, id)
		assert.InDelta(t, 0, l.EndEffector().Distance(target), DefaultSolveOptions.Tolerance, id)
	}
}

func TestSolveAlreadyThere(t *testing.T) {
	l := NewLeg(hexapod.NewDefaultBodyFrame(), "front_left")
	res, err := Solve(l, l.EndEffector(), DefaultSolveOptions)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Iterations)
}

func TestSolveUnreachable(t *testing.T) {
	l := NewLeg(hexapod.NewDefaultBodyFrame(), "rear_right")
	require.NoError(t, l.SetAngles(0.1, 0.2, 0.3))
	orig := l.Angles()

	// The foot never leaves the plane of the body.
	target := l.EndEffector().Add(math3d.Vector3{Z: 50})

	res, err := Solve(l, target, SolveOptions{MaxIterations: 20, Tolerance: 0.1, MaxStep: 10})
	assert.ErrorIs(t, err, ErrNotConverged)
	assert.Greater(t, res.Distance, 1.0)
	assert.Equal(t, orig, l.Angles())
	assert.Equal(t, orig, res.Angles)
}

func TestSolvePartlyReachable(t *testing.T) {
	l := NewLeg(hexapod.NewDefaultBodyFrame(), "front_left")
	require.NoError(t, l.SetAngles(0.4, 0, 0))
	target := l.EndEffector().Add(math3d.Vector3{Z: 50})
	require.NoError(t, l.SetAngles(0, 0, 0))

	// The coxa can swing the foot right underneath the target, but no closer.
	res, err := Solve(l, target, DefaultSolveOptions)
	assert.ErrorIs(t, err, ErrNotConverged)
	assert.InDelta(t, 50, res.Distance, 0.5)
	assert.Less(t, res.Distance, l.EndEffector().Distance(target))
	assert.Equal(t, []float64{0, 0, 0}, l.Angles())
}
