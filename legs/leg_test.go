package legs

import (
	"math"
	"testing"

	"github.com/hexwalker/hexapod"
	"github.com/hexwalker/hexapod/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func assertVectorInDelta(t *testing.T, exp, act math3d.Vector3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, exp.X, act.X, delta, msgAndArgs...)
	assert.InDelta(t, exp.Y, act.Y, delta, msgAndArgs...)
	assert.InDelta(t, exp.Z, act.Z, delta, msgAndArgs...)
}

func TestNewLeg(t *testing.T) {
	b := hexapod.NewDefaultBodyFrame()
	l := NewLeg(b, "rear_left")

	assert.Equal(t, "rear_left", l.ID())
	assert.Equal(t, hexapod.Left, l.Side())
	assert.Equal(t, hexapod.Position{Section: hexapod.Rear, Side: hexapod.Left}, l.Position())
	assert.Equal(t, math3d.Vector3{X: -31.5, Y: -56.5}, l.RootOffset())
	assert.Equal(t, 3, l.NumSegments())
	assert.Equal(t, []float64{0, 0, 0}, l.Angles())

	for i, name := range []string{"coxa", "femur", "tibia"} {
		s := l.Segment(i)
		assert.Equal(t, name, s.Name)
		assert.Equal(t, i-1, s.Parent())
		assert.Equal(t, LeftGeometry[i].Axis, s.Axis)
	}
}

func TestSetAngles(t *testing.T) {
	l := NewLeg(hexapod.NewDefaultBodyFrame(), "middle_right")

	require.NoError(t, l.SetAngles(0.1, -0.2, 0.3))
	assert.Equal(t, []float64{0.1, -0.2, 0.3}, l.Angles())
	assert.True(t, l.Segment(0).Orientation().AlmostEqual(math3d.AxisAngle(math3d.UnitZ, 0.1), 1e-12))

	assert.Error(t, l.SetAngles(1, 2))
	assert.Equal(t, []float64{0.1, -0.2, 0.3}, l.Angles())
}

func TestLeftSegmentRotatesBackwards(t *testing.T) {
	l := NewLeg(hexapod.NewDefaultBodyFrame(), "front_left")
	l.Segment(0).SetAngle(0.4)

	assert.Equal(t, 0.4, l.Segment(0).Angle())
	assert.True(t, l.Segment(0).Orientation().AlmostEqual(math3d.AxisAngle(math3d.UnitZ, -0.4), 1e-12))
}

func TestRootPosition(t *testing.T) {
	b := hexapod.NewDefaultBodyFrame()

	right := NewLeg(b, "front_right")
	assert.Equal(t, math3d.Vector3{X: 31.5, Y: 56.5, Z: 40}, right.RootPose().Position)

	left := NewLeg(b, "front_left")
	assert.Equal(t, math3d.Vector3{X: -31.5, Y: 56.5, Z: 40}, left.RootPose().Position)
}

func TestFirstJoint(t *testing.T) {
	b := hexapod.NewDefaultBodyFrame()

	type eg struct {
		id  string
		exp math3d.Vector3
	}

	examples := []eg{
		{"front_right", math3d.Vector3{X: 44.8, Y: 71.4, Z: 40}},
		{"front_left", math3d.Vector3{X: -44.8, Y: 71.4, Z: 40}},
	}

	for _, x := range examples {
		c := NewLeg(b, x.id).ChainPose(0)
		require.Equal(t, 2, c.Len())
		assertVectorInDelta(t, x.exp, c.Positions[1], 1e-9, x.id)
	}
}

func TestRestPose(t *testing.T) {
	l := NewLeg(hexapod.NewDefaultBodyFrame(), "front_right")
	c := l.EndEffectorPose()

	// At rest, the leg sticks straight out to the side.
	exp := []math3d.Vector3{
		{X: 31.5, Y: 56.5, Z: 40},
		{X: 44.8, Y: 71.4, Z: 40},
		{X: 100.2, Y: 71.4, Z: 40},
		{X: 190.2, Y: 71.4, Z: 40},
	}

	for i := range exp {
		assertVectorInDelta(t, exp[i], c.Positions[i], 1e-9, "chain index %d", i)
	}

	assertVectorInDelta(t, exp[3], l.EndEffector(), 1e-9)
}

func TestChainLength(t *testing.T) {
	h := NewHexapod(hexapod.NewDefaultBodyFrame())

	for _, l := range h.Legs {
		require.NoError(t, l.SetAngles(0.2, 0.5, -0.7))

		c := l.EndEffectorPose()
		assert.Equal(t, 4, c.Len(), l.ID())
		assert.Len(t, c.Orientations, 4, l.ID())

		for i := 0; i < l.NumSegments(); i++ {
			assert.Equal(t, i+2, l.ChainPose(i).Len())
		}

		positions, pinv, err := l.InverseKinematicsPass()
		require.NoError(t, err)
		assert.Len(t, positions, 4)

		j, err := l.Jacobian()
		require.NoError(t, err)
		r, cols := j.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 3, cols)

		r, cols = pinv.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 3, cols)
	}
}

func TestDeterminism(t *testing.T) {
	b := hexapod.NewDefaultBodyFrame()
	b.SetOrientation(0.1, 0.05, -0.02)
	b.SetPosition(math3d.Vector3{X: 3, Y: -4, Z: 5})

	l := NewLeg(b, "middle_left")
	require.NoError(t, l.SetAngles(0.3, -0.6, 0.9))

	c1 := l.EndEffectorPose()
	c2 := l.EndEffectorPose()
	assert.Equal(t, c1, c2)

	p1, j1, err := l.InverseKinematicsPass()
	require.NoError(t, err)
	p2, j2, err := l.InverseKinematicsPass()
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.True(t, mat.Equal(j1, j2))
}

func TestQueriesReflectLatestState(t *testing.T) {
	b := hexapod.NewDefaultBodyFrame()
	l := NewLeg(b, "rear_right")

	before := l.EndEffector()
	b.SetPosition(math3d.Vector3{Z: 10})
	assertVectorInDelta(t, before.Add(math3d.Vector3{Z: 10}), l.EndEffector(), 1e-9)

	l.Segment(0).SetAngle(0.5)
	assert.Greater(t, before.Add(math3d.Vector3{Z: 10}).Distance(l.EndEffector()), 1.0)
}

func TestMirrorSymmetry(t *testing.T) {
	b := hexapod.NewDefaultBodyFrame()

	angles := [][]float64{
		{0, 0, 0},
		{0.3, 0.2, -0.4},
		{-0.7, 1.1, 0.5},
		{1.5, -0.9, 2.0},
	}

	for _, pair := range [][2]string{{"front_right", "front_left"}, {"middle_right", "middle_left"}, {"rear_right", "rear_left"}} {
		right := NewLeg(b, pair[0])
		left := NewLeg(b, pair[1])

		for _, a := range angles {
			require.NoError(t, right.SetAngles(a...))
			require.NoError(t, left.SetAngles(a...))

			rc := right.EndEffectorPose()
			lc := left.EndEffectorPose()
			for i := range rc.Positions {
				assertVectorInDelta(t, rc.Positions[i].MirrorX(), lc.Positions[i], 1e-9, "%s %v index %d", pair[0], a, i)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	l := NewLeg(hexapod.NewDefaultBodyFrame(), "front_right")
	assert.NoError(t, l.EndEffectorPose().Validate())

	l.Segment(1).SetAngle(math.NaN())
	assert.ErrorIs(t, l.EndEffectorPose().Validate(), ErrNonFinite)

	_, _, err := l.InverseKinematicsPass()
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = l.Jacobian()
	assert.ErrorIs(t, err, ErrNonFinite)
}
