package legs

import (
	"fmt"

	"github.com/hexwalker/hexapod/math3d"
	"github.com/pkg/errors"
)

var ErrNonFinite = errors.New("pose is not finite")

// Chain is the sequence of poses along a leg, starting at its root. Entry i+1
// is the pose of segment i, so a full leg has one more entry than segments.
type Chain struct {
	Positions    []math3d.Vector3
	Orientations []math3d.Orientation
}

func rootChain(root math3d.Pose) Chain {
	return Chain{
		Positions:    []math3d.Vector3{root.Position},
		Orientations: []math3d.Orientation{root.Orientation},
	}
}

// Len returns the number of poses in the chain.
func (c Chain) Len() int {
	return len(c.Positions)
}

// Pose returns the ith pose in the chain.
func (c Chain) Pose(i int) math3d.Pose {
	return math3d.Pose{Position: c.Positions[i], Orientation: c.Orientations[i]}
}

// Tip returns the last pose in the chain.
func (c Chain) Tip() math3d.Pose {
	return c.Pose(c.Len() - 1)
}

func (c Chain) append(p math3d.Pose) Chain {
	return Chain{
		Positions:    append(c.Positions, p.Position),
		Orientations: append(c.Orientations, p.Orientation),
	}
}

// Validate returns ErrNonFinite if any pose in the chain contains a NaN or an
// infinity.
func (c Chain) Validate() error {
	for i := range c.Positions {
		if !c.Pose(i).Finite() {
			return errors.Wrapf(ErrNonFinite, "chain index %d", i)
		}
	}

	return nil
}

func (c Chain) String() string {
	return fmt.Sprintf("&Chain{%v}", c.Positions)
}
