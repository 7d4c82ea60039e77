package legs

import (
	"github.com/hexwalker/hexapod"
	"github.com/hexwalker/hexapod/math3d"
	"github.com/pkg/errors"
)

var ErrUnknownLeg = errors.New("unknown leg")

// Hexapod is the six standard legs, all mounted on one body.
type Hexapod struct {
	Body *hexapod.BodyFrame
	Legs [6]*Leg
}

// NewHexapod creates the six standard legs on the given body.
func NewHexapod(body *hexapod.BodyFrame) *Hexapod {
	h := &Hexapod{Body: body}
	for i, id := range hexapod.StandardLegIDs {
		h.Legs[i] = NewLeg(body, id)
	}

	return h
}

// Leg returns the leg with the given identifier.
func (h *Hexapod) Leg(id string) (*Leg, error) {
	for _, l := range h.Legs {
		if l.ID() == id {
			return l, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownLeg, "%q", id)
}

// Feet returns the position of each foot in the world, in the same order as
// Legs.
func (h *Hexapod) Feet() [6]math3d.Vector3 {
	var feet [6]math3d.Vector3
	for i, l := range h.Legs {
		feet[i] = l.EndEffector()
	}

	return feet
}
