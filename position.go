package hexapod

import (
	"strings"
)

// Section is where along the length of the body a leg is mounted.
type Section int

const (
	Middle Section = iota
	Front
	Rear
)

// Side is which side of the body a leg is mounted on. The left side is the
// mirror image of the right, through the YZ plane.
type Side int

const (
	Right Side = iota
	Left
)

// Position is the category of a leg, derived from its identifier.
type Position struct {
	Section Section
	Side    Side
}

// The six legs of a standard hexapod, in the order they're usually listed:
// clockwise from the front left.
var StandardLegIDs = [6]string{
	"front_left",
	"front_right",
	"middle_right",
	"rear_right",
	"rear_left",
	"middle_left",
}

// ParsePosition returns the position encoded in a leg identifier, by looking
// for "front", "rear" and "left" anywhere in it. Anything which isn't front or
// rear is a middle leg, and anything which isn't left is a right leg.
func ParsePosition(id string) Position {
	s := strings.ToLower(id)
	p := Position{}

	switch {
	case strings.Contains(s, "front"):
		p.Section = Front
	case strings.Contains(s, "rear"):
		p.Section = Rear
	default:
		if !strings.Contains(s, "middle") {
			log.Debugf("leg %q is not front, middle or rear; assuming middle", id)
		}
	}

	if strings.Contains(s, "left") {
		p.Side = Left
	}

	return p
}

func (s Section) String() string {
	switch s {
	case Front:
		return "front"
	case Rear:
		return "rear"
	default:
		return "middle"
	}
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}

	return "right"
}

// Sign returns -1 for the left side and 1 for the right. Lateral (X) offsets,
// rotation axes and fixed rotations are all multiplied by this.
func (s Side) Sign() float64 {
	if s == Left {
		return -1
	}

	return 1
}

func (p Position) String() string {
	return p.Section.String() + "_" + p.Side.String()
}
