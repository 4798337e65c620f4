package generate

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/vec"
)

// Axis is the axis a galaxy points along; satellites lie in the plane
// through the center perpendicular to it.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return AxisZ, celestial.Invalid("axis", s, "want x, y or z")
	}
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// flatten copies the axis component of center into p.
func (a Axis) flatten(p, center vec.Vec3) vec.Vec3 {
	switch a {
	case AxisX:
		p.X = center.X
	case AxisY:
		p.Y = center.Y
	default:
		p.Z = center.Z
	}
	return p
}
