package orbit

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/vec"
)

type Strategy int

const (
	StrategyLegacy Strategy = iota
	StrategyCross
)

func (s Strategy) String() string {
	switch s {
	case StrategyLegacy:
		return "legacy"
	case StrategyCross:
		return "cross"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "legacy":
		return StrategyLegacy, nil
	case "cross":
		return StrategyCross, nil
	default:
		return StrategyLegacy, celestial.Invalid("strategy", name, "want legacy or cross")
	}
}

// MarshalText lets the strategy appear by name in flags and recipe files.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Perpendicular returns an unnormalized vector perpendicular to r using s.
func (s Strategy) Perpendicular(r vec.Vec3) vec.Vec3 {
	if s == StrategyCross {
		return CrossPerpendicular(r)
	}
	return LegacyPerpendicular(r)
}

// LegacyPerpendicular swaps two components of r and negates one of them,
// picking the pair from the first zero component. When no component is zero
// the result is only perpendicular if r.Z is zero; galaxy satellites always
// have one zero component since they are flattened onto a plane.
func LegacyPerpendicular(r vec.Vec3) vec.Vec3 {
	switch {
	case r.X == 0:
		return vec.Vec3{X: r.X, Y: r.Z, Z: -r.Y}
	case r.Y == 0:
		return vec.Vec3{X: r.Z, Y: r.Y, Z: -r.X}
	default:
		return vec.Vec3{X: r.Y, Y: -r.X, Z: r.Z}
	}
}

// CrossPerpendicular crosses r with the world axis it is least aligned with.
func CrossPerpendicular(r vec.Vec3) vec.Vec3 {
	ax, ay, az := math.Abs(r.X), math.Abs(r.Y), math.Abs(r.Z)

	var axis vec.Vec3
	switch {
	case az <= ax && az <= ay:
		axis = vec.New(0, 0, 1)
	case ay <= ax:
		axis = vec.New(0, 1, 0)
	default:
		axis = vec.New(1, 0, 0)
	}
	return r.Cross(axis)
}
