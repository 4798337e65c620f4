package celestial

import (
	"math"

	"github.com/san-kum/orbitgen/internal/vec"
)

type Body struct {
	Mass     float64  `json:"mass" yaml:"mass"`
	Pos      vec.Vec3 `json:"pos" yaml:"pos"`
	Velocity vec.Vec3 `json:"velocity" yaml:"velocity"`
}

// Validate checks that the mass is non-negative and every component is finite.
func (b Body) Validate() error {
	if math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) {
		return Invalid("mass", b.Mass, "must be finite")
	}
	if b.Mass < 0 {
		return Invalid("mass", b.Mass, "must be >= 0")
	}
	if !b.Pos.IsFinite() {
		return Invalid("pos", b.Pos, "must be finite")
	}
	if !b.Velocity.IsFinite() {
		return Invalid("velocity", b.Velocity, "must be finite")
	}
	return nil
}

// Momentum returns mass times velocity.
func (b Body) Momentum() vec.Vec3 {
	return b.Velocity.Scale(b.Mass)
}
