package orbit

import (
	"math"

	"github.com/san-kum/orbitgen/internal/celestial"
)

// G is the gravitational constant the simulator is built with.
const G = 6.67e-11

// Speed returns the circular-orbit speed at distance d from mass m.
func Speed(m, d float64) (float64, error) {
	return speed(G, m, d)
}

func speed(g, m, d float64) (float64, error) {
	if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
		return 0, celestial.Invalid("central mass", m, "must be finite and >= 0")
	}
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0, celestial.Invalid("distance", d, "must be finite and > 0")
	}
	return math.Sqrt(g * m / d), nil
}
