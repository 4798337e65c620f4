package orbit

import (
	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/vec"
)

// Placer computes orbit velocities with a configurable constant and
// perpendicular construction. The zero value uses G and StrategyLegacy.
type Placer struct {
	G        float64
	Strategy Strategy
}

func NewPlacer(s Strategy) Placer {
	return Placer{G: G, Strategy: s}
}

func (p Placer) g() float64 {
	if p.G == 0 {
		return G
	}
	return p.G
}

// Speed is Speed with the placer's gravitational constant.
func (p Placer) Speed(m, d float64) (float64, error) {
	return speed(p.g(), m, d)
}

// Place returns the velocity of a satellite at sat circling a body of mass
// centerMass at center, offset by the parent frame velocity.
func (p Placer) Place(centerMass float64, center, sat, parent vec.Vec3) (vec.Vec3, error) {
	r := center.Sub(sat)
	d := r.Norm()
	if d == 0 {
		return vec.Vec3{}, celestial.Invalid("satellite position", sat, "coincides with its center")
	}

	v, err := p.Speed(centerMass, d)
	if err != nil {
		return vec.Vec3{}, err
	}

	dir := p.Strategy.Perpendicular(r)
	dir.Normalize()
	return dir.Scale(v).Add(parent), nil
}

// Place uses the default Placer.
func Place(centerMass float64, center, sat, parent vec.Vec3) (vec.Vec3, error) {
	return Placer{}.Place(centerMass, center, sat, parent)
}
