package generate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/orbit"
	"github.com/san-kum/orbitgen/internal/vec"
)

type BinarySpec struct {
	Bodies [2]celestial.Body
}

type GalaxySpec struct {
	Center         vec.Vec3
	Axis           Axis
	CentralMass    float64
	Velocity       vec.Vec3
	Radius         float64
	Layers         int
	BodiesPerLayer int
	Aligned        bool
	Masses         MassSource
}

func (s GalaxySpec) Satellites() int {
	if s.Layers <= 0 || s.BodiesPerLayer <= 0 {
		return 0
	}
	return s.Layers * s.BodiesPerLayer
}

func (s GalaxySpec) Validate() error {
	if s.Layers < 0 {
		return celestial.Invalid("layers", s.Layers, "must be >= 0")
	}
	if s.BodiesPerLayer < 0 {
		return celestial.Invalid("bodies per layer", s.BodiesPerLayer, "must be >= 0")
	}
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius < 0 {
		return celestial.Invalid("radius", s.Radius, "must be finite and >= 0")
	}
	if s.Satellites() == 0 {
		return nil
	}
	if s.Radius == 0 {
		return celestial.Invalid("radius", s.Radius, "must be > 0 when the galaxy has satellites")
	}
	if s.Masses == nil {
		return celestial.Invalid("masses", nil, "no mass source for satellites")
	}
	return nil
}

type Generator struct {
	rng    *rand.Rand
	placer orbit.Placer
}

func New(seed int64, placer orbit.Placer) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		placer: placer,
	}
}

func (g *Generator) Binary(b *celestial.Builder, spec BinarySpec) error {
	for _, body := range spec.Bodies {
		if err := b.Add(body); err != nil {
			return err
		}
	}
	return nil
}

// Galaxy appends the central body followed by Layers rings of
// BodiesPerLayer satellites each, ring k sitting at k*Radius/Layers.
func (g *Generator) Galaxy(b *celestial.Builder, spec GalaxySpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	center := celestial.Body{Mass: spec.CentralMass, Pos: spec.Center, Velocity: spec.Velocity}
	if err := b.Add(center); err != nil {
		return err
	}

	if spec.Satellites() == 0 {
		return nil
	}

	step := spec.Radius / float64(spec.Layers)
	idx := 0
	for layer := 1; layer <= spec.Layers; layer++ {
		offset := step * float64(layer)
		for j := 0; j < spec.BodiesPerLayer; j++ {
			pos := spec.Axis.flatten(g.scatter(spec.Center, offset, spec.Aligned), spec.Center)

			mass, err := spec.Masses.Mass(idx)
			if err != nil {
				return fmt.Errorf("satellite %d: %w", idx, err)
			}

			vel, err := g.placer.Place(spec.CentralMass, spec.Center, pos, spec.Velocity)
			if err != nil {
				return fmt.Errorf("satellite %d: %w", idx, err)
			}

			if err := b.Add(celestial.Body{Mass: mass, Pos: pos, Velocity: vel}); err != nil {
				return err
			}
			idx++
		}
	}
	return nil
}

// scatter offsets each component of c by ±offset, or by ±offset*sin(u)
// with u uniform in [0, 1) when not aligned.
func (g *Generator) scatter(c vec.Vec3, offset float64, aligned bool) vec.Vec3 {
	comp := func() float64 {
		o := offset
		if !aligned {
			o *= math.Sin(g.rng.Float64())
		}
		return o * g.sign()
	}
	x := comp()
	y := comp()
	z := comp()
	return vec.New(c.X+x, c.Y+y, c.Z+z)
}

func (g *Generator) sign() float64 {
	if g.rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
