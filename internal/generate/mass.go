package generate

import (
	"fmt"

	"github.com/san-kum/orbitgen/internal/celestial"
)

// MassSource supplies the mass of the i-th satellite of a galaxy.
type MassSource interface {
	Mass(i int) (float64, error)
}

// CommonMass gives every satellite the same mass.
type CommonMass float64

func (c CommonMass) Mass(int) (float64, error) { return float64(c), nil }

// MassList assigns masses by satellite index.
type MassList []float64

func (l MassList) Mass(i int) (float64, error) {
	if i < 0 || i >= len(l) {
		return 0, celestial.Invalid("masses", len(l), fmt.Sprintf("no mass for satellite %d", i))
	}
	return l[i], nil
}

// MassFunc adapts a function, typically an interactive prompt.
type MassFunc func(i int) (float64, error)

func (f MassFunc) Mass(i int) (float64, error) { return f(i) }

// Once asks src a single time and reuses the answer for every satellite.
func Once(src MassSource) MassSource {
	var (
		asked bool
		mass  float64
	)
	return MassFunc(func(i int) (float64, error) {
		if asked {
			return mass, nil
		}
		m, err := src.Mass(i)
		if err != nil {
			return 0, err
		}
		asked, mass = true, m
		return mass, nil
	})
}
