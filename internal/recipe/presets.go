package recipe

import (
	"sort"

	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/generate"
	"github.com/san-kum/orbitgen/internal/vec"
)

const (
	solarMass = 1.989e30
	earthMass = 5.972e24
	au        = 1.496e11
	day       = 86400.0
)

var Presets = map[string]*Recipe{
	"sun_earth": {
		Kind: KindBinary, Name: "sun_earth", DtMultiplier: day,
		Binary: []celestial.Body{
			{Mass: solarMass},
			{Mass: earthMass, Pos: vec.New(au, 0, 0), Velocity: vec.New(0, 29780, 0)},
		},
	},
	"twin_stars": {
		Kind: KindBinary, Name: "twin_stars", DtMultiplier: day,
		Binary: []celestial.Body{
			{Mass: solarMass, Pos: vec.New(-au, 0, 0), Velocity: vec.New(0, -14890, 0)},
			{Mass: solarMass, Pos: vec.New(au, 0, 0), Velocity: vec.New(0, 14890, 0)},
		},
	},
	"disc": {
		Kind: KindGalaxy, Name: "disc", DtMultiplier: day, Seed: 1,
		Galaxies: []GalaxyConfig{
			{
				Axis: generate.AxisZ, CentralMass: 1e35, Radius: 10 * au,
				Layers: 5, BodiesPerLayer: 12, SameMass: true, CommonMass: earthMass, Aligned: true,
			},
		},
	},
	"cloud": {
		Kind: KindGalaxy, Name: "cloud", DtMultiplier: day, Seed: 7,
		Galaxies: []GalaxyConfig{
			{
				Axis: generate.AxisY, CentralMass: 1e35, Radius: 10 * au,
				Layers: 8, BodiesPerLayer: 16, SameMass: true, CommonMass: earthMass, Aligned: false,
			},
		},
	},
	"collision": {
		Kind: KindGalaxy, Name: "collision", DtMultiplier: 10 * day, Seed: 3,
		Galaxies: []GalaxyConfig{
			{
				Center: vec.New(-50*au, 0, 0), Axis: generate.AxisZ, CentralMass: 1e35,
				Velocity: vec.New(2000, 500, 0), Radius: 10 * au,
				Layers: 4, BodiesPerLayer: 10, SameMass: true, CommonMass: earthMass, Aligned: false,
			},
			{
				Center: vec.New(50*au, 0, 5*au), Axis: generate.AxisX, CentralMass: 1e35,
				Velocity: vec.New(-2000, -500, 0), Radius: 10 * au,
				Layers: 4, BodiesPerLayer: 10, SameMass: true, CommonMass: earthMass, Aligned: false,
			},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Recipe {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Binary = append([]celestial.Body(nil), p.Binary...)
	c.Galaxies = append([]GalaxyConfig(nil), p.Galaxies...)
	for i := range c.Galaxies {
		c.Galaxies[i].Masses = append([]float64(nil), c.Galaxies[i].Masses...)
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
