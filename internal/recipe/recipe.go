package recipe

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/generate"
	"github.com/san-kum/orbitgen/internal/orbit"
	"github.com/san-kum/orbitgen/internal/vec"
	"gopkg.in/yaml.v3"
)

const (
	KindBinary = "binary"
	KindGalaxy = "galaxy"
)

const (
	DefaultDtMultiplier   = 1.0
	DefaultRadius         = 1e11
	DefaultLayers         = 3
	DefaultBodiesPerLayer = 8
)

type Recipe struct {
	Kind         string           `yaml:"kind"`
	Name         string           `yaml:"name"`
	DtMultiplier float64          `yaml:"dt_multiplier"`
	Seed         int64            `yaml:"seed"`
	Strategy     orbit.Strategy   `yaml:"strategy"`
	Binary       []celestial.Body `yaml:"binary,omitempty"`
	Galaxies     []GalaxyConfig   `yaml:"galaxies,omitempty"`
}

type GalaxyConfig struct {
	Center         vec.Vec3      `yaml:"center"`
	Axis           generate.Axis `yaml:"axis"`
	CentralMass    float64       `yaml:"central_mass"`
	Velocity       vec.Vec3      `yaml:"velocity"`
	Radius         float64       `yaml:"radius"`
	Layers         int           `yaml:"layers"`
	BodiesPerLayer int           `yaml:"bodies_per_layer"`
	SameMass       bool          `yaml:"same_mass"`
	CommonMass     float64       `yaml:"common_mass"`
	Masses         []float64     `yaml:"masses,omitempty"`
	Aligned        bool          `yaml:"aligned"`
}

func DefaultRecipe() *Recipe {
	return &Recipe{
		Kind:         KindGalaxy,
		DtMultiplier: DefaultDtMultiplier,
		Strategy:     orbit.StrategyLegacy,
	}
}

// DefaultGalaxy mirrors the wizard defaults: same mass, aligned rings.
func DefaultGalaxy() GalaxyConfig {
	return GalaxyConfig{
		Axis:           generate.AxisZ,
		Radius:         DefaultRadius,
		Layers:         DefaultLayers,
		BodiesPerLayer: DefaultBodiesPerLayer,
		SameMass:       true,
		Aligned:        true,
	}
}

// UnmarshalYAML fills fields the entry leaves out from DefaultGalaxy. An entry
// that lists masses without same_mass uses them per satellite.
func (g *GalaxyConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain GalaxyConfig
	c := plain(DefaultGalaxy())
	if err := node.Decode(&c); err != nil {
		return err
	}
	if len(c.Masses) > 0 && !hasKey(node, "same_mass") {
		c.SameMass = false
	}
	*g = GalaxyConfig(c)
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// ParseKind accepts the kind names and the menu numbers 0 (binary) and 1 (galaxy).
func ParseKind(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", KindBinary:
		return KindBinary, nil
	case "1", KindGalaxy:
		return KindGalaxy, nil
	default:
		return "", celestial.Invalid("kind", s, "want binary (0) or galaxy (1)")
	}
}

func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Recipe, error) {
	r := DefaultRecipe()
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("%w: %v", celestial.ErrInvalidInput, err)
	}
	return r, nil
}

func Save(path string, r *Recipe) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (r *Recipe) Validate() error {
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return err
	}
	if math.IsNaN(r.DtMultiplier) || math.IsInf(r.DtMultiplier, 0) {
		return celestial.Invalid("dt_multiplier", r.DtMultiplier, "must be finite")
	}

	switch kind {
	case KindBinary:
		if len(r.Binary) != 2 {
			return celestial.Invalid("binary", len(r.Binary), "a binary system needs exactly 2 bodies")
		}
		for i, b := range r.Binary {
			if err := b.Validate(); err != nil {
				return fmt.Errorf("binary body %d: %w", i, err)
			}
		}
	case KindGalaxy:
		if len(r.Galaxies) == 0 {
			return celestial.Invalid("galaxies", 0, "at least one galaxy is required")
		}
		for i, g := range r.Galaxies {
			if err := g.Spec().Validate(); err != nil {
				return fmt.Errorf("galaxy %d: %w", i, err)
			}
			if !g.SameMass && len(g.Masses) != g.Spec().Satellites() {
				return fmt.Errorf("galaxy %d: %w", i,
					celestial.Invalid("masses", len(g.Masses), fmt.Sprintf("want %d entries", g.Spec().Satellites())))
			}
		}
	}
	return nil
}

// Spec converts the config into generator input.
func (g GalaxyConfig) Spec() generate.GalaxySpec {
	var masses generate.MassSource = generate.MassList(g.Masses)
	if g.SameMass {
		masses = generate.CommonMass(g.CommonMass)
	}
	return generate.GalaxySpec{
		Center:         g.Center,
		Axis:           g.Axis,
		CentralMass:    g.CentralMass,
		Velocity:       g.Velocity,
		Radius:         g.Radius,
		Layers:         g.Layers,
		BodiesPerLayer: g.BodiesPerLayer,
		Aligned:        g.Aligned,
		Masses:         masses,
	}
}

// Build validates the recipe and generates its document.
func (r *Recipe) Build() (*celestial.Document, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	b := celestial.NewBuilder(r.DtMultiplier)
	gen := generate.New(r.Seed, orbit.NewPlacer(r.Strategy))

	kind, _ := ParseKind(r.Kind)
	if kind == KindBinary {
		if err := gen.Binary(b, generate.BinarySpec{Bodies: [2]celestial.Body{r.Binary[0], r.Binary[1]}}); err != nil {
			return nil, err
		}
		return b.Document(), nil
	}

	for i, g := range r.Galaxies {
		if err := gen.Galaxy(b, g.Spec()); err != nil {
			return nil, fmt.Errorf("galaxy %d: %w", i, err)
		}
	}
	return b.Document(), nil
}
