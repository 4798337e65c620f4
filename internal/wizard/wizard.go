package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/generate"
	"github.com/san-kum/orbitgen/internal/logging"
	"github.com/san-kum/orbitgen/internal/orbit"
	"github.com/san-kum/orbitgen/internal/recipe"
	"github.com/san-kum/orbitgen/internal/storage"
	"github.com/san-kum/orbitgen/internal/vec"
)

// Result is what a completed wizard produced. Recipe replays the same
// answers non-interactively.
type Result struct {
	Name     string
	Document *celestial.Document
	Recipe   *recipe.Recipe
}

type Wizard struct {
	p        Prompter
	log      *log.Logger
	seed     int64
	strategy orbit.Strategy
	// AskName controls whether the output name is asked at the end.
	AskName bool
}

func New(p Prompter, logger *log.Logger, seed int64, strategy orbit.Strategy) *Wizard {
	return &Wizard{p: p, log: logging.OrDiscard(logger), seed: seed, strategy: strategy, AskName: true}
}

func (w *Wizard) Run(ctx context.Context) (*Result, error) {
	kind, err := Choice(ctx, w.p, Question{
		Prompt:  "Choose your celestial body system type:",
		Options: []string{"0 - Binary system", "1 - Galaxy"},
	}, recipe.ParseKind)
	if err != nil {
		return nil, err
	}

	dt, err := Float(ctx, w.p, Question{
		Prompt: "Delta time multiplier (how many times will the time be accelerated):",
	})
	if err != nil {
		return nil, err
	}

	rec := recipe.DefaultRecipe()
	rec.Kind = kind
	rec.DtMultiplier = dt
	rec.Seed = w.seed
	rec.Strategy = w.strategy

	b := celestial.NewBuilder(dt)
	gen := generate.New(w.seed, orbit.NewPlacer(w.strategy))

	switch kind {
	case recipe.KindBinary:
		err = w.binary(ctx, gen, b, rec)
	default:
		err = w.galaxies(ctx, gen, b, rec)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Document: b.Document(), Recipe: rec}
	if w.AskName {
		name, err := Choice(ctx, w.p, Question{Prompt: "type the filename:"}, func(s string) (string, error) {
			return s, storage.ValidateName(s)
		})
		if err != nil {
			return nil, err
		}
		res.Name = name
		rec.Name = name
	}

	w.log.Info("system generated", "kind", kind, "bodies", len(res.Document.Bodies))
	return res, nil
}

func (w *Wizard) vector(ctx context.Context, label, what string) (vec.Vec3, error) {
	var c [3]float64
	for i, axis := range []string{"x", "y", "z"} {
		v, err := Float(ctx, w.p, Question{Prompt: fmt.Sprintf("%s %s.%s:", label, what, axis)})
		if err != nil {
			return vec.Vec3{}, err
		}
		c[i] = v
	}
	return vec.New(c[0], c[1], c[2]), nil
}

func (w *Wizard) binary(ctx context.Context, gen *generate.Generator, b *celestial.Builder, rec *recipe.Recipe) error {
	var spec generate.BinarySpec
	for i := range spec.Bodies {
		label := fmt.Sprintf("Body %d: type", i)

		mass, err := Float(ctx, w.p, Question{Prompt: label + " mass:"}, nonNegative("mass"))
		if err != nil {
			return err
		}
		pos, err := w.vector(ctx, label, "pos")
		if err != nil {
			return err
		}
		vel, err := w.vector(ctx, label, "velocity")
		if err != nil {
			return err
		}
		spec.Bodies[i] = celestial.Body{Mass: mass, Pos: pos, Velocity: vel}
	}

	rec.Binary = spec.Bodies[:]
	return gen.Binary(b, spec)
}

func (w *Wizard) galaxies(ctx context.Context, gen *generate.Generator, b *celestial.Builder, rec *recipe.Recipe) error {
	n, err := Int(ctx, w.p, Question{Prompt: "How many galaxies?"}, 1)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		cfg, err := w.galaxy(ctx, i)
		if err != nil {
			return err
		}

		spec := cfg.Spec()
		if cfg.SameMass {
			spec.Masses = generate.Once(w.massPrompt(ctx, &cfg, "Object mass"))
		} else {
			spec.Masses = w.massPrompt(ctx, &cfg, "Object %d mass")
		}

		if err := gen.Galaxy(b, spec); err != nil {
			return fmt.Errorf("galaxy %d: %w", i, err)
		}
		rec.Galaxies = append(rec.Galaxies, cfg)
		w.log.Debug("galaxy added", "index", i, "satellites", spec.Satellites(), "total", b.Len())
	}
	return nil
}

// massPrompt asks for satellite masses as the generator needs them and
// records the answers in cfg.
func (w *Wizard) massPrompt(ctx context.Context, cfg *recipe.GalaxyConfig, format string) generate.MassFunc {
	return func(i int) (float64, error) {
		prompt := format
		if !cfg.SameMass {
			prompt = fmt.Sprintf(format, i+1)
		}
		m, err := Float(ctx, w.p, Question{Prompt: prompt}, nonNegative("mass"))
		if err != nil {
			return 0, err
		}
		if cfg.SameMass {
			cfg.CommonMass = m
		} else {
			cfg.Masses = append(cfg.Masses, m)
		}
		return m, nil
	}
}

func (w *Wizard) galaxy(ctx context.Context, i int) (recipe.GalaxyConfig, error) {
	cfg := recipe.DefaultGalaxy()
	label := fmt.Sprintf("Galaxy number %d", i)

	center, err := w.vector(ctx, label, "pos")
	if err != nil {
		return cfg, err
	}
	cfg.Center = center

	cfg.Axis, err = Choice(ctx, w.p, Question{
		Prompt: fmt.Sprintf("Which axis should the galaxy number %d be pointed to? [x/y/z]", i),
	}, generate.ParseAxis)
	if err != nil {
		return cfg, err
	}

	cfg.CentralMass, err = Float(ctx, w.p, Question{Prompt: label + " central massive body mass:"}, nonNegative("mass"))
	if err != nil {
		return cfg, err
	}

	cfg.Velocity, err = w.vector(ctx, label, "velocity")
	if err != nil {
		return cfg, err
	}

	cfg.Layers, err = Int(ctx, w.p, Question{Prompt: fmt.Sprintf("How many layers of bodies will the galaxy number %d have?", i)}, 0)
	if err != nil {
		return cfg, err
	}
	if cfg.Layers == 0 {
		cfg.BodiesPerLayer = 0
		return cfg, nil
	}

	cfg.BodiesPerLayer, err = Int(ctx, w.p, Question{Prompt: "How many bodies per layer?"}, 0)
	if err != nil || cfg.BodiesPerLayer == 0 {
		return cfg, err
	}

	cfg.Radius, err = Float(ctx, w.p, Question{Prompt: fmt.Sprintf("galaxy number %d max orbital objects radius", i)}, positive("radius"))
	if err != nil {
		return cfg, err
	}

	cfg.SameMass, err = YesNo(ctx, w.p, Question{Prompt: "These bodies will have the same mass? [Y/n]"})
	if err != nil {
		return cfg, err
	}
	cfg.Aligned, err = YesNo(ctx, w.p, Question{Prompt: "These bodies will be aligned at the start of the simulation? [Y/n]"})
	return cfg, err
}
