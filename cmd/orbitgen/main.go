package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/inspect"
	"github.com/san-kum/orbitgen/internal/logging"
	"github.com/san-kum/orbitgen/internal/orbit"
	"github.com/san-kum/orbitgen/internal/recipe"
	"github.com/san-kum/orbitgen/internal/storage"
	"github.com/san-kum/orbitgen/internal/vec"
	"github.com/san-kum/orbitgen/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	logLevel   string
	strategy   string
	seed       int64
	buildSeed  int64
	name       string
	plain      bool
	recipeOut  string
	preset     string
	toStdout   bool
	limit      int
	center     int
	plotWidth  int
	plotHeight int
	// velocity command
	centerMass float64
	centerPos  string
	satPos     string
	parentVel  string

	logger *log.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the orbitgen commands. The root runs the wizard when
// no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "orbitgen",
		Short:        "celestial body config generator for the n-body simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(os.Stderr, logLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: runWizard,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", storage.DefaultDir, "config output directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "legacy", "perpendicular construction (legacy, cross)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "plain line prompts")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "interactively describe a system and save its config",
		Args:  cobra.NoArgs,
		RunE:  runWizard,
	}
	newCmd.Flags().BoolVar(&plain, "plain", false, "plain line prompts")
	newCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	newCmd.Flags().StringVar(&name, "name", "", "output name (skips the filename question)")
	newCmd.Flags().StringVar(&recipeOut, "save-recipe", "", "also write the answers as a yaml recipe")

	buildCmd := &cobra.Command{
		Use:   "build [recipe.yaml]",
		Short: "generate a config from a recipe or preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  buildRecipe,
	}
	buildCmd.Flags().StringVar(&preset, "preset", "", "use a built-in recipe")
	buildCmd.Flags().StringVar(&name, "name", "", "output name (overrides the recipe)")
	buildCmd.Flags().Int64Var(&buildSeed, "seed", 0, "random seed (overrides the recipe)")
	buildCmd.Flags().BoolVar(&toStdout, "stdout", false, "write json to stdout instead of the config directory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in recipes",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list generated configs",
		Args:  cobra.NoArgs,
		RunE:  listConfigs,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [name|path]",
		Short: "summarize a generated config",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectConfig,
	}
	inspectCmd.Flags().IntVar(&limit, "limit", 20, "bodies to list (0 for all)")
	inspectCmd.Flags().IntVar(&center, "center", 0, "body index the speed profile is relative to")
	inspectCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	inspectCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	velocityCmd := &cobra.Command{
		Use:   "velocity",
		Short: "compute the circular orbit velocity of one satellite",
		Args:  cobra.NoArgs,
		RunE:  computeVelocity,
	}
	velocityCmd.Flags().Float64Var(&centerMass, "mass", 0, "central body mass")
	velocityCmd.Flags().StringVar(&centerPos, "center", "0,0,0", "central body position x,y,z")
	velocityCmd.Flags().StringVar(&satPos, "sat", "", "satellite position x,y,z")
	velocityCmd.Flags().StringVar(&parentVel, "parent", "0,0,0", "parent frame velocity x,y,z")
	_ = velocityCmd.MarkFlagRequired("mass")
	_ = velocityCmd.MarkFlagRequired("sat")

	rootCmd.AddCommand(newCmd, buildCmd, presetsCmd, listCmd, inspectCmd, velocityCmd)
	return rootCmd
}

func parseStrategy() (orbit.Strategy, error) {
	return orbit.ParseStrategy(strategy)
}

func runWizard(cmd *cobra.Command, args []string) error {
	s, err := parseStrategy()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var p wizard.Prompter
	if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		p = wizard.NewLinePrompter(os.Stdin, os.Stdout)
	} else {
		p = wizard.NewTeaPrompter(os.Stdin, os.Stdout)
	}

	w := wizard.New(p, logger, seed, s)
	w.AskName = name == ""

	res, err := w.Run(ctx)
	if err != nil {
		return err
	}
	if name != "" {
		res.Name = name
		res.Recipe.Name = name
	}

	st := storage.New(dataDir, logger)
	path, err := st.Save(res.Name, res.Document)
	if err != nil {
		return err
	}
	fmt.Printf("saved %d bodies to %s\n", len(res.Document.Bodies), path)

	if recipeOut != "" {
		if err := recipe.Save(recipeOut, res.Recipe); err != nil {
			return fmt.Errorf("failed to save recipe: %w", err)
		}
		logger.Info("recipe saved", "path", recipeOut)
	}
	return nil
}

func buildRecipe(cmd *cobra.Command, args []string) error {
	var r *recipe.Recipe
	switch {
	case preset != "":
		r = recipe.GetPreset(preset)
		if r == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, recipe.ListPresets())
		}
	case len(args) == 1:
		loaded, err := recipe.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load recipe: %w", err)
		}
		r = loaded
	default:
		return fmt.Errorf("need a recipe file or --preset")
	}

	if cmd.Flags().Changed("name") {
		r.Name = name
	}
	if cmd.Flags().Changed("seed") {
		r.Seed = buildSeed
	}
	if cmd.Flags().Changed("strategy") {
		s, err := parseStrategy()
		if err != nil {
			return err
		}
		r.Strategy = s
	}

	start := time.Now()
	doc, err := r.Build()
	if err != nil {
		return err
	}
	logger.Debug("recipe built", "kind", r.Kind, "bodies", len(doc.Bodies), "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	if toStdout {
		return celestial.Encode(out, doc)
	}

	if r.Name == "" {
		return fmt.Errorf("recipe has no name; pass --name")
	}
	path, err := storage.New(dataDir, logger).Save(r.Name, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %d bodies to %s\n", len(doc.Bodies), path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tBODIES\tDT")

	for _, n := range recipe.ListPresets() {
		r := recipe.GetPreset(n)
		bodies := len(r.Binary)
		for _, g := range r.Galaxies {
			bodies += 1 + g.Spec().Satellites()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\n", n, r.Kind, bodies, r.DtMultiplier)
	}

	return w.Flush()
}

func listConfigs(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, logger)
	entries, err := st.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("no configs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tDT\tMODIFIED\tPATH")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%g\t%s\t%s\n",
			e.Name,
			e.Bodies,
			e.DtMultiplier,
			e.ModTime.Format("2006-01-02 15:04:05"),
			e.Path,
		)
	}

	return w.Flush()
}

func inspectConfig(cmd *cobra.Command, args []string) error {
	ref := args[0]

	doc, err := storage.New(dataDir, logger).Resolve(ref)
	if err != nil {
		return err
	}

	inspect.WriteSummary(os.Stdout, ref, doc)
	fmt.Println()
	if err := inspect.WriteTable(os.Stdout, doc, limit); err != nil {
		return err
	}

	if len(doc.Bodies) < 2 {
		return nil
	}
	points, err := inspect.SpeedProfile(doc, center)
	if err != nil {
		return err
	}
	if plot := inspect.Plot(points, plotWidth, plotHeight); plot != "" {
		fmt.Println()
		fmt.Println(plot)
	}
	return nil
}

func computeVelocity(cmd *cobra.Command, args []string) error {
	s, err := parseStrategy()
	if err != nil {
		return err
	}

	c, err := parseVec(centerPos)
	if err != nil {
		return err
	}
	sat, err := parseVec(satPos)
	if err != nil {
		return err
	}
	parent, err := parseVec(parentVel)
	if err != nil {
		return err
	}

	p := orbit.NewPlacer(s)
	v, err := p.Place(centerMass, c, sat, parent)
	if err != nil {
		return err
	}
	speed, err := p.Speed(centerMass, c.Sub(sat).Norm())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "distance: %g\n", c.Sub(sat).Norm())
	fmt.Fprintf(out, "speed:    %g\n", speed)
	fmt.Fprintf(out, "velocity: %v\n", v)
	return nil
}

// parseVec reads "x,y,z"; a missing z is zero.
func parseVec(s string) (vec.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return vec.Vec3{}, celestial.Invalid("vector", s, "want x,y[,z]")
	}

	var c [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return vec.Vec3{}, celestial.Invalid("vector", s, "components must be numbers")
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return vec.Vec3{}, celestial.Invalid("vector", s, "components must be finite")
		}
		c[i] = v
	}
	return vec.New(c[0], c[1], c[2]), nil
}
