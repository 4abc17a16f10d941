package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/girth/builder"
	"github.com/katalvlaran/girth/core"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    Config
	logger *slog.Logger
}

// newRootCmd builds a fresh command tree so tests can run commands in
// isolation.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "girth",
		Short: "Generate positioned graphs and find their shortest cycles",
		Long: `girth builds random graphs over the unit square and reports the
shortest cycle of the whole graph and the cycle through a chosen vertex.

Examples:
  girth generate --vertices 12 --density 0.2 --seed 7 -o graph.yaml
  girth cycle --graph graph.yaml --through 3
  girth cycle --seed 7 --closest 0.4,0.6`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with generation defaults")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log search details to stderr")

	root.AddCommand(newGenerateCmd(a), newCycleCmd(a))

	return root
}

// setup loads the config file and installs the logger.
func (a *app) setup(stderr io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.configPath != "" {
		a.logger.Debug("config loaded", "path", a.configPath)
	}

	return nil
}

// genFlags are the generation flags shared by generate and cycle.
type genFlags struct {
	vertices int
	density  float64
	seed     int64
	margin   float64
}

func (f *genFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.vertices, "vertices", "n", defaultVertices, "number of vertices")
	cmd.Flags().Float64VarP(&f.density, "density", "d", defaultDensity, "edge probability in [0,1]")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default: clock)")
	cmd.Flags().Float64Var(&f.margin, "margin", builder.DefaultMargin, "border kept free of vertices, in [0,0.5)")
}

// apply overlays explicitly set flags on cfg.
func (f *genFlags) apply(cmd *cobra.Command, cfg Config) (Config, error) {
	flags := cmd.Flags()
	if flags.Changed("vertices") {
		cfg.Vertices = f.vertices
	}
	if flags.Changed("density") {
		cfg.Density = f.density
	}
	if flags.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if flags.Changed("margin") {
		margin := f.margin
		cfg.Margin = &margin
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// generate builds the random graph described by cfg.
func (a *app) generate(cfg Config) (*core.Graph, error) {
	g, err := builder.NewRandom(cfg.Vertices, cfg.Density, cfg.builderOptions()...)
	if err != nil {
		return nil, fmt.Errorf("generating graph: %w", err)
	}
	a.logger.Debug("graph generated",
		"vertices", g.Order(),
		"edges", g.Size(),
		"density", cfg.Density,
	)

	return g, nil
}
