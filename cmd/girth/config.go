package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/girth/builder"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	defaultVertices = 12
	defaultDensity  = 0.2
)

// ErrInvalidConfig is returned for config values the builder would reject.
var ErrInvalidConfig = errors.New("girth: invalid config")

// Config holds the generation parameters a config file may override.
// A nil Seed means "seed from the clock".
type Config struct {
	Vertices int      `yaml:"vertices"`
	Density  float64  `yaml:"density"`
	Seed     *int64   `yaml:"seed,omitempty"`
	Margin   *float64 `yaml:"margin,omitempty"`
}

func defaultConfig() Config {
	return Config{Vertices: defaultVertices, Density: defaultDensity}
}

// loadConfig reads path on top of the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err = cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects values that would make builder options panic.
// Vertex count and density are left to the builder's own errors.
func (c Config) validate() error {
	if c.Margin != nil && (*c.Margin < 0 || *c.Margin >= 0.5) {
		return fmt.Errorf("margin %g not in [0, 0.5): %w", *c.Margin, ErrInvalidConfig)
	}

	return nil
}

// builderOptions translates the optional fields into builder options.
func (c Config) builderOptions() []builder.BuilderOption {
	var opts []builder.BuilderOption
	if c.Seed != nil {
		opts = append(opts, builder.WithSeed(*c.Seed))
	}
	if c.Margin != nil {
		opts = append(opts, builder.WithMargin(*c.Margin))
	}

	return opts
}
