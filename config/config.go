// Package config provides the configuration system for the tspround CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/salesman/game"
	"github.com/katalvlaran/salesman/tsp"
)

// EnvPrefix prefixes every environment override, e.g. TSPROUND_LOG_LEVEL.
const EnvPrefix = "TSPROUND"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete application configuration
type Config struct {
	Round  RoundConfig  `mapstructure:"round"`
	Solver SolverConfig `mapstructure:"solver"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// RoundConfig controls board generation
type RoundConfig struct {
	Labels      []string `mapstructure:"labels"`
	MinDistance int      `mapstructure:"min_distance"`
	MaxDistance int      `mapstructure:"max_distance"`
	Seed        int64    `mapstructure:"seed"`    // 0: pick one from the clock
	Targets     int      `mapstructure:"targets"` // cities drawn when none are named
}

// SolverConfig controls which strategies run and how far
type SolverConfig struct {
	OpsBudget  float64  `mapstructure:"ops_budget"` // 0: unlimited
	Algorithms []string `mapstructure:"algorithms"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `mapstructure:"format"` // table, yaml, json
}

// DefaultConfig returns a new configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Round: RoundConfig{
			Labels:      append([]string(nil), game.DefaultLabels...),
			MinDistance: game.DefaultMinDistance,
			MaxDistance: game.DefaultMaxDistance,
			Seed:        0,
			Targets:     4,
		},
		Solver: SolverConfig{
			OpsBudget: 5e8,
			Algorithms: []string{
				tsp.BruteForce.Key(),
				tsp.Recursive.Key(),
				tsp.NearestNeighbor.Key(),
				tsp.HeldKarp.Key(),
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Load loads configuration from defaults, an optional YAML file and
// TSPROUND_* environment variables, in increasing priority.
// With an empty configPath, ./tspround.yaml and $HOME/.config/tspround are
// searched; a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Environment: round.min_distance ← TSPROUND_ROUND_MIN_DISTANCE
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("tspround")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tspround")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks every field that the CLI would otherwise reject later,
// so a bad file fails before any round is generated.
func (c *Config) Validate() error {
	if _, err := game.NewLabels(c.Round.Labels...); err != nil {
		return fmt.Errorf("round.labels: %w: %w", ErrInvalidConfig, err)
	}
	if len(c.Round.Labels) < 2 {
		return fmt.Errorf("round.labels: need at least 2 cities: %w", ErrInvalidConfig)
	}
	if c.Round.MinDistance <= 0 || c.Round.MaxDistance < c.Round.MinDistance {
		return fmt.Errorf("round distances: require 0 < min_distance <= max_distance, got %d..%d: %w",
			c.Round.MinDistance, c.Round.MaxDistance, ErrInvalidConfig)
	}
	if c.Round.Targets < 0 || c.Round.Targets > len(c.Round.Labels)-1 {
		return fmt.Errorf("round.targets: %d, want 0..%d: %w", c.Round.Targets, len(c.Round.Labels)-1, ErrInvalidConfig)
	}
	if c.Solver.OpsBudget < 0 {
		return fmt.Errorf("solver.ops_budget: %g is negative: %w", c.Solver.OpsBudget, ErrInvalidConfig)
	}
	if _, err := c.Algorithms(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error): %w", c.Log.Level, ErrInvalidConfig)
	}
	switch c.Output.Format {
	case "table", "yaml", "json":
	default:
		return fmt.Errorf("invalid output format: %s (must be table, yaml or json): %w", c.Output.Format, ErrInvalidConfig)
	}

	return nil
}

// Algorithms parses solver.algorithms; an empty list selects all four.
func (c *Config) Algorithms() ([]tsp.Algorithm, error) {
	if len(c.Solver.Algorithms) == 0 {
		return tsp.Algorithms(), nil
	}
	out := make([]tsp.Algorithm, 0, len(c.Solver.Algorithms))
	for _, s := range c.Solver.Algorithms {
		a, err := tsp.ParseAlgorithm(s)
		if err != nil {
			return nil, fmt.Errorf("solver.algorithms: %w: %w", ErrInvalidConfig, err)
		}
		out = append(out, a)
	}

	return out, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("round.labels", defaults.Round.Labels)
	v.SetDefault("round.min_distance", defaults.Round.MinDistance)
	v.SetDefault("round.max_distance", defaults.Round.MaxDistance)
	v.SetDefault("round.seed", defaults.Round.Seed)
	v.SetDefault("round.targets", defaults.Round.Targets)
	v.SetDefault("solver.ops_budget", defaults.Solver.OpsBudget)
	v.SetDefault("solver.algorithms", defaults.Solver.Algorithms)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("output.format", defaults.Output.Format)
}
