// Package benchconfig holds the scenarios run by the benchmark commands.
// Scenarios come from a TOML or YAML file laid over Default.
package benchconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalid       = errors.New("invalid config")
)

type Config struct {
	LogLevel    string            `toml:"log_level" yaml:"log_level"`
	Propagation PropagationConfig `toml:"propagation" yaml:"propagation"`
	Collections CollectionsConfig `toml:"collections" yaml:"collections"`
}

// PropagationConfig describes binding chains: Width chains of Height
// bindings hanging off one property, written Iterations times.
type PropagationConfig struct {
	Widths     []int `toml:"widths" yaml:"widths"`
	Heights    []int `toml:"heights" yaml:"heights"`
	Iterations int   `toml:"iterations" yaml:"iterations"`
}

// CollectionsConfig describes list -> filtered -> sorted pipelines.
type CollectionsConfig struct {
	Sizes          []int   `toml:"sizes" yaml:"sizes"`
	Repeats        int     `toml:"repeats" yaml:"repeats"`
	UpdateFraction float64 `toml:"update_fraction" yaml:"update_fraction"`
	Seed           int64   `toml:"seed" yaml:"seed"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Propagation: PropagationConfig{
			Widths:     []int{1, 10, 100, 1_000},
			Heights:    []int{1, 10, 100, 1_000},
			Iterations: 100,
		},
		Collections: CollectionsConfig{
			Sizes:          []int{100, 1_000, 10_000},
			Repeats:        5,
			UpdateFraction: 0.1,
		},
	}
}

// Load reads path over the defaults. An empty path means the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for _, sizes := range [][]int{c.Propagation.Widths, c.Propagation.Heights, c.Collections.Sizes} {
		for _, n := range sizes {
			if n <= 0 {
				return fmt.Errorf("%w: sizes must be positive, got %d", ErrInvalid, n)
			}
		}
	}
	if c.Propagation.Iterations <= 0 {
		return fmt.Errorf("%w: propagation iterations must be positive", ErrInvalid)
	}
	if c.Collections.Repeats <= 0 {
		return fmt.Errorf("%w: collection repeats must be positive", ErrInvalid)
	}
	if f := c.Collections.UpdateFraction; f < 0 || f > 1 {
		return fmt.Errorf("%w: update fraction %v outside [0, 1]", ErrInvalid, f)
	}
	return nil
}
