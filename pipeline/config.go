// Package pipeline - configuration loading and validation.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy values for Config.OnInsufficient and Config.OnUndefined.
const (
	PolicyFail       = "fail"
	PolicySkip       = "skip"
	PolicyDropGroups = "drop-groups"
)

var (
	// ErrBadConfig is returned by Validate/LoadConfig for out-of-range or
	// inconsistent configuration.
	ErrBadConfig = errors.New("pipeline: invalid configuration")

	// ErrTooFewGroups is returned when fewer than 2 groups survive a
	// policy (skip/drop) — nothing left to compare.
	ErrTooFewGroups = errors.New("pipeline: fewer than 2 groups remain")
)

// GridConfig mirrors curve.NewGrid parameters.
type GridConfig struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// SmoothingConfig mirrors loess.Options.
type SmoothingConfig struct {
	Degree int     `yaml:"degree"`
	Span   float64 `yaml:"span"`
}

// SelectionConfig mirrors kselect.Options (the scalar knobs).
type SelectionConfig struct {
	KMin       int   `yaml:"k_min"`
	KMax       int   `yaml:"k_max"`
	Replicates int   `yaml:"replicates"`
	Seed       int64 `yaml:"seed"`
}

// Config is the full recognized configuration surface of the pipeline.
type Config struct {
	Grid           GridConfig      `yaml:"grid"`
	Smoothing      SmoothingConfig `yaml:"smoothing"`
	Selection      SelectionConfig `yaml:"selection"`
	Epsilon        float64         `yaml:"epsilon"`
	Workers        int             `yaml:"workers"`
	OnInsufficient string          `yaml:"on_insufficient"`
	OnUndefined    string          `yaml:"on_undefined"`
}

// DefaultConfig returns the canonical configuration for a grid over
// [start, stop] with the given step: degree-2/span-0.75 smoothing,
// k in [2, 8], 100 replicates, fail-fast policies.
func DefaultConfig(start, stop, step float64) Config {
	return Config{
		Grid:           GridConfig{Start: start, Stop: stop, Step: step},
		Smoothing:      SmoothingConfig{Degree: 2, Span: 0.75},
		Selection:      SelectionConfig{KMin: 2, KMax: 8, Replicates: 100, Seed: 0},
		Epsilon:        0, // 0 selects the distmat default
		Workers:        0, // 0 selects GOMAXPROCS
		OnInsufficient: PolicyFail,
		OnUndefined:    PolicyFail,
	}
}

// LoadConfig reads and validates a YAML configuration file. Unset policy
// strings resolve to the fail-fast defaults before validation.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: reading config file: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: parsing config YAML: %w", err)
	}

	cfg.applyDefaults()
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults resolves zero-valued optional fields so downstream code is
// branch-free.
func (c *Config) applyDefaults() {
	if c.OnInsufficient == "" {
		c.OnInsufficient = PolicyFail
	}
	if c.OnUndefined == "" {
		c.OnUndefined = PolicyFail
	}
	if c.Smoothing.Degree == 0 {
		c.Smoothing.Degree = 2
	}
	if c.Smoothing.Span == 0 {
		c.Smoothing.Span = 0.75
	}
	if c.Selection.KMin == 0 {
		c.Selection.KMin = 2
	}
	if c.Selection.Replicates == 0 {
		c.Selection.Replicates = 100
	}
}

// Validate checks the configuration before any stage runs, so per-group
// errors during the run are genuinely data errors, not config errors.
func (c Config) Validate() error {
	if c.Grid.Step <= 0 || c.Grid.Stop < c.Grid.Start {
		return fmt.Errorf("%w: grid", ErrBadConfig)
	}
	if c.Smoothing.Degree < 1 || c.Smoothing.Degree > 6 {
		return fmt.Errorf("%w: smoothing.degree", ErrBadConfig)
	}
	if c.Smoothing.Span <= 0 || c.Smoothing.Span > 1 {
		return fmt.Errorf("%w: smoothing.span", ErrBadConfig)
	}
	if c.Selection.KMin < 2 || c.Selection.KMax < c.Selection.KMin {
		return fmt.Errorf("%w: selection k range", ErrBadConfig)
	}
	if c.Selection.Replicates < 1 {
		return fmt.Errorf("%w: selection.replicates", ErrBadConfig)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon", ErrBadConfig)
	}
	if c.OnInsufficient != PolicyFail && c.OnInsufficient != PolicySkip {
		return fmt.Errorf("%w: on_insufficient %q", ErrBadConfig, c.OnInsufficient)
	}
	if c.OnUndefined != PolicyFail && c.OnUndefined != PolicyDropGroups {
		return fmt.Errorf("%w: on_undefined %q", ErrBadConfig, c.OnUndefined)
	}

	return nil
}
