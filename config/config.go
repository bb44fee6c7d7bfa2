// Package config loads and validates the minimal bootstrap configuration a
// headless run needs: grid resolution, tick interval, and world bounds. It
// is explicitly not a worldfile parser — body/model layout stays code- or
// caller-constructed.
package config

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"go.viam.com/stagesim/logging"
)

// Bounds is the world's axis-aligned extent, in meters.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// World is the top-level bootstrap configuration for a headless run.
type World struct {
	// PixelsPerMeter sets the spatial index's raster resolution.
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	// TickIntervalUS is interval_sim, in microseconds.
	TickIntervalUS int64 `yaml:"tick_interval_us"`
	// Bounds is informational for now: it is validated but not enforced by
	// the index itself, which grows pixel tiles lazily on demand.
	Bounds Bounds `yaml:"bounds"`
	// LogLevel is parsed with logging.LevelFromString.
	LogLevel string `yaml:"log_level"`
}

// Default returns a World with reasonable defaults for local runs: 20
// pixels/meter, a 10ms tick, a 100x100m bounds box, info logging.
func Default() World {
	return World{
		PixelsPerMeter: 20,
		TickIntervalUS: 10_000,
		Bounds:         Bounds{MinX: -50, MinY: -50, MaxX: 50, MaxY: 50},
		LogLevel:       "info",
	}
}

// Load reads and parses a World from a YAML file at path, then validates
// it.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field for internal consistency, aggregating all
// failures rather than stopping at the first one.
func (w *World) Validate() error {
	var err error
	if w.PixelsPerMeter <= 0 {
		err = multierr.Append(err, errors.Errorf("pixels_per_meter must be positive, got %v", w.PixelsPerMeter))
	}
	if w.TickIntervalUS <= 0 {
		err = multierr.Append(err, errors.Errorf("tick_interval_us must be positive, got %v", w.TickIntervalUS))
	}
	if w.Bounds.MaxX <= w.Bounds.MinX {
		err = multierr.Append(err, errors.Errorf("bounds.max_x (%v) must exceed bounds.min_x (%v)", w.Bounds.MaxX, w.Bounds.MinX))
	}
	if w.Bounds.MaxY <= w.Bounds.MinY {
		err = multierr.Append(err, errors.Errorf("bounds.max_y (%v) must exceed bounds.min_y (%v)", w.Bounds.MaxY, w.Bounds.MinY))
	}
	if w.LogLevel != "" {
		if _, lerr := logging.LevelFromString(w.LogLevel); lerr != nil {
			err = multierr.Append(err, errors.Wrap(lerr, "config"))
		}
	}
	return err
}

// Level parses LogLevel, defaulting to logging.INFO if unset.
func (w *World) Level() logging.Level {
	if w.LogLevel == "" {
		return logging.INFO
	}
	lvl, err := logging.LevelFromString(w.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return lvl
}
