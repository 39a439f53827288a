package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel" yaml:"use_parallel"`
	Workers             int           `json:"workers" yaml:"workers"`
	UseCellPool         bool          `json:"use_cell_pool" yaml:"use_cell_pool"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	Pattern             string        `json:"pattern" yaml:"pattern"`
	Seed                int64         `json:"seed" yaml:"seed"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	InjectionCount      int           `json:"injection_count" yaml:"injection_count"`
	Chart               bool          `json:"chart" yaml:"chart"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              64,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         false,
		StagnationThreshold: 5,
		UseParallel:         false,
		Workers:             0, // one per CPU
		UseCellPool:         true,
		MaxGenerations:      1000,
		Pattern:             "default",
		Seed:                1,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Chart:               true,
	}
}

// LoadConfig loads configuration from a YAML (.yaml, .yml) or JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if isYAML(filename) {
		err = yaml.Unmarshal(data, &config)
	} else {
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// SaveConfig writes the configuration as YAML
func SaveConfig(filename string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "[SaveConfig] failed to marshal config")
	}
	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "[SaveConfig] failed to write file: %+v", filename)
	}
	return nil
}

// Validate checks that the configuration can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be in [0, 1], got %v", c.RandomDensity)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}

func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
