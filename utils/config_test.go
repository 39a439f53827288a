package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 64 || cfg.Height != 64 {
		t.Errorf("expected 64x64, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Pattern != "default" {
		t.Errorf("expected pattern default, got %s", cfg.Pattern)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 20, "height": 10, "pattern": "random", "seed": 9, "frame_rate": 50000000}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 10 {
		t.Errorf("expected 20x10, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Pattern != "random" || cfg.Seed != 9 {
		t.Errorf("expected random/9, got %s/%d", cfg.Pattern, cfg.Seed)
	}
	if cfg.FrameRate != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %v", cfg.FrameRate)
	}
	// unset fields keep their defaults
	if cfg.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Errorf("expected default stagnation threshold, got %d", cfg.StagnationThreshold)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "width: 12\nheight: 8\nframe_rate: 250ms\nuse_parallel: true\nworkers: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 8 {
		t.Errorf("expected 12x8, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FrameRate != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.FrameRate)
	}
	if !cfg.UseParallel || cfg.Workers != 2 {
		t.Errorf("expected parallel with 2 workers, got %v/%d", cfg.UseParallel, cfg.Workers)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")
	cfg := DefaultConfig()
	cfg.Width = 30
	cfg.Pattern = "gliders"
	cfg.FrameRate = time.Second

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err = os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err = LoadConfig(path); err == nil {
		t.Error("expected unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
