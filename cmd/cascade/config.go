package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/phi-cascade/internal/cascade"
)

// fileConfig mirrors cascade.Config for YAML loading. Pointer fields so
// an omitted key keeps the default instead of zeroing it.
type fileConfig struct {
	PrimaryWeight       *float64 `yaml:"primary_weight"`
	ShadowBase          *float64 `yaml:"shadow_base"`
	Decay               *float64 `yaml:"decay"`
	MaxDepth            *int     `yaml:"max_depth"`
	VisibilityThreshold *float64 `yaml:"visibility_threshold"`
}

// loadConfig builds the effective cascade config: the alpha demo
// defaults, overridden by the YAML file when one is given. Per-command
// flags are applied on top by each command.
func loadConfig(path string) (cascade.Config, error) {
	cfg := cascade.AlphaConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var f fileConfig
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if f.PrimaryWeight != nil {
		cfg.PrimaryWeight = *f.PrimaryWeight
	}
	if f.ShadowBase != nil {
		cfg.ShadowBase = *f.ShadowBase
	}
	if f.Decay != nil {
		cfg.Decay = *f.Decay
	}
	if f.MaxDepth != nil {
		cfg.MaxDepth = *f.MaxDepth
	}
	if f.VisibilityThreshold != nil {
		cfg.VisibilityThreshold = *f.VisibilityThreshold
	}

	return cfg, nil
}
