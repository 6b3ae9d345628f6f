package main

import (
	"fmt"

	"github.com/jonathan/survey-charts/internal/config"
)

// resolveConfig builds the effective configuration: built-in defaults, then
// config file values, then SURVEY_CHARTS_* environment overrides, then CLI
// flags (applied by the caller, which always win).
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
