// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Formats the rendering layer can write.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Config represents the chart output settings. Figure dimensions and DPI are
// explicit here and passed into rendering calls; nothing reads them from
// package globals. All fields are optional in a config file; missing values
// fall back to Defaults via MergeWithDefaults.
type Config struct {
	// Dimensions, in pixels
	ChartWidth     int `json:"chart_width,omitempty" validate:"gte=0"`
	ChartHeight    int `json:"chart_height,omitempty" validate:"gte=0"`
	CombinedWidth  int `json:"combined_width,omitempty" validate:"gte=0"`
	CombinedHeight int `json:"combined_height,omitempty" validate:"gte=0"`

	// DPI scales fonts and strokes in rasterized output
	DPI float64 `json:"dpi,omitempty" validate:"gte=0"`

	// Output
	OutDir string `json:"out_dir,omitempty"`
	Format string `json:"format,omitempty" validate:"omitempty,oneof=png svg"`
}

// Defaults returns the built-in configuration: 4:3 individual charts, a wider
// combined chart, and go-chart's native 92 DPI.
func Defaults() Config {
	return Config{
		ChartWidth:     800,
		ChartHeight:    600,
		CombinedWidth:  1400,
		CombinedHeight: 800,
		DPI:            92,
		OutDir:         "media",
		Format:         FormatPNG,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// envInt overlays an integer environment variable onto dst if it is set.
func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config error: %s %q is not an integer: %w", key, v, err)
	}
	*dst = n
	return nil
}

// ApplyEnv overlays SURVEY_CHARTS_* environment variables onto the config.
// The .env file, if any, is loaded by main before this runs.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SURVEY_CHARTS_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv("SURVEY_CHARTS_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("SURVEY_CHARTS_DPI"); v != "" {
		dpi, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config error: SURVEY_CHARTS_DPI %q is not a number: %w", v, err)
		}
		c.DPI = dpi
	}

	dimensions := []struct {
		key string
		dst *int
	}{
		{"SURVEY_CHARTS_CHART_WIDTH", &c.ChartWidth},
		{"SURVEY_CHARTS_CHART_HEIGHT", &c.ChartHeight},
		{"SURVEY_CHARTS_COMBINED_WIDTH", &c.CombinedWidth},
		{"SURVEY_CHARTS_COMBINED_HEIGHT", &c.CombinedHeight},
	}
	for _, dim := range dimensions {
		if err := envInt(dim.key, dim.dst); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values over the built-in
// defaults before CLI flags win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ChartWidth == 0 {
		result.ChartWidth = defaults.ChartWidth
	}
	if result.ChartHeight == 0 {
		result.ChartHeight = defaults.ChartHeight
	}
	if result.CombinedWidth == 0 {
		result.CombinedWidth = defaults.CombinedWidth
	}
	if result.CombinedHeight == 0 {
		result.CombinedHeight = defaults.CombinedHeight
	}
	if result.DPI == 0 {
		result.DPI = defaults.DPI
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	return result
}
