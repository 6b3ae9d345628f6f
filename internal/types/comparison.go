// Package types provides type definitions for structured data used throughout the survey-charts system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// CoarseSeries is one survey's values after remapping onto a target binning.
type CoarseSeries struct {
	Survey   string    `json:"survey"`
	Label    string    `json:"label"`
	ColorHex string    `json:"color_hex,omitempty"`
	Values   []float64 `json:"values"`
}

// CoarseComparison is the exportable cross-survey comparison artifact: every
// survey expressed in the same target binning, plus run metadata.
type CoarseComparison struct {
	Target      TargetBinning  `json:"target"`
	Series      []CoarseSeries `json:"series"`
	RunID       string         `json:"run_id,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}
