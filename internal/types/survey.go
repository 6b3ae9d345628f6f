// Package types provides type definitions for structured data used throughout the survey-charts system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// totalTolerance is how far a survey's value total may drift from 100.
// Several published reports round each bin independently (CNCF sums to 99),
// and "No answer" buckets absorb part of the remainder.
const totalTolerance = 2.0

// NoAnswerBin is the label surveys use for respondents who declined to answer.
const NoAnswerBin = "No answer"

// SurveyDistribution represents one survey's age distribution over its native bins.
// Bins are ordered by ascending age and Values holds the percentage of
// respondents per bin. When a survey publishes raw respondent counts instead of
// percentages, Counts carries them and Values is derived at construction time.
type SurveyDistribution struct {
	Name   string    `json:"name" validate:"required"`
	Label  string    `json:"label" validate:"required"`
	Bins   []string  `json:"bins" validate:"required,min=1,dive,required"`
	Values []float64 `json:"values" validate:"required,min=1,dive,gte=0"`
	Counts []int     `json:"counts,omitempty"`

	// Presentation metadata carried alongside the data so the rendering
	// layer never hardcodes per-survey knowledge.
	ColorHex  string    `json:"color_hex,omitempty"`
	Positions []float64 `json:"positions,omitempty"` // midpoint age per bin
}

// TargetBinning is a fixed ordered set of bins that any SurveyDistribution can
// be remapped into, so differently-binned surveys become comparable.
type TargetBinning struct {
	Name      string    `json:"name" validate:"required"`
	Bins      []string  `json:"bins" validate:"required,min=1,dive,required"`
	Positions []float64 `json:"positions,omitempty"`
}

// RemappingRule assigns a fraction of one source bin's value to one target bin.
type RemappingRule struct {
	SourceBin int     `json:"source_bin" validate:"gte=0"`
	TargetBin int     `json:"target_bin" validate:"gte=0"`
	Fraction  float64 `json:"fraction" validate:"gte=0,lte=1"`
}

// RuleSet groups the remapping rules for one survey against one target binning.
// For every source bin the fractions across all its rules must sum to 1.0, so
// remapping neither creates nor destroys respondent mass.
type RuleSet struct {
	Survey string          `json:"survey" validate:"required"`
	Target string          `json:"target" validate:"required"`
	Rules  []RemappingRule `json:"rules" validate:"required,min=1,dive"`
}

// Total returns the sum of all bin values.
func (d *SurveyDistribution) Total() float64 {
	total := 0.0
	for _, v := range d.Values {
		total += v
	}
	return total
}

// WithoutNoAnswer returns a copy of the distribution with a trailing
// "No answer" bin removed. Charts and remapping rules operate on substantive
// age bins only; the returned copy shares no slices with the receiver.
func (d *SurveyDistribution) WithoutNoAnswer() *SurveyDistribution {
	n := len(d.Bins)
	if n > 0 && d.Bins[n-1] == NoAnswerBin {
		n--
	}
	trimmed := *d
	trimmed.Bins = append([]string(nil), d.Bins[:n]...)
	trimmed.Values = append([]float64(nil), d.Values[:n]...)
	if len(d.Counts) >= n {
		trimmed.Counts = append([]int(nil), d.Counts[:n]...)
	}
	if len(d.Positions) >= n {
		trimmed.Positions = append([]float64(nil), d.Positions[:n]...)
	}
	return &trimmed
}

// Validate checks the distribution's structural and cross-field invariants.
func (d *SurveyDistribution) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("survey %q: %w", d.Name, err)
	}
	if len(d.Values) != len(d.Bins) {
		return fmt.Errorf("survey %q: %d bins but %d values", d.Name, len(d.Bins), len(d.Values))
	}
	if len(d.Counts) > 0 && len(d.Counts) != len(d.Bins) {
		return fmt.Errorf("survey %q: %d bins but %d counts", d.Name, len(d.Bins), len(d.Counts))
	}
	if len(d.Positions) > 0 && len(d.Positions) != len(d.Bins) {
		return fmt.Errorf("survey %q: %d bins but %d positions", d.Name, len(d.Bins), len(d.Positions))
	}
	if total := d.Total(); math.Abs(total-100) > totalTolerance {
		return fmt.Errorf("survey %q: values sum to %.2f, want 100 ± %.0f", d.Name, total, totalTolerance)
	}
	return nil
}

// Validate checks the target binning's structural invariants.
func (t *TargetBinning) Validate() error {
	validate := validator.New()
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("target binning %q: %w", t.Name, err)
	}
	if len(t.Positions) > 0 && len(t.Positions) != len(t.Bins) {
		return fmt.Errorf("target binning %q: %d bins but %d positions", t.Name, len(t.Bins), len(t.Positions))
	}
	return nil
}

// Validate checks the rule set's per-field invariants. The mass-preservation
// invariant (fractions per source bin sum to 1.0) needs the source and target
// bin counts and is checked by the remap package.
func (rs *RuleSet) Validate() error {
	validate := validator.New()
	if err := validate.Struct(rs); err != nil {
		return fmt.Errorf("rule set %q -> %q: %w", rs.Survey, rs.Target, err)
	}
	return nil
}
