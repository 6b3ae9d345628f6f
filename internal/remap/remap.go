// Package remap converts survey distributions between binnings.
//
// Surveys report age distributions over incompatible bin edges. To make them
// comparable, each survey carries a rule set that redistributes its native bin
// values onto a shared target binning. The transform is pure arithmetic over
// immutable inputs; the only failure modes are authoring mistakes in the fixed
// data, which are fatal.
package remap

import (
	"fmt"
	"math"

	"github.com/jonathan/survey-charts/internal/types"
)

// fractionTolerance bounds how far a source bin's rule fractions may stray
// from 1.0 before the rule set is rejected.
const fractionTolerance = 1e-6

// CountsToPercentages converts raw respondent counts into percentages of the
// total. A zero total is a DivisionError rather than a silent NaN.
func CountsToPercentages(counts []int) ([]float64, error) {
	total := 0
	for i, c := range counts {
		if c < 0 {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("count at index %d is negative (%d)", i, c),
			}
		}
		total += c
	}
	if total == 0 {
		return nil, &DivisionError{Message: "cannot convert counts to percentages, total is zero"}
	}

	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c) / float64(total) * 100
	}
	return values, nil
}

// ValidateRuleSet checks that rules redistributes each of sourceBins source
// bins onto targetBins target bins without creating or destroying mass: every
// index must be in range and every source bin's fractions must sum to 1.0
// within fractionTolerance.
func ValidateRuleSet(sourceBins, targetBins int, rules *types.RuleSet) error {
	if err := rules.Validate(); err != nil {
		return &ConfigurationError{Message: "invalid rule set", Cause: err}
	}

	sums := make([]float64, sourceBins)
	for _, r := range rules.Rules {
		if r.SourceBin >= sourceBins {
			return &ConfigurationError{
				Message: fmt.Sprintf("rule set %q: source bin %d out of range (survey has %d bins)",
					rules.Survey, r.SourceBin, sourceBins),
			}
		}
		if r.TargetBin >= targetBins {
			return &ConfigurationError{
				Message: fmt.Sprintf("rule set %q: target bin %d out of range (target has %d bins)",
					rules.Survey, r.TargetBin, targetBins),
			}
		}
		sums[r.SourceBin] += r.Fraction
	}

	for i, sum := range sums {
		if math.Abs(sum-1.0) > fractionTolerance {
			return &ConfigurationError{
				Message: fmt.Sprintf("rule set %q: fractions for source bin %d sum to %.6f, want 1.0",
					rules.Survey, i, sum),
			}
		}
	}
	return nil
}

// Remap redistributes values onto a target binning with targetBins bins.
// For each target bin j the result is the sum of value[r.SourceBin]*r.Fraction
// over all rules with TargetBin j. When the rule set is valid the result total
// equals the input total up to floating-point rounding.
func Remap(values []float64, targetBins int, rules *types.RuleSet) ([]float64, error) {
	if err := ValidateRuleSet(len(values), targetBins, rules); err != nil {
		return nil, err
	}

	target := make([]float64, targetBins)
	for _, r := range rules.Rules {
		target[r.TargetBin] += values[r.SourceBin] * r.Fraction
	}
	return target, nil
}
