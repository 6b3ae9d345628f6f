package dataset

import (
	"fmt"

	"github.com/jonathan/survey-charts/internal/remap"
	"github.com/jonathan/survey-charts/internal/types"
)

// CoarseName is the registry name of the shared five-bin target binning.
const CoarseName = "coarse"

// Coarse returns the five-bin target binning every survey is remapped into for
// the combined comparison. Five bins keep the chart readable on a slide.
func Coarse() *types.TargetBinning {
	return &types.TargetBinning{
		Name:      CoarseName,
		Bins:      []string{"<25", "25-34", "35-44", "45-54", "55+"},
		Positions: []float64{20, 29.5, 39.5, 49.5, 60},
	}
}

// CoarseRules returns the authored rule set remapping the named survey onto
// the coarse binning. Rules for surveys with a "No answer" bin apply to the
// trimmed distribution (see CoarseInput).
//
// Where a source bin straddles a coarse boundary the split fraction is an
// estimate fixed when the data was authored: openSUSE's "35-49" splits
// 0.67/0.33 across 35-44/45-54, and Debian's decade bins walk a 0.6/0.4
// ladder. These ratios are kept exactly as authored.
func CoarseRules(name string) (*types.RuleSet, error) {
	switch name {
	case NameOpenSUSE:
		return &types.RuleSet{
			Survey: NameOpenSUSE,
			Target: CoarseName,
			Rules: []types.RemappingRule{
				{SourceBin: 0, TargetBin: 0, Fraction: 1},    // ≤25 -> <25
				{SourceBin: 1, TargetBin: 1, Fraction: 1},    // 25-34
				{SourceBin: 2, TargetBin: 2, Fraction: 0.67}, // 35-49 -> 35-44
				{SourceBin: 2, TargetBin: 3, Fraction: 0.33}, // 35-49 -> 45-54
				{SourceBin: 3, TargetBin: 4, Fraction: 1},    // 50+ -> 55+
			},
		}, nil
	case NameStackOverflow2023:
		return &types.RuleSet{
			Survey: NameStackOverflow2023,
			Target: CoarseName,
			Rules: []types.RemappingRule{
				{SourceBin: 0, TargetBin: 0, Fraction: 1}, // <18 -> <25
				{SourceBin: 1, TargetBin: 0, Fraction: 1}, // 18-24 -> <25
				{SourceBin: 2, TargetBin: 1, Fraction: 1}, // 25-34
				{SourceBin: 3, TargetBin: 2, Fraction: 1}, // 35-44
				{SourceBin: 4, TargetBin: 3, Fraction: 1}, // 45-54
				{SourceBin: 5, TargetBin: 4, Fraction: 1}, // 55-64 -> 55+
				{SourceBin: 6, TargetBin: 4, Fraction: 1}, // ≥65 -> 55+
			},
		}, nil
	case NameLinuxFoundation:
		return &types.RuleSet{
			Survey: NameLinuxFoundation,
			Target: CoarseName,
			Rules: []types.RemappingRule{
				{SourceBin: 0, TargetBin: 0, Fraction: 1}, // 18-24 -> <25 (no <18 data)
				{SourceBin: 1, TargetBin: 1, Fraction: 1}, // 25-34
				{SourceBin: 2, TargetBin: 2, Fraction: 1}, // 35-44
				{SourceBin: 3, TargetBin: 3, Fraction: 1}, // 45-54
				{SourceBin: 4, TargetBin: 4, Fraction: 1}, // 55-64 -> 55+
				{SourceBin: 5, TargetBin: 4, Fraction: 1}, // 65-74 -> 55+
				{SourceBin: 6, TargetBin: 4, Fraction: 1}, // ≥75 -> 55+
			},
		}, nil
	case NameDebian:
		return &types.RuleSet{
			Survey: NameDebian,
			Target: CoarseName,
			Rules: []types.RemappingRule{
				{SourceBin: 0, TargetBin: 0, Fraction: 1},   // <20 -> <25
				{SourceBin: 1, TargetBin: 0, Fraction: 0.4}, // 20-29 -> <25
				{SourceBin: 1, TargetBin: 1, Fraction: 0.6}, // 20-29 -> 25-34
				{SourceBin: 2, TargetBin: 1, Fraction: 0.4}, // 30-39 -> 25-34
				{SourceBin: 2, TargetBin: 2, Fraction: 0.6}, // 30-39 -> 35-44
				{SourceBin: 3, TargetBin: 2, Fraction: 0.4}, // 40-49 -> 35-44
				{SourceBin: 3, TargetBin: 3, Fraction: 0.6}, // 40-49 -> 45-54
				{SourceBin: 4, TargetBin: 3, Fraction: 0.4}, // 50-59 -> 45-54
				{SourceBin: 4, TargetBin: 4, Fraction: 0.6}, // 50-59 -> 55+
				{SourceBin: 5, TargetBin: 4, Fraction: 1},   // >60 -> 55+
			},
		}, nil
	case NameCNCF:
		return &types.RuleSet{
			Survey: NameCNCF,
			Target: CoarseName,
			Rules: []types.RemappingRule{
				{SourceBin: 0, TargetBin: 0, Fraction: 1}, // <18 -> <25
				{SourceBin: 1, TargetBin: 0, Fraction: 1}, // 18-24 -> <25
				{SourceBin: 2, TargetBin: 1, Fraction: 1}, // 25-34
				{SourceBin: 3, TargetBin: 2, Fraction: 1}, // 35-44
				{SourceBin: 4, TargetBin: 3, Fraction: 1}, // 45-54
				{SourceBin: 5, TargetBin: 4, Fraction: 1}, // ≥55 -> 55+
			},
		}, nil
	default:
		return nil, fmt.Errorf("no coarse rule set for dataset %q", name)
	}
}

// ComparisonNames lists the surveys included in the coarse comparison, in
// presentation order. Stack Overflow 2023 is last because the combined chart
// draws it as the reference line rather than a bar group.
func ComparisonNames() []string {
	return []string{NameOpenSUSE, NameLinuxFoundation, NameDebian, NameCNCF, NameStackOverflow2023}
}

// CoarseInput returns the values a survey's coarse rule set applies to: the
// distribution with any trailing "No answer" bin removed.
func CoarseInput(d *types.SurveyDistribution) []float64 {
	return d.WithoutNoAnswer().Values
}

// ValidateCoarseRules checks every comparison survey's rule set against its
// dataset; any violation is a fatal authoring error.
func ValidateCoarseRules() error {
	target := Coarse()
	for _, name := range ComparisonNames() {
		d, err := ByName(name)
		if err != nil {
			return err
		}
		rules, err := CoarseRules(name)
		if err != nil {
			return err
		}
		if err := remap.ValidateRuleSet(len(CoarseInput(d)), len(target.Bins), rules); err != nil {
			return err
		}
	}
	return nil
}

// BuildComparison remaps every comparison survey onto the coarse binning.
// Run metadata (RunID, GeneratedAt) is the caller's responsibility.
func BuildComparison() (*types.CoarseComparison, error) {
	target := Coarse()
	cmp := &types.CoarseComparison{Target: *target}

	for _, name := range ComparisonNames() {
		d, err := ByName(name)
		if err != nil {
			return nil, err
		}
		rules, err := CoarseRules(name)
		if err != nil {
			return nil, err
		}
		values, err := remap.Remap(CoarseInput(d), len(target.Bins), rules)
		if err != nil {
			return nil, fmt.Errorf("remapping %s: %w", name, err)
		}
		cmp.Series = append(cmp.Series, types.CoarseSeries{
			Survey:   d.Name,
			Label:    d.Label,
			ColorHex: d.ColorHex,
			Values:   values,
		})
	}
	return cmp, nil
}
