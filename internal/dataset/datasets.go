// Package dataset carries the fixed survey data the charts are built from.
//
// Sources:
//
//	openSUSE Maintainers Survey (2021), 182 respondents
//	https://en.opensuse.org/Maintainers-surveys_2021
//
//	Stack Overflow Developer Survey 2016/2021/2023/2025
//	https://survey.stackoverflow.co/2023/#developer-profile-demographics
//
//	Linux Foundation Diversity, Equity, and Inclusion in Open Source (2021)
//	https://8112310.fs1.hubspotusercontent-na1.net/hubfs/8112310/LF%20Research/2021%20DEI%20Survey%20-%20Report.pdf
//
//	Debian Project Survey 2016
//	https://dcpc.info/wp-content/uploads/2021/12/DCPC_2016_debian_survey.pdf
//
//	CNCF: DeveloperNation report, State of Cloud Native Development, Q1 2025
//	https://www.cncf.io/wp-content/uploads/2025/04/Blue-DN29-State-of-Cloud-Native-Development.pdf
//
// All data is fixed at authoring time. Constructors validate on every call so
// an authoring mistake surfaces immediately instead of producing a misleading
// chart.
package dataset

import (
	"fmt"

	"github.com/jonathan/survey-charts/internal/remap"
	"github.com/jonathan/survey-charts/internal/types"
)

// Dataset names, used for registry lookup and rule-set association.
const (
	NameOpenSUSE          = "opensuse"
	NameStackOverflow2016 = "stackoverflow-2016"
	NameStackOverflow2021 = "stackoverflow-2021"
	NameStackOverflow2023 = "stackoverflow-2023"
	NameStackOverflow2025 = "stackoverflow-2025"
	NameLinuxFoundation   = "linux-foundation"
	NameDebian            = "debian"
	NameCNCF              = "cncf"
)

// stackOverflowBins are the substantive Stack Overflow age bins, shared by
// every survey year and used as the reference axis across charts.
var stackOverflowBins = []string{"<18", "18-24", "25-34", "35-44", "45-54", "55-64", "≥65"}

// stackOverflowPositions are the bin midpoint ages used to place Stack
// Overflow values on a shared age axis.
var stackOverflowPositions = []float64{16, 21, 29.5, 39.5, 49.5, 59.5, 70}

// OpenSUSE returns the openSUSE Maintainers Survey 2021 distribution.
func OpenSUSE() (*types.SurveyDistribution, error) {
	d := &types.SurveyDistribution{
		Name:      NameOpenSUSE,
		Label:     "openSUSE Maintainers Survey (2021)",
		Bins:      []string{"≤25", "25-34", "35-49", "50+"},
		Values:    []float64{19, 26, 42, 12.5},
		ColorHex:  "#73ba25",
		Positions: []float64{20, 29.5, 42, 60},
	}
	return d, d.Validate()
}

// StackOverflow2023 returns the Stack Overflow 2023 distribution, derived from
// the published respondent counts (89184 responses).
func StackOverflow2023() (*types.SurveyDistribution, error) {
	counts := []int{4128, 17931, 33247, 20532, 8334, 3392, 1171, 449}
	values, err := remap.CountsToPercentages(counts)
	if err != nil {
		return nil, fmt.Errorf("stackoverflow 2023: %w", err)
	}
	d := &types.SurveyDistribution{
		Name:     NameStackOverflow2023,
		Label:    "Stack Overflow (2023)",
		Bins:     append(append([]string(nil), stackOverflowBins...), types.NoAnswerBin),
		Values:   values,
		Counts:   counts,
		ColorHex: "#f48024",
	}
	return d, d.Validate()
}

// StackOverflow2025 returns the Stack Overflow 2025 distribution
// (49019 responses). No "<18" percentage was published.
func StackOverflow2025() (*types.SurveyDistribution, error) {
	d := &types.SurveyDistribution{
		Name:     NameStackOverflow2025,
		Label:    "Stack Overflow (2025)",
		Bins:     append(append([]string(nil), stackOverflowBins...), types.NoAnswerBin),
		Values:   []float64{0, 18.7, 33.6, 26.9, 12.8, 5.3, 1.9, 0.8},
		ColorHex: "#5BC0EB",
	}
	return d, d.Validate()
}

// StackOverflow2021 returns the Stack Overflow 2021 distribution
// (82407 responses).
func StackOverflow2021() (*types.SurveyDistribution, error) {
	d := &types.SurveyDistribution{
		Name:     NameStackOverflow2021,
		Label:    "Stack Overflow (2021)",
		Bins:     append(append([]string(nil), stackOverflowBins...), types.NoAnswerBin),
		Values:   []float64{6.52, 25.47, 39.52, 18.42, 6.64, 2.21, 0.51, 0.7},
		ColorHex: "#8AC926",
	}
	return d, d.Validate()
}

// StackOverflow2016 returns the Stack Overflow 2016 distribution
// (55338 responses), re-expressed in the shared Stack Overflow bins.
//
// The 2016 survey used different bin edges (<20, 20-24, 25-29, 30-34, 35-39,
// 40-49, 50-59, >60), so the published percentages were redistributed onto the
// shared bins when this dataset was authored: ~60% of "<20" lands in "<18",
// the remainder joins "20-24"; "40-49" and "50-59" split evenly across the
// bins they straddle; ">60" is shared between "55-64" and "≥65". These are
// estimated splits, kept exactly as authored.
func StackOverflow2016() (*types.SurveyDistribution, error) {
	d := &types.SurveyDistribution{
		Name:      NameStackOverflow2016,
		Label:     "Stack Overflow (2016)",
		Bins:      append([]string(nil), stackOverflowBins...),
		Values:    []float64{4.3, 26.4, 46.5, 14.7, 6.0, 2.0, 0.3},
		ColorHex:  "#6A4C93",
		Positions: append([]float64(nil), stackOverflowPositions...),
	}
	return d, d.Validate()
}

// LinuxFoundation returns the Linux Foundation DEI Survey 2021 distribution.
// The "No answer" bin has no age midpoint; its position is never plotted.
func LinuxFoundation() (*types.SurveyDistribution, error) {
	d := &types.SurveyDistribution{
		Name:      NameLinuxFoundation,
		Label:     "Linux Foundation Survey 2021",
		Bins:      []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65-74", "≥75", types.NoAnswerBin},
		Values:    []float64{8, 22, 29, 21, 13, 4, 2, 1},
		ColorHex:  "#003764",
		Positions: []float64{21, 29.5, 39.5, 49.5, 59.5, 69.5, 77.5, 0},
	}
	return d, d.Validate()
}

// Debian returns the Debian Project Survey 2016 distribution, derived from the
// published respondent counts (812 responses).
func Debian() (*types.SurveyDistribution, error) {
	counts := []int{15, 132, 378, 225, 57, 15}
	values, err := remap.CountsToPercentages(counts)
	if err != nil {
		return nil, fmt.Errorf("debian: %w", err)
	}
	d := &types.SurveyDistribution{
		Name:      NameDebian,
		Label:     "Debian Contributor Survey 2016",
		Bins:      []string{"<20", "20-29", "30-39", "40-49", "50-59", ">60"},
		Values:    values,
		Counts:    counts,
		ColorHex:  "#d70751",
		Positions: []float64{16, 24.5, 34.5, 44.5, 54.5, 65},
	}
	return d, d.Validate()
}

// CNCF returns the CNCF Q1 2025 distribution (10500 respondents). The
// published percentages sum to 99, a rounding artifact in the source report
// that is preserved rather than corrected.
func CNCF() (*types.SurveyDistribution, error) {
	d := &types.SurveyDistribution{
		Name:      NameCNCF,
		Label:     "CNCF Age Distribution",
		Bins:      []string{"<18", "18-24", "25-34", "35-44", "45-54", "≥55"},
		Values:    []float64{1, 22, 32, 25, 12, 7},
		ColorHex:  "#326ce5",
		Positions: []float64{13, 21, 29.5, 39.5, 49.5, 60},
	}
	return d, d.Validate()
}

// All returns every dataset in presentation order.
func All() ([]*types.SurveyDistribution, error) {
	constructors := []func() (*types.SurveyDistribution, error){
		OpenSUSE,
		StackOverflow2016,
		StackOverflow2021,
		StackOverflow2023,
		StackOverflow2025,
		LinuxFoundation,
		Debian,
		CNCF,
	}

	dists := make([]*types.SurveyDistribution, 0, len(constructors))
	for _, construct := range constructors {
		d, err := construct()
		if err != nil {
			return nil, err
		}
		dists = append(dists, d)
	}
	return dists, nil
}

// ByName returns the dataset with the given registry name.
func ByName(name string) (*types.SurveyDistribution, error) {
	dists, err := All()
	if err != nil {
		return nil, err
	}
	for _, d := range dists {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown dataset %q", name)
}

// StackOverflowReference returns the given Stack Overflow year trimmed to its
// substantive bins and placed on the shared age axis, for use as the reference
// line on other surveys' charts.
func StackOverflowReference(d *types.SurveyDistribution) *types.SurveyDistribution {
	ref := d.WithoutNoAnswer()
	ref.Positions = append([]float64(nil), stackOverflowPositions...)
	return ref
}

// StackOverflowTrend returns the four Stack Overflow survey years trimmed and
// positioned for the multi-year trend chart.
func StackOverflowTrend() ([]*types.SurveyDistribution, error) {
	constructors := []func() (*types.SurveyDistribution, error){
		StackOverflow2016,
		StackOverflow2021,
		StackOverflow2023,
		StackOverflow2025,
	}

	trend := make([]*types.SurveyDistribution, 0, len(constructors))
	for _, construct := range constructors {
		d, err := construct()
		if err != nil {
			return nil, err
		}
		trend = append(trend, StackOverflowReference(d))
	}
	return trend, nil
}
