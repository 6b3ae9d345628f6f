package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-charts/internal/types"
)

func TestAll_EveryDatasetValidates(t *testing.T) {
	dists, err := All()
	require.NoError(t, err)
	require.Len(t, dists, 8)

	for _, d := range dists {
		assert.NoError(t, d.Validate(), d.Name)
		assert.Len(t, d.Values, len(d.Bins), d.Name)
		assert.InDelta(t, 100, d.Total(), 2.0, d.Name)
	}
}

func TestByName(t *testing.T) {
	d, err := ByName(NameDebian)
	require.NoError(t, err)
	assert.Equal(t, "Debian Contributor Survey 2016", d.Label)
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("gentoo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dataset")
}

func TestDebian_DerivedFromCounts(t *testing.T) {
	d, err := Debian()
	require.NoError(t, err)
	require.Len(t, d.Values, 6)
	assert.InDelta(t, 1.847, d.Values[0], 0.001) // 15 of 812 respondents
	assert.InDelta(t, 100.0, d.Total(), 1e-6)
}

func TestStackOverflow2023_DerivedFromCounts(t *testing.T) {
	d, err := StackOverflow2023()
	require.NoError(t, err)
	require.Len(t, d.Values, 8)
	assert.InDelta(t, 100.0, d.Total(), 1e-6)
	// 33247 of 89184 respondents in 25-34.
	assert.InDelta(t, 37.279, d.Values[2], 0.001)
}

func TestStackOverflowReference_TrimsAndPositions(t *testing.T) {
	d, err := StackOverflow2021()
	require.NoError(t, err)

	ref := StackOverflowReference(d)
	assert.Len(t, ref.Bins, 7)
	assert.Len(t, ref.Values, 7)
	assert.Len(t, ref.Positions, 7)
	assert.NotContains(t, ref.Bins, "No answer")
}

func TestIndividualDatasets_CarryAgePositions(t *testing.T) {
	for _, construct := range []func() (*types.SurveyDistribution, error){
		OpenSUSE, LinuxFoundation, Debian, CNCF,
	} {
		d, err := construct()
		require.NoError(t, err)
		assert.Len(t, d.Positions, len(d.Bins), d.Name)

		plot := d.WithoutNoAnswer()
		require.Len(t, plot.Positions, len(plot.Values), d.Name)
		for i := 1; i < len(plot.Positions); i++ {
			assert.Greater(t, plot.Positions[i], plot.Positions[i-1], d.Name)
		}
	}
}

func TestStackOverflowTrend(t *testing.T) {
	trend, err := StackOverflowTrend()
	require.NoError(t, err)
	require.Len(t, trend, 4)
	for _, d := range trend {
		assert.Len(t, d.Values, 7, d.Name)
		assert.Len(t, d.Positions, 7, d.Name)
	}
}

func TestCNCF_RoundingArtifactPreserved(t *testing.T) {
	d, err := CNCF()
	require.NoError(t, err)
	assert.InDelta(t, 99.0, d.Total(), 1e-9)
}
