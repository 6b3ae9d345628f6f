package rendering

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/jonathan/survey-charts/internal/config"
	"github.com/jonathan/survey-charts/internal/dataset"
	"github.com/jonathan/survey-charts/internal/types"
)

func stackOverflowRef(t *testing.T, construct func() (*types.SurveyDistribution, error)) *types.SurveyDistribution {
	t.Helper()
	d, err := construct()
	require.NoError(t, err)
	return dataset.StackOverflowReference(d)
}

func TestSurveyChart_RendersPNG(t *testing.T) {
	d, err := dataset.OpenSUSE()
	require.NoError(t, err)

	graph, err := SurveyChart(d, stackOverflowRef(t, dataset.StackOverflow2021), config.Defaults())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderTo(graph, &buf, config.FormatPNG))
	assert.NotZero(t, buf.Len())
}

func TestSurveyChart_IncludesReferenceSeries(t *testing.T) {
	d, err := dataset.CNCF()
	require.NoError(t, err)

	graph, err := SurveyChart(d, stackOverflowRef(t, dataset.StackOverflow2025), config.Defaults())
	require.NoError(t, err)
	require.Len(t, graph.Series, 2)

	survey, ok := graph.Series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, "CNCF Age Distribution", survey.Name)
	assert.Empty(t, survey.Style.StrokeDashArray)

	ref, ok := graph.Series[1].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, "Stack Overflow (2025)", ref.Name)
	assert.NotEmpty(t, ref.Style.StrokeDashArray, "reference line should be dashed")
}

func TestSurveyChart_NilReference(t *testing.T) {
	d, err := dataset.Debian()
	require.NoError(t, err)

	graph, err := SurveyChart(d, nil, config.Defaults())
	require.NoError(t, err)
	assert.Len(t, graph.Series, 1)
}

func TestSurveyChart_TrimsNoAnswer(t *testing.T) {
	d, err := dataset.LinuxFoundation()
	require.NoError(t, err)

	graph, err := SurveyChart(d, stackOverflowRef(t, dataset.StackOverflow2021), config.Defaults())
	require.NoError(t, err)

	survey, ok := graph.Series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Len(t, survey.YValues, 7) // 8 native bins minus "No answer"
	// The ≥75 bin sits at 77.5, so the axis must stretch past it.
	assert.Len(t, graph.XAxis.Ticks, 7)
}

func TestSurveyChart_MissingPositions(t *testing.T) {
	d := &types.SurveyDistribution{
		Name:   "unplaced",
		Label:  "Unplaced Survey",
		Bins:   []string{"<25", "25+"},
		Values: []float64{40, 60},
	}

	_, err := SurveyChart(d, nil, config.Defaults())
	require.Error(t, err)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestTrendLineChart_RendersSVG(t *testing.T) {
	trend, err := dataset.StackOverflowTrend()
	require.NoError(t, err)

	graph, err := TrendLineChart("Stack Overflow Developer Survey", trend, config.Defaults())
	require.NoError(t, err)
	require.Len(t, graph.Series, 4)

	var buf bytes.Buffer
	require.NoError(t, RenderTo(graph, &buf, config.FormatSVG))
	assert.Contains(t, buf.String(), "<svg")
}

func TestTrendLineChart_MissingPositions(t *testing.T) {
	d := &types.SurveyDistribution{
		Name:   "unplaced",
		Label:  "Unplaced Survey",
		Bins:   []string{"<25", "25+"},
		Values: []float64{40, 60},
	}

	_, err := TrendLineChart("title", []*types.SurveyDistribution{d}, config.Defaults())
	require.Error(t, err)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestComparisonChart_Renders(t *testing.T) {
	cmp, err := dataset.BuildComparison()
	require.NoError(t, err)

	graph, err := ComparisonChart(cmp, stackOverflowRef(t, dataset.StackOverflow2023), config.Defaults())
	require.NoError(t, err)
	// Four remapped surveys plus the dashed reference line.
	require.Len(t, graph.Series, 5)

	var buf bytes.Buffer
	require.NoError(t, RenderTo(graph, &buf, config.FormatPNG))
	assert.NotZero(t, buf.Len())
}

func TestWriteChart(t *testing.T) {
	d, err := dataset.Debian()
	require.NoError(t, err)

	graph, err := SurveyChart(d, stackOverflowRef(t, dataset.StackOverflow2016), config.Defaults())
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "media")
	path, err := WriteChart(graph, outDir, "debian_distribution", config.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "debian_distribution.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestWriteChart_UnknownFormat(t *testing.T) {
	d, err := dataset.CNCF()
	require.NoError(t, err)

	graph, err := SurveyChart(d, nil, config.Defaults())
	require.NoError(t, err)

	_, err = WriteChart(graph, t.TempDir(), "cncf", "bmp")
	require.Error(t, err)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}
