// Package rendering draws survey distributions as chart image files.
//
// All figure dimensions and DPI come from the config passed into each call;
// the package keeps no ambient state of its own.
package rendering

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jonathan/survey-charts/internal/config"
	"github.com/jonathan/survey-charts/internal/types"
)

// Renderable is satisfied by every go-chart chart type.
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// colorFromHex parses a "#rrggbb" or "rrggbb" color.
func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// SurveyChart draws one survey as a marked line over its native bin midpoints,
// with a Stack Overflow year dashed behind it as the reference on the same age
// axis. The distribution and the reference must both carry positions. A nil
// reference draws the survey alone.
func SurveyChart(d, ref *types.SurveyDistribution, cfg config.Config) (chart.Chart, error) {
	plot := d.WithoutNoAnswer()
	if len(plot.Positions) != len(plot.Values) {
		return chart.Chart{}, &RenderError{
			Message: fmt.Sprintf("distribution %q has no age positions for its %d bins", plot.Name, len(plot.Values)),
		}
	}

	series := []chart.Series{lineSeries(plot, false)}
	maxPos := plot.Positions[len(plot.Positions)-1]
	if ref != nil {
		if len(ref.Positions) != len(ref.Values) {
			return chart.Chart{}, &RenderError{
				Message: fmt.Sprintf("reference %q has no age positions for its %d bins", ref.Name, len(ref.Values)),
			}
		}
		series = append(series, lineSeries(ref, true))
		if p := ref.Positions[len(ref.Positions)-1]; p > maxPos {
			maxPos = p
		}
	}

	graph := chart.Chart{
		Title:  plot.Label,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
		DPI:    cfg.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 20, Left: 10, Right: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Age Range",
			Range: &chart.ContinuousRange{Min: 10, Max: maxPos + 5},
			Ticks: ageTicks(plot.Bins, plot.Positions),
		},
		YAxis:  chart.YAxis{Name: "Percentage (%)"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph, nil
}

// lineSeries builds one survey's line on the shared age axis. The distribution
// must carry bin midpoint positions.
func lineSeries(d *types.SurveyDistribution, dashed bool) chart.ContinuousSeries {
	color := colorFromHex(d.ColorHex)
	style := chart.Style{
		StrokeColor: color,
		StrokeWidth: 2.5,
		DotColor:    color,
		DotWidth:    4,
	}
	if dashed {
		style.StrokeDashArray = []float64{5, 5}
	}
	return chart.ContinuousSeries{
		Name:    d.Label,
		XValues: d.Positions,
		YValues: d.Values,
		Style:   style,
	}
}

// ageTicks labels the shared age axis with bin names at their midpoints.
func ageTicks(bins []string, positions []float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(bins))
	for i, bin := range bins {
		ticks = append(ticks, chart.Tick{Value: positions[i], Label: bin})
	}
	return ticks
}

// TrendLineChart draws several survey years of one source as lines over the
// shared age axis. Every distribution must carry positions for its bins.
func TrendLineChart(title string, dists []*types.SurveyDistribution, cfg config.Config) (chart.Chart, error) {
	if len(dists) == 0 {
		return chart.Chart{}, &RenderError{Message: "trend chart needs at least one distribution"}
	}

	series := make([]chart.Series, 0, len(dists))
	for _, d := range dists {
		if len(d.Positions) != len(d.Values) {
			return chart.Chart{}, &RenderError{
				Message: fmt.Sprintf("distribution %q has no age positions for its %d bins", d.Name, len(d.Values)),
			}
		}
		series = append(series, lineSeries(d, false))
	}

	graph := chart.Chart{
		Title:  title,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
		DPI:    cfg.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 20, Left: 10, Right: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Age Range",
			Range: &chart.ContinuousRange{Min: 10, Max: 75},
			Ticks: ageTicks(dists[0].Bins, dists[0].Positions),
		},
		YAxis:  chart.YAxis{Name: "Percentage (%)"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph, nil
}

// ComparisonChart draws every remapped survey as a line over the coarse bins,
// with the reference distribution (if any) drawn dashed at its own native age
// positions so it stays directly comparable to the individual charts.
func ComparisonChart(cmp *types.CoarseComparison, ref *types.SurveyDistribution, cfg config.Config) (chart.Chart, error) {
	if len(cmp.Series) == 0 {
		return chart.Chart{}, &RenderError{Message: "comparison has no series"}
	}
	if len(cmp.Target.Positions) != len(cmp.Target.Bins) {
		return chart.Chart{}, &RenderError{
			Message: fmt.Sprintf("target binning %q has no positions for its bins", cmp.Target.Name),
		}
	}

	series := make([]chart.Series, 0, len(cmp.Series)+1)
	for _, s := range cmp.Series {
		if ref != nil && s.Survey == ref.Name {
			continue // drawn from the native distribution below
		}
		color := colorFromHex(s.ColorHex)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: cmp.Target.Positions,
			YValues: s.Values,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2.5,
				DotColor:    color,
				DotWidth:    5,
			},
		})
	}
	if ref != nil {
		series = append(series, lineSeries(ref, true))
	}

	graph := chart.Chart{
		Title:  "Age Distribution Comparison Across Sources",
		Width:  cfg.CombinedWidth,
		Height: cfg.CombinedHeight,
		DPI:    cfg.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 20, Left: 10, Right: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Age Range",
			Range: &chart.ContinuousRange{Min: 10, Max: 75},
			Ticks: ageTicks(cmp.Target.Bins, cmp.Target.Positions),
		},
		YAxis:  chart.YAxis{Name: "Percentage (%)"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph, nil
}

// rendererFor maps a config format name to a go-chart renderer.
func rendererFor(format string) (chart.RendererProvider, error) {
	switch format {
	case config.FormatPNG:
		return chart.PNG, nil
	case config.FormatSVG:
		return chart.SVG, nil
	default:
		return nil, &RenderError{Message: fmt.Sprintf("unknown output format %q", format)}
	}
}

// RenderTo renders a chart into w in the given format.
func RenderTo(c Renderable, w io.Writer, format string) error {
	rp, err := rendererFor(format)
	if err != nil {
		return err
	}
	if err := c.Render(rp, w); err != nil {
		return &RenderError{Message: "failed to render chart", Cause: err}
	}
	return nil
}

// WriteChart renders a chart into outDir as name.<format>, creating the
// directory if needed, and returns the written path.
func WriteChart(c Renderable, outDir, name, format string) (string, error) {
	if _, err := rendererFor(format); err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to create output directory %s", outDir), Cause: err}
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s.%s", name, format))
	f, err := os.Create(path)
	if err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to create %s", path), Cause: err}
	}
	defer f.Close()

	if err := RenderTo(c, f, format); err != nil {
		return "", err
	}
	return path, nil
}
