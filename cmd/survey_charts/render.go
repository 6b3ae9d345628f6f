package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/survey-charts/internal/config"
	"github.com/jonathan/survey-charts/internal/dataset"
	"github.com/jonathan/survey-charts/internal/observability"
	"github.com/jonathan/survey-charts/internal/rendering"
	"github.com/jonathan/survey-charts/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render every survey chart",
	Long:  "Renders the individual survey charts, the Stack Overflow multi-year trend chart, and the combined coarse-bin comparison into the output directory.",
	RunE:  runRender,
}

var (
	renderOutDir  string
	renderFormat  string
	renderConfig  string
	renderVerbose bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutDir, "out-dir", "o", "", "Output directory for chart files (default \"media\")")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: png or svg (default \"png\")")
	renderCmd.Flags().StringVarP(&renderConfig, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print distribution tables before rendering")

	rootCmd.AddCommand(renderCmd)
}

// renderTask pairs a chart with the file stem it renders to.
type renderTask struct {
	file  string
	chart rendering.Renderable
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(renderConfig)
	if err != nil {
		return err
	}
	if renderOutDir != "" {
		cfg.OutDir = renderOutDir
	}
	if renderFormat != "" {
		cfg.Format = renderFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// A misauthored rule set would misrepresent the data, so nothing is
	// written until every rule set checks out.
	if err := dataset.ValidateCoarseRules(); err != nil {
		return fmt.Errorf("refusing to render: %w", err)
	}

	tasks, err := buildRenderTasks(cfg)
	if err != nil {
		return err
	}

	if renderVerbose {
		printer := observability.NewPrinter(os.Stdout)
		dists, err := dataset.All()
		if err != nil {
			return err
		}
		for _, d := range dists {
			printer.PrintDistribution(d)
		}
	}

	// Charts share no state, so each renders on its own goroutine.
	runID := uuid.NewString()
	paths := make([]string, len(tasks))
	g := new(errgroup.Group)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			path, err := rendering.WriteChart(task.chart, cfg.OutDir, task.file, cfg.Format)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", task.file, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered %d charts (run %s)\n", len(paths), runID)

	return nil
}

// buildRenderTasks assembles every chart the render command produces. File
// stems are stable so docs and slides can embed the outputs by name. Each
// individual chart carries a Stack Overflow year as its dashed reference
// line: the year whose respondent pool is closest in time to the survey
// (2021 for openSUSE and Linux Foundation, 2016 for Debian, 2025 for CNCF).
func buildRenderTasks(cfg config.Config) ([]renderTask, error) {
	individual := []struct {
		dataset string
		file    string
		refYear func() (*types.SurveyDistribution, error)
	}{
		{dataset.NameOpenSUSE, "opensuse_distribution", dataset.StackOverflow2021},
		{dataset.NameLinuxFoundation, "linux_foundation_distribution", dataset.StackOverflow2021},
		{dataset.NameDebian, "debian_distribution", dataset.StackOverflow2016},
		{dataset.NameCNCF, "cncf_distribution", dataset.StackOverflow2025},
	}

	tasks := make([]renderTask, 0, len(individual)+2)
	for _, item := range individual {
		d, err := dataset.ByName(item.dataset)
		if err != nil {
			return nil, err
		}
		refDist, err := item.refYear()
		if err != nil {
			return nil, err
		}
		surveyChart, err := rendering.SurveyChart(d, dataset.StackOverflowReference(refDist), cfg)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, renderTask{file: item.file, chart: surveyChart})
	}

	trend, err := dataset.StackOverflowTrend()
	if err != nil {
		return nil, err
	}
	trendChart, err := rendering.TrendLineChart("Stack Overflow Developer Survey", trend, cfg)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, renderTask{file: "stackoverflow_distribution", chart: trendChart})

	cmp, err := dataset.BuildComparison()
	if err != nil {
		return nil, err
	}
	so, err := dataset.StackOverflow2023()
	if err != nil {
		return nil, err
	}
	combined, err := rendering.ComparisonChart(cmp, dataset.StackOverflowReference(so), cfg)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, renderTask{file: "combined_comparison", chart: combined})

	return tasks, nil
}
