package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/survey-charts/internal/dataset"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the embedded datasets and remapping rules",
	Long:  "Checks every embedded survey distribution and every coarse remapping rule set; any violation is an authoring error and exits non-zero.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	dists, err := dataset.All()
	if err != nil {
		return fmt.Errorf("dataset validation failed: %w", err)
	}
	for _, d := range dists {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("dataset validation failed: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "ok  dataset %-22s %d bins, total %.2f%%\n", d.Name, len(d.Bins), d.Total())
	}

	if err := dataset.ValidateCoarseRules(); err != nil {
		return fmt.Errorf("rule set validation failed: %w", err)
	}
	for _, name := range dataset.ComparisonNames() {
		_, _ = fmt.Fprintf(os.Stdout, "ok  rule set %-22s -> %s\n", name, dataset.CoarseName)
	}

	return nil
}
