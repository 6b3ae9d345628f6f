package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/survey-charts/internal/dataset"
	"github.com/jonathan/survey-charts/internal/observability"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the embedded survey datasets",
	RunE:  runDatasets,
}

var datasetsVerbose bool

func init() {
	datasetsCmd.Flags().BoolVarP(&datasetsVerbose, "verbose", "v", false, "Print full distribution tables")

	rootCmd.AddCommand(datasetsCmd)
}

func runDatasets(_ *cobra.Command, _ []string) error {
	dists, err := dataset.All()
	if err != nil {
		return err
	}

	if datasetsVerbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, d := range dists {
			printer.PrintDistribution(d)
		}
		return nil
	}

	for _, d := range dists {
		_, _ = fmt.Fprintf(os.Stdout, "%-22s %-36s %d bins\n", d.Name, d.Label, len(d.Bins))
	}
	return nil
}
