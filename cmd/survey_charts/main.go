// Package main provides the entry point for the survey_charts CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "survey_charts",
	Short: "Age distribution charts for tech communities",
	Long:  "survey_charts normalizes age-distribution results from several open-source community surveys onto a shared binning and renders them as comparable chart images.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
