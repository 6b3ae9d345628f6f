package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/survey-charts/internal/dataset"
	"github.com/jonathan/survey-charts/internal/observability"
	"github.com/jonathan/survey-charts/internal/schemas"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the coarse comparison as JSON",
	Long:  "Remaps every survey onto the shared coarse binning and writes the comparison as a JSON artifact, validated against schemas/comparison.schema.json.",
	RunE:  runExport,
}

var (
	exportOutput  string
	exportVerbose bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "media/comparison.json", "Path to output comparison JSON file")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print the comparison table")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	// 1. Build the comparison (validates every rule set on the way)
	cmp, err := dataset.BuildComparison()
	if err != nil {
		return fmt.Errorf("failed to build comparison: %w", err)
	}
	cmp.RunID = uuid.NewString()
	cmp.GeneratedAt = time.Now().UTC()

	if exportVerbose {
		observability.NewPrinter(os.Stdout).PrintComparison(cmp)
	}

	// 2. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison to JSON: %w", err)
	}

	// 3. Ensure output directory exists
	outputDir := filepath.Dir(exportOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	// 4. Write to output file
	if err := os.WriteFile(exportOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write comparison to output file %s: %w", exportOutput, err)
	}

	// 5. Validate output against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath("schemas/comparison.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, exportOutput); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			switch {
			case errors.As(err, &validationErr):
				return fmt.Errorf("exported comparison does not validate against schema: %w", err)
			case errors.As(err, &schemaLoadErr):
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
			default:
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully exported %d series over %d bins\n", len(cmp.Series), len(cmp.Target.Bins))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", exportOutput)

	return nil
}
