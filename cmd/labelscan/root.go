package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/labellens/backend/internal/domain"
	"github.com/spf13/cobra"
)

// previewLength is how much normalized text is echoed before the record
const previewLength = 500

var rootCmd = &cobra.Command{
	Use:   "labelscan",
	Short: "Extract nutrition facts, allergens, and concerns from label photos",
	Long: `labelscan runs the label analysis pipeline locally.

Examples:
  # Analyze a photo with the configured OCR provider
  labelscan image label.jpg

  # Analyze OCR text that was already extracted
  labelscan text label.txt
  cat label.txt | labelscan text -`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Print the full analysis as JSON")
}

// printAnalysis writes a human-readable report, or the raw result with --json
func printAnalysis(w io.Writer, result *domain.AnalysisResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(w, "Normalized text (first %d chars):\n%s\n\n", previewLength, preview(result.NormalizedText, previewLength))

	record, err := json.MarshalIndent(result.Record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	fmt.Fprintf(w, "Nutrition record:\n%s\n\n", record)

	if !result.HasNutritionKeywords {
		fmt.Fprintln(w, "Warning: text does not look like a nutrition label")
	}
	fmt.Fprintf(w, "Response:\n%s\n", result.Response)
	return nil
}

// preview returns at most n runes of s
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
