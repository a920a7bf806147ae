package main

import (
	"fmt"
	"io"
	"os"

	"github.com/labellens/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text <path|->",
	Short: "Analyze already-extracted OCR text",
	Long: `Analyze OCR text read from a file, or from stdin when the path is "-".

No OCR provider is contacted, so no API key is needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	raw, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	return printAnalysis(cmd.OutOrStdout(), usecase.Analyze(string(raw)), asJSON)
}

// readInput reads path, or stdin when path is "-"
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
