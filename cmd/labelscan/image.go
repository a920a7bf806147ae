package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/labellens/backend/config"
	"github.com/labellens/backend/internal/domain"
	"github.com/labellens/backend/internal/infrastructure/cache"
	"github.com/labellens/backend/internal/infrastructure/ocr"
	"github.com/labellens/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "OCR a label photo and analyze it",
	Long: `OCR a label photo with the configured provider and analyze the text.

Configuration is read the same way as the server: config.yaml and
LABELLENS_* environment variables. Cloud Vision needs
LABELLENS_OCR_VISION_API_KEY; use --provider tesseract to run offline.`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().String("provider", "", "OCR provider override (vision, tesseract)")
	imageCmd.Flags().Duration("timeout", 60*time.Second, "Overall timeout for OCR")
	imageCmd.Flags().Bool("debug", false, "Log OCR requests and pipeline details")
}

func runImage(cmd *cobra.Command, args []string) error {
	provider, _ := cmd.Flags().GetString("provider")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	debug, _ := cmd.Flags().GetBool("debug")
	asJSON, _ := cmd.Flags().GetBool("json")

	if provider != "" {
		os.Setenv("LABELLENS_OCR_PROVIDER", provider)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	extractor, err := ocr.NewExtractor(cfg, debug)
	if err != nil {
		return err
	}

	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()

	scanService := usecase.NewScanService(
		memoryCache,
		extractor,
		usecase.NewAnalyzer(1, debug),
		usecase.ScanServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MaxImageBytes:      cfg.Server.MaxUploadBytes,
			EnableDebugLogging: debug,
		},
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := scanService.ScanImage(ctx, image)
	if err != nil {
		if errors.Is(err, domain.ErrNoTextDetected) {
			return fmt.Errorf("no text found in %s; try a clearer photo of the label", args[0])
		}
		return err
	}

	return printAnalysis(cmd.OutOrStdout(), result.Analysis, asJSON)
}
