package ocr

import (
	"fmt"
	"log"

	"github.com/labellens/backend/config"
	"github.com/labellens/backend/internal/domain"
	"github.com/labellens/backend/internal/infrastructure/tesseract"
	"github.com/labellens/backend/internal/infrastructure/vision"
)

// NewExtractor builds the text extractor selected by cfg.OCR.Provider
func NewExtractor(cfg *config.Config, debug bool) (domain.TextExtractor, error) {
	switch cfg.OCR.Provider {
	case config.ProviderVision:
		client := vision.NewClient(vision.ClientConfig{
			APIKey:            cfg.OCR.VisionAPIKey,
			BaseURL:           cfg.OCR.VisionBaseURL,
			Timeout:           cfg.OCR.Timeout,
			RequestsPerMinute: cfg.RateLimit.OCR,
			Feature:           cfg.OCR.VisionFeature,
			LanguageHints:     cfg.OCR.VisionLanguageHints,
		})
		client.SetDebug(debug)
		log.Printf("[OCR] Using Cloud Vision at %s (key: %s)", cfg.OCR.VisionBaseURL, maskKey(cfg.OCR.VisionAPIKey))
		return client, nil

	case config.ProviderTesseract:
		engine := tesseract.NewEngine(cfg.OCR.Languages, cfg.OCR.PageSegModes)
		log.Printf("[OCR] Using Tesseract (languages: %v, modes: %v)", cfg.OCR.Languages, cfg.OCR.PageSegModes)
		return engine, nil

	default:
		return nil, fmt.Errorf("unknown OCR provider: %q", cfg.OCR.Provider)
	}
}

// maskKey keeps only a short prefix of an API key for logs
func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:8] + "..."
}
