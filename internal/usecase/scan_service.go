package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labellens/backend/internal/domain"
)

// Defaults applied when ScanServiceConfig leaves a value at zero
const (
	defaultCacheTTL      = 720 * time.Hour // 30 days
	defaultMaxImageBytes = 10 << 20
)

// supportedImageTypes are the detected MIME types accepted for OCR
var supportedImageTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

// ScanServiceConfig holds configuration for the scan service
type ScanServiceConfig struct {
	CacheTTL           time.Duration
	MaxImageBytes      int64
	EnableDebugLogging bool
}

// ScanService turns label images into analyses with caching.
// Identical images are only sent to OCR once per cache TTL.
type ScanService struct {
	cache              domain.CacheRepository
	extractor          domain.TextExtractor
	analyzer           *Analyzer
	cacheTTL           time.Duration
	maxImageBytes      int64
	enableDebugLogging bool
}

// NewScanService creates a new scan service with dependencies
func NewScanService(
	cache domain.CacheRepository,
	extractor domain.TextExtractor,
	analyzer *Analyzer,
	config ScanServiceConfig,
) *ScanService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	maxImageBytes := config.MaxImageBytes
	if maxImageBytes <= 0 {
		maxImageBytes = defaultMaxImageBytes
	}

	if analyzer == nil {
		analyzer = NewAnalyzer(0, config.EnableDebugLogging)
	}

	return &ScanService{
		cache:              cache,
		extractor:          extractor,
		analyzer:           analyzer,
		cacheTTL:           cacheTTL,
		maxImageBytes:      maxImageBytes,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ScanImage extracts text from a label image and analyzes it.
// Flow: validate -> check cache -> OCR -> analyze -> cache -> return.
// OCR errors are returned as-is so callers can tell ErrNoTextDetected
// apart from ErrOCRFailure.
func (s *ScanService) ScanImage(ctx context.Context, image []byte) (*domain.ScanResult, error) {
	if err := s.validateImage(image); err != nil {
		return nil, err
	}

	digest := imageDigest(image)
	cacheKey := generateCacheKey(digest)

	// Try cache first
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		cached.Source = "Cache"
		return cached, nil
	}

	// Cache miss - run OCR
	text, err := s.extractor.ExtractText(ctx, image)
	if err != nil {
		if errors.Is(err, domain.ErrNoTextDetected) {
			log.Printf("[SCAN] No text detected (provider: %s, digest: %s)", s.extractor.Name(), digest[:12])
		} else {
			log.Printf("[SCAN] OCR failed (provider: %s): %v", s.extractor.Name(), err)
		}
		return nil, err
	}

	analysis := s.analyzer.Analyze(text)
	if !analysis.HasNutritionKeywords {
		log.Printf("[SCAN] No nutrition keywords in OCR text (digest: %s)", digest[:12])
	}

	result := &domain.ScanResult{
		ImageDigest: digest,
		Analysis:    analysis,
		Provider:    s.extractor.Name(),
		Source:      "OCR",
		ScannedAt:   time.Now(),
	}

	if err := s.setInCache(ctx, cacheKey, result); err != nil {
		log.Printf("[SCAN] Failed to cache result: %v", err)
	}

	return result, nil
}

// AnalyzeText runs the pipeline over text the caller already extracted
func (s *ScanService) AnalyzeText(text string) *domain.AnalysisResult {
	return s.analyzer.Analyze(text)
}

// AnalyzeTexts runs the pipeline over several texts in parallel
func (s *ScanService) AnalyzeTexts(ctx context.Context, texts []string) ([]*domain.AnalysisResult, error) {
	return s.analyzer.AnalyzeBatch(ctx, texts)
}

// validateImage rejects empty, oversized, and non-image uploads
func (s *ScanService) validateImage(image []byte) error {
	if len(image) == 0 {
		return domain.ErrInvalidRequest
	}
	if int64(len(image)) > s.maxImageBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrImageTooLarge, len(image), s.maxImageBytes)
	}
	detected := mimetype.Detect(image)
	for _, supported := range supportedImageTypes {
		if detected.Is(supported) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrUnsupportedImage, detected.String())
}

// imageDigest returns the hex SHA-256 of the image bytes
func imageDigest(image []byte) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}

// generateCacheKey creates a cache key from an image digest.
// Format: "scan:{sha256}"
func generateCacheKey(digest string) string {
	return "scan:" + digest
}

// getFromCache retrieves a scan result from cache
func (s *ScanService) getFromCache(ctx context.Context, key string) (*domain.ScanResult, error) {
	var result domain.ScanResult
	if err := s.cache.Get(ctx, key, &result); err != nil {
		return nil, err
	}
	if result.Analysis == nil {
		return nil, domain.ErrCacheMiss
	}
	if s.enableDebugLogging {
		log.Printf("[SCAN] Cache hit: %s", key)
	}
	return &result, nil
}

// setInCache stores a scan result in cache
func (s *ScanService) setInCache(ctx context.Context, key string, result *domain.ScanResult) error {
	return s.cache.Set(ctx, key, result, s.cacheTTL)
}
