package tesseract

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/labellens/backend/internal/domain"
	"github.com/otiai10/gosseract/v2"
)

// DefaultPageSegModes are the layouts tried on each label: automatic, single
// column, single block, and sparse text
var DefaultPageSegModes = []gosseract.PageSegMode{
	gosseract.PSM_AUTO,
	gosseract.PSM_SINGLE_COLUMN,
	gosseract.PSM_SINGLE_BLOCK,
	gosseract.PSM_SPARSE_TEXT,
}

// ocrClient is the subset of *gosseract.Client used by the engine
type ocrClient interface {
	SetImageFromBytes(data []byte) error
	SetLanguage(langs ...string) error
	SetPageSegMode(mode gosseract.PageSegMode) error
	Text() (string, error)
	Close() error
}

// Engine extracts label text locally with Tesseract. Each page segmentation
// mode runs as a separate pass and the longest text wins, since labels mix
// columns, tables, and free text.
type Engine struct {
	clientFactory func() ocrClient
	languages     []string
	modes         []gosseract.PageSegMode
}

// NewEngine constructs a Tesseract-backed text extractor
func NewEngine(languages []string, modes []int) *Engine {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}

	segModes := make([]gosseract.PageSegMode, 0, len(modes))
	for _, m := range modes {
		segModes = append(segModes, gosseract.PageSegMode(m))
	}
	if len(segModes) == 0 {
		segModes = DefaultPageSegModes
	}

	return &Engine{
		clientFactory: func() ocrClient { return gosseract.NewClient() },
		languages:     languages,
		modes:         segModes,
	}
}

// Name identifies this OCR provider
func (e *Engine) Name() string { return "tesseract" }

// ExtractText runs every configured pass over the image and returns the
// longest recognized text. Returns domain.ErrNoTextDetected when all passes
// come back empty.
func (e *Engine) ExtractText(ctx context.Context, image []byte) (string, error) {
	var best string
	var lastErr error

	for _, mode := range e.modes {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", domain.ErrOCRFailure, ctx.Err())
		default:
		}

		text, err := e.recognize(image, mode)
		if err != nil {
			log.Printf("[TESSERACT] Pass psm=%d failed: %v", mode, err)
			lastErr = err
			continue
		}
		if len(text) > len(best) {
			best = text
		}
	}

	if best != "" {
		return best, nil
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOCRFailure, lastErr)
	}
	return "", domain.ErrNoTextDetected
}

// recognize runs a single OCR pass with a fresh client
func (e *Engine) recognize(image []byte, mode gosseract.PageSegMode) (string, error) {
	c := e.clientFactory()
	defer c.Close()

	if err := c.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if err := c.SetPageSegMode(mode); err != nil {
		return "", fmt.Errorf("set page seg mode: %w", err)
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
