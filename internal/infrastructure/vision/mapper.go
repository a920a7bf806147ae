package vision

import (
	"fmt"
	"strings"

	"github.com/labellens/backend/internal/domain"
)

// MapToText pulls the detected label text out of an annotate response.
// The first text annotation holds the whole text block; the structured
// full-text annotation is used when it is missing.
func MapToText(resp *AnnotateResponse) (string, error) {
	if resp == nil || len(resp.Responses) == 0 {
		return "", domain.ErrNoTextDetected
	}

	image := resp.Responses[0]
	if image.Error != nil && image.Error.Code != 0 {
		return "", fmt.Errorf("%w: code %d: %s", domain.ErrOCRFailure, image.Error.Code, image.Error.Message)
	}

	if len(image.TextAnnotations) > 0 && strings.TrimSpace(image.TextAnnotations[0].Description) != "" {
		return image.TextAnnotations[0].Description, nil
	}

	if image.FullTextAnnotation != nil && strings.TrimSpace(image.FullTextAnnotation.Text) != "" {
		return image.FullTextAnnotation.Text, nil
	}

	return "", domain.ErrNoTextDetected
}

// DetectedLocale returns the locale Vision reported for the text block, if any
func DetectedLocale(resp *AnnotateResponse) string {
	if resp == nil || len(resp.Responses) == 0 || len(resp.Responses[0].TextAnnotations) == 0 {
		return ""
	}
	return resp.Responses[0].TextAnnotations[0].Locale
}
