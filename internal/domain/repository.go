package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are stored as JSON so any backend can hold them.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// TextExtractor turns label image bytes into raw OCR text.
// Implementations return ErrNoTextDetected when the image has no readable
// text and wrap ErrOCRFailure when the service call fails. They never
// post-process the text.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
	Name() string
}
