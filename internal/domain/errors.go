package domain

import "errors"

var (
	// ErrNoTextDetected is returned when the OCR service found no readable text in the image
	ErrNoTextDetected = errors.New("no text detected in image")

	// ErrOCRFailure is returned when the OCR service call itself fails
	ErrOCRFailure = errors.New("OCR request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrImageTooLarge is returned when an uploaded image exceeds the size limit
	ErrImageTooLarge = errors.New("image exceeds maximum upload size")

	// ErrUnsupportedImage is returned when the uploaded bytes are not a supported image type
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrBatchTooLarge is returned when a batch request holds too many texts
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
