package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/labellens/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	maxAttempts      = 3
	baseBackoff      = 500 * time.Millisecond
	maxErrorBodySize = 4 << 10
	maxResponseSize  = 16 << 20
)

// ClientConfig holds Vision client settings
type ClientConfig struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
	Feature           string // defaults to FeatureTextDetection
	LanguageHints     []string
}

// Client handles communication with the Google Cloud Vision REST API
type Client struct {
	httpClient    *http.Client
	apiKey        string
	baseURL       string
	feature       string
	languageHints []string
	rateLimiter   *rate.Limiter
	debug         bool
	sleep         func(ctx context.Context, d time.Duration) error
}

// NewClient creates a new Vision API client
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Vision's default quota is 1800 requests per minute
	perMinute := config.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 1800
	}
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60), 10) // burst of 10 requests

	feature := config.Feature
	if feature == "" {
		feature = FeatureTextDetection
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:        config.APIKey,
		baseURL:       config.BaseURL,
		feature:       feature,
		languageHints: config.LanguageHints,
		rateLimiter:   limiter,
		sleep:         sleepContext,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Name identifies this OCR provider
func (c *Client) Name() string { return "vision" }

// ExtractText runs text detection on image bytes and returns the full text.
// Returns domain.ErrNoTextDetected when the image has no text and wraps
// domain.ErrOCRFailure for transport and service errors.
func (c *Client) ExtractText(ctx context.Context, image []byte) (string, error) {
	resp, err := c.Annotate(ctx, image)
	if err != nil {
		return "", err
	}

	text, err := MapToText(resp)
	if err != nil {
		log.Printf("[VISION] No usable text: %v", err)
		return "", err
	}

	c.debugLog("[VISION] Detected %d chars (locale: %q)", len(text), DetectedLocale(resp))
	return text, nil
}

// Annotate sends a TEXT_DETECTION request for one image.
// Transient failures (transport errors, 429, 5xx) are retried with
// exponential backoff; other 4xx responses fail immediately.
func (c *Client) Annotate(ctx context.Context, image []byte) (*AnnotateResponse, error) {
	body, err := c.buildRequestBody(image)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/v1/images:annotate?%s", c.baseURL, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrOCRFailure, err)
		}

		resp, err := c.doRequest(ctx, reqURL, body)
		if err != nil {
			log.Printf("[VISION] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			if err := c.backoff(ctx, attempt); err != nil {
				return nil, lastErr
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			errBody, _ := readLimitedBody(resp.Body, maxErrorBodySize)
			resp.Body.Close()
			log.Printf("[VISION] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(errBody))

			lastErr = fmt.Errorf("%w: status %d", domain.ErrOCRFailure, resp.StatusCode)
			if !isRetryable(resp.StatusCode) {
				return nil, lastErr
			}
			if err := c.backoff(ctx, attempt); err != nil {
				return nil, lastErr
			}
			continue
		}

		respBody, err := readLimitedBody(resp.Body, maxResponseSize)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read response: %v", domain.ErrOCRFailure, err)
		}

		var annotateResp AnnotateResponse
		if err := json.Unmarshal(respBody, &annotateResp); err != nil {
			log.Printf("[VISION] JSON decode error: %v", err)
			return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrOCRFailure, err)
		}

		c.debugLog("[VISION] Annotate succeeded on attempt %d", attempt)
		return &annotateResp, nil
	}

	log.Printf("[VISION] All %d attempts failed", maxAttempts)
	return nil, lastErr
}

// buildRequestBody encodes a single-image text detection request
func (c *Client) buildRequestBody(image []byte) ([]byte, error) {
	req := AnnotateRequest{
		Requests: []AnnotateImageRequest{{
			Image:    Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []Feature{{Type: c.feature}},
		}},
	}
	if len(c.languageHints) > 0 {
		req.Requests[0].ImageContext = &ImageContext{LanguageHints: c.languageHints}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return body, nil
}

// doRequest executes an HTTP POST request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrOCRFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "LabelLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOCRFailure, err)
	}

	return resp, nil
}

// backoff waits before the next attempt; no wait after the final one
func (c *Client) backoff(ctx context.Context, attempt int) error {
	if attempt >= maxAttempts {
		return nil
	}
	return c.sleep(ctx, exponentialBackoff(attempt))
}

// debugLog logs only when debug mode is enabled
func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf(format, args...)
	}
}

// isRetryable reports whether a status code is worth retrying
func isRetryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// exponentialBackoff returns the wait before retrying after the given attempt:
// 500ms, 1s, 2s, ...
func exponentialBackoff(attempt int) time.Duration {
	return baseBackoff * time.Duration(1<<(attempt-1))
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// sleepContext sleeps for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
