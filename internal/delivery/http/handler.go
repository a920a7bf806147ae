package http

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labellens/backend/internal/domain"
	"github.com/labellens/backend/internal/usecase"
)

const (
	defaultMaxBatchSize   = 50
	defaultMaxUploadBytes = 10 << 20
	imageFormField        = "image"

	// multipartOverhead allows for boundaries and headers around the image part
	multipartOverhead = 1 << 20
)

// HandlerConfig holds request limits enforced by the handlers
type HandlerConfig struct {
	MaxBatchSize   int
	MaxUploadBytes int64
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scanService    *usecase.ScanService
	maxBatchSize   int
	maxUploadBytes int64
}

// NewHandler creates a new HTTP handler
func NewHandler(scanService *usecase.ScanService, config HandlerConfig) *Handler {
	maxBatchSize := config.MaxBatchSize
	if maxBatchSize <= 0 {
		maxBatchSize = defaultMaxBatchSize
	}

	maxUploadBytes := config.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	return &Handler{
		scanService:    scanService,
		maxBatchSize:   maxBatchSize,
		maxUploadBytes: maxUploadBytes,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labellens-backend",
		"version": "1.0.0",
	})
}

// AnalyzeText handles analysis of already-extracted label text
func (h *Handler) AnalyzeText(c *gin.Context) {
	if h.scanService == nil {
		notConfigured(c)
		return
	}

	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.scanService.AnalyzeText(req.Text))
}

// AnalyzeBatch handles analysis of several label texts in one request
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	if h.scanService == nil {
		notConfigured(c)
		return
	}

	var req domain.BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "texts is required"})
		return
	}

	if len(req.Texts) > h.maxBatchSize {
		log.Printf("[HANDLER] Batch rejected: %d texts (limit %d)", len(req.Texts), h.maxBatchSize)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrBatchTooLarge.Error(),
			"limit": h.maxBatchSize,
		})
		return
	}

	results, err := h.scanService.AnalyzeTexts(c.Request.Context(), req.Texts)
	if err != nil {
		// Only cancellation can fail a batch; the client has gone away
		log.Printf("[HANDLER] Batch analysis aborted: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Request cancelled"})
		return
	}

	c.JSON(http.StatusOK, domain.BatchAnalyzeResponse{Results: results})
}

// ScanImage handles multipart label image uploads
func (h *Handler) ScanImage(c *gin.Context) {
	if h.scanService == nil {
		notConfigured(c)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrImageTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrImageTooLarge.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read image"})
		return
	}

	result, err := h.scanService.ScanImage(c.Request.Context(), image)
	if err != nil {
		status, message := scanErrorResponse(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, result)
}

// scanErrorResponse maps scan errors onto HTTP status codes and client messages
func scanErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoTextDetected):
		return http.StatusUnprocessableEntity, "No text detected in image"
	case errors.Is(err, domain.ErrOCRFailure):
		return http.StatusBadGateway, "OCR service temporarily unavailable"
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, domain.ErrImageTooLarge.Error()
	case errors.Is(err, domain.ErrUnsupportedImage):
		return http.StatusBadRequest, domain.ErrUnsupportedImage.Error()
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "image file is empty"
	default:
		log.Printf("[HANDLER] Unexpected scan error: %v", err)
		return http.StatusInternalServerError, "Internal server error"
	}
}

func notConfigured(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "Label analysis not configured"})
}
