package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labellens/backend/config"
	httpDelivery "github.com/labellens/backend/internal/delivery/http"
	"github.com/labellens/backend/internal/infrastructure/cache"
	"github.com/labellens/backend/internal/infrastructure/ocr"
	"github.com/labellens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Enable OCR debug logging in development environment
	debug := cfg.Server.Environment == "development" || cfg.Analysis.DebugLogging

	extractor, err := ocr.NewExtractor(cfg, debug)
	if err != nil {
		log.Fatalf("Failed to initialize OCR provider: %v", err)
	}

	// Initialize usecase layer
	analyzer := usecase.NewAnalyzer(cfg.Analysis.BatchConcurrency, cfg.Analysis.DebugLogging)
	scanService := usecase.NewScanService(
		memoryCache,
		extractor,
		analyzer,
		usecase.ScanServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MaxImageBytes:      cfg.Server.MaxUploadBytes,
			EnableDebugLogging: cfg.Analysis.DebugLogging,
		},
	)

	log.Printf("Analysis: batch concurrency=%d, max batch=%d, debug=%v",
		cfg.Analysis.BatchConcurrency,
		cfg.Analysis.MaxBatchSize,
		cfg.Analysis.DebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scanService, httpDelivery.HandlerConfig{
		MaxBatchSize:   cfg.Analysis.MaxBatchSize,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
	})

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
