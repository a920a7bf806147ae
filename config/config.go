package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported OCR providers
const (
	ProviderVision    = "vision"
	ProviderTesseract = "tesseract"
)

// Vision detection features
const (
	VisionTextDetection         = "TEXT_DETECTION"
	VisionDocumentTextDetection = "DOCUMENT_TEXT_DETECTION"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	OCR       OCRConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Analysis  AnalysisConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxUploadBytes int64    `mapstructure:"max_upload_bytes"`
}

// OCRConfig holds OCR provider configuration
type OCRConfig struct {
	Provider      string `mapstructure:"provider"` // "vision" or "tesseract"
	VisionAPIKey  string `mapstructure:"vision_api_key"`
	VisionBaseURL string `mapstructure:"vision_base_url"`
	VisionFeature string `mapstructure:"vision_feature"`
	// VisionLanguageHints are BCP-47 codes, unlike the Tesseract Languages
	VisionLanguageHints []string      `mapstructure:"vision_language_hints"`
	Timeout             time.Duration `mapstructure:"timeout"`
	Languages           []string      `mapstructure:"languages"`
	PageSegModes        []int         `mapstructure:"page_seg_modes"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // only "memory" for now
	TTL  time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration, in requests per minute
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
	OCR   int `mapstructure:"ocr"`
}

// AnalysisConfig holds extraction pipeline settings
type AnalysisConfig struct {
	BatchConcurrency int  `mapstructure:"batch_concurrency"`
	MaxBatchSize     int  `mapstructure:"max_batch_size"`
	DebugLogging     bool `mapstructure:"debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/labellens/")

	// Environment variable settings: LABELLENS_OCR_PROVIDER -> ocr.provider
	v.SetEnvPrefix("LABELLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile exports KEY=VALUE pairs from ./.env without overriding
// variables already present in the environment
func loadEnvFile() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*"})
	v.SetDefault("server.max_upload_bytes", 10<<20) // 10 MiB

	// OCR defaults
	v.SetDefault("ocr.provider", ProviderVision)
	v.SetDefault("ocr.vision_api_key", "")
	v.SetDefault("ocr.vision_base_url", "https://vision.googleapis.com")
	v.SetDefault("ocr.vision_feature", VisionTextDetection)
	v.SetDefault("ocr.vision_language_hints", []string{})
	v.SetDefault("ocr.timeout", "30s")
	v.SetDefault("ocr.languages", []string{"eng"})
	v.SetDefault("ocr.page_seg_modes", []int{3, 4, 6, 11})

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "720h") // 30 days

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.ocr", 1800)

	// Analysis defaults
	v.SetDefault("analysis.batch_concurrency", 8)
	v.SetDefault("analysis.max_batch_size", 50)
	v.SetDefault("analysis.debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.OCR.Provider {
	case ProviderVision:
		if config.OCR.VisionAPIKey == "" {
			return fmt.Errorf("Vision API key is required (set LABELLENS_OCR_VISION_API_KEY)")
		}
		switch config.OCR.VisionFeature {
		case "", VisionTextDetection, VisionDocumentTextDetection:
		default:
			return fmt.Errorf("Vision feature must be %s or %s, got: %s",
				VisionTextDetection, VisionDocumentTextDetection, config.OCR.VisionFeature)
		}
	case ProviderTesseract:
	default:
		return fmt.Errorf("OCR provider must be 'vision' or 'tesseract', got: %s", config.OCR.Provider)
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got: %d", config.Server.MaxUploadBytes)
	}

	if config.RateLimit.PerIP <= 0 || config.RateLimit.OCR <= 0 {
		return fmt.Errorf("rate limits must be positive (per_ip: %d, ocr: %d)", config.RateLimit.PerIP, config.RateLimit.OCR)
	}

	if config.Analysis.BatchConcurrency <= 0 || config.Analysis.MaxBatchSize <= 0 {
		return fmt.Errorf("batch concurrency and max batch size must be positive")
	}

	return nil
}
