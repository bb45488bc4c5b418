package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"pdf-extract-api/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort               string
	MaxFileSize              int64
	LogLevel                 string
	PDFDecoder               string
	MaxConcurrentExtractions int
	ExtractionTimeout        time.Duration
	APIKeys                  []string
	AllowedOrigins           []string
	LanguageDetection        bool
}

var defaultAllowedOrigins = []string{
	"http://localhost:5173", // SvelteKit dev server
	"http://localhost:4173", // SvelteKit preview
	"http://localhost:3000", // Alternative dev port
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:               getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:              getEnvInt64OrDefault("MAX_FILE_SIZE", 10*1024*1024), // 10MB default
		LogLevel:                 getEnvOrDefault("LOG_LEVEL", "info"),
		PDFDecoder:               strings.ToLower(getEnvOrDefault("PDF_DECODER", "fitz")),
		MaxConcurrentExtractions: getEnvIntOrDefault("MAX_CONCURRENT_EXTRACTIONS", runtime.NumCPU()),
		ExtractionTimeout:        getEnvDurationOrDefault("EXTRACTION_TIMEOUT", 60*time.Second),
		APIKeys:                  getEnvListOrDefault("API_KEYS", nil),
		AllowedOrigins:           getEnvListOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		LanguageDetection:        getEnvBoolOrDefault("LANGUAGE_DETECTION", true),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFDecoder returns the name of the decoder backend
func (c *AppConfig) GetPDFDecoder() string {
	return c.PDFDecoder
}

// GetMaxConcurrentExtractions returns how many documents may be decoded at once
func (c *AppConfig) GetMaxConcurrentExtractions() int {
	return c.MaxConcurrentExtractions
}

// GetExtractionTimeout returns the per-request pipeline deadline
func (c *AppConfig) GetExtractionTimeout() time.Duration {
	return c.ExtractionTimeout
}

// GetAPIKeys returns the accepted X-API-Key values. Empty disables the check.
func (c *AppConfig) GetAPIKeys() []string {
	return c.APIKeys
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// IsLanguageDetectionEnabled reports whether the language model should be loaded
func (c *AppConfig) IsLanguageDetectionEnabled() bool {
	return c.LanguageDetection
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
