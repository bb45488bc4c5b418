package config

import (
	"fmt"

	"pdf-extract-api/internal/domain"
	"pdf-extract-api/internal/langdetect"
	"pdf-extract-api/internal/pdfdecoder"
	"pdf-extract-api/internal/service"
	"pdf-extract-api/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Decoder           domain.PDFDecoder
	LanguageDetector  domain.LanguageDetector
	ExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container.
// It fails only on configuration that can never serve a request.
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	decoder, err := pdfdecoder.New(config.GetPDFDecoder())
	if err != nil {
		return nil, fmt.Errorf("init pdf decoder: %w", err)
	}

	// A nil detector makes every result report "unknown"
	var detector domain.LanguageDetector
	if config.IsLanguageDetectionEnabled() {
		detector = langdetect.New(0)
	} else {
		appLogger.Warn("Language detection disabled; results will report unknown")
	}

	extractionService := service.NewExtractionService(
		decoder,
		detector,
		config.GetMaxConcurrentExtractions(),
		config.GetExtractionTimeout(),
		appLogger,
	)

	appLogger.Info("Container initialised",
		"decoder", decoder.Name(),
		"max_file_size", config.GetMaxFileSize(),
		"max_concurrent_extractions", config.GetMaxConcurrentExtractions(),
		"extraction_timeout", config.GetExtractionTimeout().String(),
		"language_detection", detector != nil,
		"api_key_required", len(config.GetAPIKeys()) > 0,
	)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		Decoder:           decoder,
		LanguageDetector:  detector,
		ExtractionService: extractionService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetExtractionService returns the extraction pipeline
func (c *Container) GetExtractionService() domain.ExtractionService {
	return c.ExtractionService
}

// Close flushes buffered logs
func (c *Container) Close() error {
	if s, ok := c.Logger.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
