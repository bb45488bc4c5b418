package domain

import (
	"context"
	"time"
)

// OpenDocument is a decoded PDF handle scoped to a single request.
// Close must be called on every exit path.
type OpenDocument interface {
	PageCount() int
	Encrypted() bool
	Version() float64
	// Text returns the text of pages first..last, 1-based and inclusive.
	Text(ctx context.Context, first, last int) (string, error)
	// Info returns the document-information dictionary, if the document has one.
	Info() (*DocumentInfo, bool)
	Close() error
}

// PDFDecoder opens raw bytes into an OpenDocument
type PDFDecoder interface {
	Name() string
	Open(ctx context.Context, data []byte) (OpenDocument, error)
}

// LanguageDetector returns the most likely ISO 639-1 code for a text sample.
// An empty code means no confident match.
type LanguageDetector interface {
	Detect(text string) (string, error)
}

// ExtractionService is the pipeline exposed to the transport layer
type ExtractionService interface {
	ExtractText(ctx context.Context, file *UploadedFile) (*ExtractionResult, error)
	ExtractMetadata(ctx context.Context, file *UploadedFile) (*MetadataResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetPDFDecoder() string
	GetMaxConcurrentExtractions() int
	GetExtractionTimeout() time.Duration
	GetAPIKeys() []string
	GetAllowedOrigins() []string
	IsLanguageDetectionEnabled() bool
}
