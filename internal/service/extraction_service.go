package service

import (
	"context"
	"time"

	"pdf-extract-api/internal/domain"
	apperrors "pdf-extract-api/pkg/errors"
	"pdf-extract-api/pkg/logger"

	"golang.org/x/sync/semaphore"
)

// ExtractionService implements domain.ExtractionService.
// It runs validate -> load -> extract/harvest -> statistics and releases
// the decoded document on every path.
type ExtractionService struct {
	loader    *DocumentLoader
	extractor *TextExtractor
	stats     *StatisticsComputer
	harvester *MetadataHarvester
	slots     *semaphore.Weighted
	timeout   time.Duration
	logger    domain.Logger
}

// NewExtractionService creates a new extraction service.
// maxConcurrent bounds how many documents are decoded at once; timeout
// bounds a single pipeline run. Non-positive values disable the bound.
func NewExtractionService(
	decoder domain.PDFDecoder,
	detector domain.LanguageDetector,
	maxConcurrent int,
	timeout time.Duration,
	logger domain.Logger,
) *ExtractionService {
	s := &ExtractionService{
		loader:    NewDocumentLoader(decoder, logger),
		extractor: NewTextExtractor(logger),
		stats:     NewStatisticsComputer(detector, logger),
		harvester: NewMetadataHarvester(),
		timeout:   timeout,
		logger:    logger,
	}
	if maxConcurrent > 0 {
		s.slots = semaphore.NewWeighted(int64(maxConcurrent))
	}
	return s
}

// ExtractText returns the full text, per-page text, counts and language of an upload
func (s *ExtractionService) ExtractText(ctx context.Context, file *domain.UploadedFile) (*domain.ExtractionResult, error) {
	data, err := ValidateFile(file)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx, s.logger).With("filename", file.Name, "size", len(data))
	start := time.Now()
	log.Info("Text extraction started")

	ctx, release, err := s.begin(ctx)
	if err != nil {
		log.Error("Text extraction could not start", err)
		return nil, apperrors.NewInternalError(err)
	}
	defer release()

	doc, err := s.loader.Load(ctx, data, apperrors.MsgEncrypted)
	if err != nil {
		return nil, err
	}
	defer s.closeDocument(log, doc)

	result, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		log.Error("Text extraction failed", err)
		return nil, apperrors.NewInternalError(err)
	}

	result.WordCount = CountWords(result.FullText)
	result.Language = s.stats.DetectLanguage(ctx, result.FullText)

	log.Info("Text extraction finished",
		"pages", result.PageCount,
		"words", result.WordCount,
		"language", result.Language,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// ExtractMetadata returns the page count, encryption flag, version and
// document information dictionary of an upload
func (s *ExtractionService) ExtractMetadata(ctx context.Context, file *domain.UploadedFile) (*domain.MetadataResult, error) {
	data, err := ValidateFile(file)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx, s.logger).With("filename", file.Name, "size", len(data))
	start := time.Now()
	log.Info("Metadata extraction started")

	ctx, release, err := s.begin(ctx)
	if err != nil {
		log.Error("Metadata extraction could not start", err)
		return nil, apperrors.NewInternalError(err)
	}
	defer release()

	doc, err := s.loader.Load(ctx, data, apperrors.MsgEncryptedMetadata)
	if err != nil {
		return nil, err
	}
	defer s.closeDocument(log, doc)

	result := s.harvester.Harvest(doc)

	log.Info("Metadata extraction finished",
		"pages", result.Pages,
		"version", result.Version,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// begin applies the pipeline deadline and waits for a decode slot.
// The returned release func must always be called.
func (s *ExtractionService) begin(ctx context.Context) (context.Context, func(), error) {
	cancel := func() {}
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}

	if s.slots == nil {
		return ctx, cancel, nil
	}
	if err := s.slots.Acquire(ctx, 1); err != nil {
		cancel()
		return ctx, func() {}, err
	}
	return ctx, func() {
		s.slots.Release(1)
		cancel()
	}, nil
}

func (s *ExtractionService) closeDocument(log domain.Logger, doc domain.OpenDocument) {
	if err := doc.Close(); err != nil {
		log.Warn("Failed to release document", "error", err)
	}
}
