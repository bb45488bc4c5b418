package service

import (
	"context"
	"fmt"
	"strings"

	"pdf-extract-api/internal/domain"
	"pdf-extract-api/pkg/logger"
)

// UnknownLanguage is reported whenever detection cannot produce a code
const UnknownLanguage = "unknown"

// CountWords returns the number of whitespace-separated tokens in text
func CountWords(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}

// StatisticsComputer derives language information from extracted text.
// A nil detector means the model failed to load; every call then yields UnknownLanguage.
type StatisticsComputer struct {
	detector domain.LanguageDetector
	logger   domain.Logger
}

// NewStatisticsComputer creates a statistics computer
func NewStatisticsComputer(detector domain.LanguageDetector, logger domain.Logger) *StatisticsComputer {
	return &StatisticsComputer{
		detector: detector,
		logger:   logger,
	}
}

// DetectLanguage never fails: errors, panics and empty answers all map to UnknownLanguage.
func (s *StatisticsComputer) DetectLanguage(ctx context.Context, text string) (lang string) {
	text = strings.TrimSpace(text)
	if s.detector == nil || text == "" {
		return UnknownLanguage
	}

	log := logger.FromContext(ctx, s.logger)
	defer func() {
		if r := recover(); r != nil {
			log.Warn("Language detection panicked", "error", fmt.Sprintf("%v", r))
			lang = UnknownLanguage
		}
	}()

	code, err := s.detector.Detect(text)
	if err != nil {
		log.Warn("Language detection failed", "error", err)
		return UnknownLanguage
	}
	if code == "" {
		return UnknownLanguage
	}
	return code
}
