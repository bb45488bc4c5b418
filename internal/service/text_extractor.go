package service

import (
	"context"
	"fmt"
	"strings"

	"pdf-extract-api/internal/domain"
	"pdf-extract-api/pkg/logger"
)

// TextExtractor pulls full-document and per-page text from an open document
type TextExtractor struct {
	logger domain.Logger
}

// NewTextExtractor creates a text extractor
func NewTextExtractor(logger domain.Logger) *TextExtractor {
	return &TextExtractor{logger: logger}
}

// Extract runs two passes: one over the whole page range for FullText, then
// one per page. Both are reported; FullText is not rebuilt from the pages.
// Text is sanitized and trimmed.
// Language and WordCount are left for the statistics stage.
func (e *TextExtractor) Extract(ctx context.Context, doc domain.OpenDocument) (*domain.ExtractionResult, error) {
	log := logger.FromContext(ctx, e.logger)
	pageCount := doc.PageCount()

	result := &domain.ExtractionResult{
		Pages:     make([]domain.PageResult, 0, pageCount),
		PageCount: pageCount,
	}
	if pageCount == 0 {
		return result, nil
	}

	fullText, err := doc.Text(ctx, 1, pageCount)
	if err != nil {
		return nil, fmt.Errorf("extract full text: %w", err)
	}
	result.FullText = strings.TrimSpace(sanitizeText(fullText))

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extract page %d: %w", pageNum, err)
		}
		log.Debug("PDF processing page", "page", pageNum, "total", pageCount)

		pageText, err := doc.Text(ctx, pageNum, pageNum)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", pageNum, err)
		}
		pageText = strings.TrimSpace(sanitizeText(pageText))

		result.Pages = append(result.Pages, domain.PageResult{
			PageNumber: pageNum,
			Text:       pageText,
			WordCount:  CountWords(pageText),
		})
	}

	return result, nil
}
