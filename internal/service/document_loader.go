package service

import (
	"context"
	"errors"
	"strings"

	"pdf-extract-api/internal/domain"
	apperrors "pdf-extract-api/pkg/errors"
	"pdf-extract-api/pkg/logger"
)

// corruptionSignatures are matched case-insensitively against decoder errors
// that carry no typed classification.
var corruptionSignatures = []string{
	"end-of-file",
	"stream",
	"invalid",
	"corrupt",
}

// DocumentLoader opens raw bytes and classifies every failure before any
// text or metadata is read.
type DocumentLoader struct {
	decoder domain.PDFDecoder
	logger  domain.Logger
}

// NewDocumentLoader creates a loader on top of a decoder backend
func NewDocumentLoader(decoder domain.PDFDecoder, logger domain.Logger) *DocumentLoader {
	return &DocumentLoader{
		decoder: decoder,
		logger:  logger,
	}
}

// Load returns an open, unencrypted document. The caller owns the returned
// document and must Close it. On error nothing is left open.
// encryptedMsg is the client message used when the document is encrypted.
func (l *DocumentLoader) Load(ctx context.Context, data []byte, encryptedMsg string) (domain.OpenDocument, error) {
	log := logger.FromContext(ctx, l.logger)

	doc, err := l.decoder.Open(ctx, data)
	if err != nil {
		appErr := classifyDecodeError(err, encryptedMsg)
		if appErr.Type == apperrors.ErrorTypeInternal {
			log.Error("PDF decode failed with an unclassified error", err, "decoder", l.decoder.Name())
		} else {
			log.Warn("PDF decode rejected", "decoder", l.decoder.Name(), "type", string(appErr.Type), "error", err)
		}
		return nil, appErr
	}

	if doc.Encrypted() {
		if cerr := doc.Close(); cerr != nil {
			log.Warn("Failed to release encrypted document", "error", cerr)
		}
		log.Warn("PDF rejected: document is encrypted", "decoder", l.decoder.Name())
		return nil, apperrors.NewPasswordProtectedError(encryptedMsg)
	}

	return doc, nil
}

// classifyDecodeError maps a decoder failure to a client or internal error.
// Typed decoder signals win; the substring heuristic only runs for errors the
// backend could not type.
func classifyDecodeError(err error, encryptedMsg string) *apperrors.AppError {
	switch {
	case errors.Is(err, domain.ErrDocumentEncrypted):
		return apperrors.NewPasswordProtectedError(encryptedMsg)
	case errors.Is(err, domain.ErrDocumentMalformed):
		return apperrors.NewCorruptDocumentError(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewInternalError(err)
	case looksCorrupt(err):
		return apperrors.NewCorruptDocumentError(err)
	default:
		return apperrors.NewInternalError(err)
	}
}

func looksCorrupt(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, sig := range corruptionSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
