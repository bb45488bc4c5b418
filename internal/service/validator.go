package service

import (
	"path/filepath"
	"strings"

	"pdf-extract-api/internal/domain"
	apperrors "pdf-extract-api/pkg/errors"
)

const pdfExtension = ".pdf"

// ValidateFile rejects uploads that must never reach the decoder: a missing
// file, an empty one, or a name without a .pdf extension. The content itself
// is not sniffed; the extension is the only type check.
func ValidateFile(file *domain.UploadedFile) ([]byte, error) {
	if file == nil || len(file.Content) == 0 {
		return nil, apperrors.NewInvalidFileError(apperrors.MsgEmptyFile)
	}

	name := strings.TrimSpace(filepath.Base(file.Name))
	if !strings.EqualFold(filepath.Ext(name), pdfExtension) {
		return nil, apperrors.NewInvalidFileError(apperrors.MsgWrongType)
	}

	return file.Content, nil
}
