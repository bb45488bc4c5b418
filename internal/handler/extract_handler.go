package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-extract-api/internal/domain"
	apperrors "pdf-extract-api/pkg/errors"
	"pdf-extract-api/pkg/logger"
)

const (
	formFileField   = "file"
	defaultFileName = "uploaded.pdf"

	// requestOverhead is the room left for multipart framing and JSON keys
	// on top of the file itself.
	requestOverhead = 1 << 20
	// multipartMemory is how much of a multipart body is buffered in memory;
	// the rest spills to temporary files.
	multipartMemory = 32 << 20
)

// ExtractHandler serves the text and metadata endpoints
type ExtractHandler struct {
	service     domain.ExtractionService
	maxFileSize int64
	logger      domain.Logger
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(service domain.ExtractionService, maxFileSize int64, logger domain.Logger) *ExtractHandler {
	return &ExtractHandler{
		service:     service,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ExtractText handles multipart text extraction
func (h *ExtractHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	file, err := h.readMultipartFile(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.extractText(w, r, file)
}

// ExtractTextJSON handles text extraction from a Base64 JSON payload
func (h *ExtractHandler) ExtractTextJSON(w http.ResponseWriter, r *http.Request) {
	file, err := h.readJSONFile(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.extractText(w, r, file)
}

// Metadata handles multipart metadata extraction
func (h *ExtractHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	file, err := h.readMultipartFile(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.metadata(w, r, file)
}

// MetadataJSON handles metadata extraction from a Base64 JSON payload
func (h *ExtractHandler) MetadataJSON(w http.ResponseWriter, r *http.Request) {
	file, err := h.readJSONFile(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.metadata(w, r, file)
}

func (h *ExtractHandler) extractText(w http.ResponseWriter, r *http.Request, file *domain.UploadedFile) {
	logger.FromContext(r.Context(), h.logger).Info("Received extract-text request", "filename", fileName(file), "size", fileSize(file))

	result, err := h.service.ExtractText(r.Context(), file)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ExtractHandler) metadata(w http.ResponseWriter, r *http.Request, file *domain.UploadedFile) {
	logger.FromContext(r.Context(), h.logger).Info("Received metadata request", "filename", fileName(file), "size", fileSize(file))

	result, err := h.service.ExtractMetadata(r.Context(), file)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.MetadataResponse{Metadata: result})
}

// readMultipartFile reads the "file" part, enforcing the size ceiling before
// anything is handed to the pipeline.
func (h *ExtractHandler) readMultipartFile(w http.ResponseWriter, r *http.Request) (*domain.UploadedFile, error) {
	limit := h.maxFileSize + requestOverhead
	if r.ContentLength > limit {
		return nil, apperrors.NewTooLargeError(h.maxFileSize)
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, h.classifyBodyError(err, apperrors.MsgInvalidMultipart)
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, apperrors.NewMalformedRequestError(apperrors.MsgMissingFilePart, err)
		}
		return nil, h.classifyBodyError(err, apperrors.MsgInvalidMultipart)
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		return nil, apperrors.NewTooLargeError(h.maxFileSize)
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		return nil, h.classifyBodyError(err, apperrors.MsgInvalidMultipart)
	}
	if int64(len(content)) > h.maxFileSize {
		return nil, apperrors.NewTooLargeError(h.maxFileSize)
	}

	return &domain.UploadedFile{
		Name:    strings.TrimSpace(filepath.Base(header.Filename)),
		Size:    int64(len(content)),
		Content: content,
	}, nil
}

// readJSONFile decodes a FilePayload and its Base64 content
func (h *ExtractHandler) readJSONFile(w http.ResponseWriter, r *http.Request) (*domain.UploadedFile, error) {
	limit := int64(base64.StdEncoding.EncodedLen(int(h.maxFileSize))) + requestOverhead
	if r.ContentLength > limit {
		return nil, apperrors.NewTooLargeError(h.maxFileSize)
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	var payload domain.FilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// an empty body is a zero-length upload, not broken JSON
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewInvalidFileError(apperrors.MsgEmptyPayload)
		}
		return nil, h.classifyBodyError(err, apperrors.MsgInvalidJSON)
	}

	encoded := strings.TrimSpace(payload.FileContent)
	if encoded == "" {
		return nil, apperrors.NewInvalidFileError(apperrors.MsgEmptyPayload)
	}
	if int64(base64.StdEncoding.DecodedLen(len(encoded))) > h.maxFileSize+2 {
		return nil, apperrors.NewTooLargeError(h.maxFileSize)
	}

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperrors.NewMalformedRequestError(apperrors.MsgInvalidBase64, err)
	}
	if int64(len(content)) > h.maxFileSize {
		return nil, apperrors.NewTooLargeError(h.maxFileSize)
	}

	name := strings.TrimSpace(filepath.Base(payload.FileName))
	if payload.FileName == "" || name == "." || name == string(filepath.Separator) {
		name = defaultFileName
	}

	return &domain.UploadedFile{
		Name:    name,
		Size:    int64(len(content)),
		Content: content,
	}, nil
}

// classifyBodyError maps a body read failure to 413 when the ceiling was hit
func (h *ExtractHandler) classifyBodyError(err error, msg string) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperrors.NewTooLargeError(h.maxFileSize)
	}
	return apperrors.NewMalformedRequestError(msg, err)
}

func fileName(f *domain.UploadedFile) string {
	if f == nil {
		return ""
	}
	return f.Name
}

func fileSize(f *domain.UploadedFile) int64 {
	if f == nil {
		return 0
	}
	return f.Size
}
