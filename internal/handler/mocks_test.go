package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pdf-extract-api/internal/domain"
)

type mockExtractionService struct {
	mu         sync.Mutex
	textResult *domain.ExtractionResult
	metaResult *domain.MetadataResult
	err        error
	panicMsg   string
	calls      int
	lastFile   *domain.UploadedFile
}

func (m *mockExtractionService) record(file *domain.UploadedFile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastFile = file
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
}

func (m *mockExtractionService) ExtractText(ctx context.Context, file *domain.UploadedFile) (*domain.ExtractionResult, error) {
	m.record(file)
	if m.err != nil {
		return nil, m.err
	}
	return m.textResult, nil
}

func (m *mockExtractionService) ExtractMetadata(ctx context.Context, file *domain.UploadedFile) (*domain.MetadataResult, error) {
	m.record(file)
	if m.err != nil {
		return nil, m.err
	}
	return m.metaResult, nil
}

type mockConfig struct {
	maxFileSize int64
	apiKeys     []string
}

func (c *mockConfig) GetServerPort() string               { return "8080" }
func (c *mockConfig) GetMaxFileSize() int64               { return c.maxFileSize }
func (c *mockConfig) GetLogLevel() string                 { return "info" }
func (c *mockConfig) GetPDFDecoder() string               { return "fitz" }
func (c *mockConfig) GetMaxConcurrentExtractions() int    { return 4 }
func (c *mockConfig) GetExtractionTimeout() time.Duration { return 30 * time.Second }
func (c *mockConfig) GetAPIKeys() []string                { return c.apiKeys }
func (c *mockConfig) GetAllowedOrigins() []string         { return []string{"http://localhost:5173"} }
func (c *mockConfig) IsLanguageDetectionEnabled() bool    { return true }

func newTestRouter(svc domain.ExtractionService, maxFileSize int64, apiKeys ...string) http.Handler {
	logger := NewMockHandlerLogger()
	cfg := &mockConfig{maxFileSize: maxFileSize, apiKeys: apiKeys}

	return NewRouter(
		NewExtractHandler(svc, maxFileSize, logger),
		NewHealthHandler(cfg),
		NewAPIKeyMiddleware(apiKeys, logger).Middleware,
		cfg.GetAllowedOrigins(),
		logger,
	)
}

func newMultipartRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	} else if err := mw.WriteField("note", "no file here"); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newJSONRequest(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()

	var resp domain.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", rr.Body.String(), err)
	}
	return resp
}
