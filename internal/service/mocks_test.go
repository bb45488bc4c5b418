package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"pdf-extract-api/internal/domain"
)

type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

func (m *MockLogger) With(args ...interface{}) domain.Logger {
	return m
}

func (m *MockLogger) Contains(prefix string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.messages {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// MockDocument is an in-memory OpenDocument
type MockDocument struct {
	pages     []string
	encrypted bool
	version   float64
	info      *domain.DocumentInfo
	textErr   error
	closes    *int32
}

func (d *MockDocument) PageCount() int   { return len(d.pages) }
func (d *MockDocument) Encrypted() bool  { return d.encrypted }
func (d *MockDocument) Version() float64 { return d.version }

func (d *MockDocument) Text(ctx context.Context, first, last int) (string, error) {
	if d.textErr != nil {
		return "", d.textErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.Join(d.pages[first-1:last], "\n"), nil
}

func (d *MockDocument) Info() (*domain.DocumentInfo, bool) {
	return d.info, d.info != nil
}

func (d *MockDocument) Close() error {
	if d.closes != nil {
		atomic.AddInt32(d.closes, 1)
	}
	return nil
}

// MockDecoder hands out a fresh MockDocument per Open and counts opens and closes
type MockDecoder struct {
	open   func(ctx context.Context, data []byte) (*MockDocument, error)
	opens  int32
	closes int32
}

func NewMockDecoder(open func(ctx context.Context, data []byte) (*MockDocument, error)) *MockDecoder {
	return &MockDecoder{open: open}
}

// NewFixtureDecoder always returns a copy of doc
func NewFixtureDecoder(doc MockDocument) *MockDecoder {
	return NewMockDecoder(func(ctx context.Context, data []byte) (*MockDocument, error) {
		d := doc
		return &d, nil
	})
}

// NewFailingDecoder always fails to open with err
func NewFailingDecoder(err error) *MockDecoder {
	return NewMockDecoder(func(ctx context.Context, data []byte) (*MockDocument, error) {
		return nil, err
	})
}

func (m *MockDecoder) Name() string { return "mock" }

func (m *MockDecoder) Open(ctx context.Context, data []byte) (domain.OpenDocument, error) {
	atomic.AddInt32(&m.opens, 1)
	doc, err := m.open(ctx, data)
	if err != nil {
		return nil, err
	}
	doc.closes = &m.closes
	return doc, nil
}

func (m *MockDecoder) Opens() int  { return int(atomic.LoadInt32(&m.opens)) }
func (m *MockDecoder) Closes() int { return int(atomic.LoadInt32(&m.closes)) }

// MockDetector returns a fixed answer
type MockDetector struct {
	code  string
	err   error
	panic bool
	calls int32
}

func (m *MockDetector) Detect(text string) (string, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.panic {
		panic("model exploded")
	}
	return m.code, m.err
}

func pdfUpload(name string) *domain.UploadedFile {
	content := []byte("%PDF-1.4 fake body")
	return &domain.UploadedFile{Name: name, Size: int64(len(content)), Content: content}
}

func strPtr(s string) *string { return &s }
