package pdfdecoder

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"pdf-extract-api/internal/domain"
	"pdf-extract-api/internal/langdetect"
	"pdf-extract-api/internal/service"
	"pdf-extract-api/pkg/logger"
)

func newPipeline(dec domain.PDFDecoder) *service.ExtractionService {
	return service.NewExtractionService(
		dec,
		langdetect.New(0),
		1,
		10*time.Second,
		logger.NewFromZap(zap.NewNop()),
	)
}

func TestPipeline_HelloWorld(t *testing.T) {
	data := buildPDF([]string{"Hello world"}, nil)

	for _, dec := range backends() {
		t.Run(dec.Name(), func(t *testing.T) {
			svc := newPipeline(dec)
			file := &domain.UploadedFile{
				Name:    "hello.pdf",
				Size:    int64(len(data)),
				Content: data,
			}

			result, err := svc.ExtractText(context.Background(), file)
			if err != nil {
				t.Fatalf("ExtractText failed: %v", err)
			}
			if result.FullText != "Hello world" {
				t.Fatalf("expected full text %q, got %q", "Hello world", result.FullText)
			}
			if result.PageCount != 1 || len(result.Pages) != 1 {
				t.Fatalf("expected one page, got %d (%d results)", result.PageCount, len(result.Pages))
			}
			if result.WordCount != 2 {
				t.Fatalf("expected 2 words, got %d", result.WordCount)
			}
			if result.Language != "en" {
				t.Fatalf("expected language en, got %q", result.Language)
			}

			meta, err := svc.ExtractMetadata(context.Background(), file)
			if err != nil {
				t.Fatalf("ExtractMetadata failed: %v", err)
			}
			if meta.Pages != 1 {
				t.Fatalf("expected 1 page, got %d", meta.Pages)
			}
			if meta.Encrypted {
				t.Fatalf("expected unencrypted document")
			}
			if meta.Title != nil || meta.Author != nil || meta.Producer != nil {
				t.Fatalf("expected no info fields, got title=%v author=%v producer=%v", meta.Title, meta.Author, meta.Producer)
			}
		})
	}
}
