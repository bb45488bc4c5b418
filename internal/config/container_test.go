package config

import (
	"errors"
	"testing"

	"pdf-extract-api/internal/domain"
)

func TestNewContainer(t *testing.T) {
	t.Setenv("PDF_DECODER", "ledongthuc")
	t.Setenv("LANGUAGE_DETECTION", "true")
	t.Setenv("LOG_LEVEL", "error")

	c, err := NewContainer()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Decoder.Name() != "ledongthuc" {
		t.Fatalf("expected ledongthuc decoder, got %s", c.Decoder.Name())
	}
	if c.LanguageDetector == nil {
		t.Fatalf("expected a language detector")
	}
	if c.GetExtractionService() == nil {
		t.Fatalf("expected an extraction service")
	}
}

func TestNewContainer_DetectionDisabled(t *testing.T) {
	t.Setenv("PDF_DECODER", "")
	t.Setenv("LANGUAGE_DETECTION", "false")
	t.Setenv("LOG_LEVEL", "error")

	c, err := NewContainer()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.LanguageDetector != nil {
		t.Fatalf("expected no language detector, got %T", c.LanguageDetector)
	}
}

func TestNewContainer_UnknownDecoder(t *testing.T) {
	t.Setenv("PDF_DECODER", "pdfbox")
	t.Setenv("LOG_LEVEL", "error")

	_, err := NewContainer()
	if !errors.Is(err, domain.ErrUnknownDecoder) {
		t.Fatalf("expected unknown decoder error, got %v", err)
	}
}
