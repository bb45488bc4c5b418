// Package langdetect identifies the language of extracted text behind
// domain.LanguageDetector. Long samples are scored by the whatlanggo trigram
// model; short or ambiguous samples go to lingua.
package langdetect

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

const (
	// maxSampleBytes caps how much text is fed to the trigram model.
	maxSampleBytes = 16 * 1024
	// maxShortSampleBytes caps the lingua fallback, which scores every
	// candidate language and gets slow on long input.
	maxShortSampleBytes = 2 * 1024
)

// Detector is safe for concurrent use. Build it once; lingua loads its
// language models lazily on first use.
type Detector struct {
	minConfidence float64
	short         lingua.LanguageDetector
}

// New creates a detector that rejects matches below minConfidence (0 accepts any match)
func New(minConfidence float64) *Detector {
	return &Detector{
		minConfidence: minConfidence,
		short:         newShortTextModel(),
	}
}

// Detect returns the ISO 639-1 code of the most likely language, or "" when
// neither model has a confident answer.
func (d *Detector) Detect(text string) (string, error) {
	sample := truncate(strings.TrimSpace(text), maxSampleBytes)
	if sample == "" {
		return "", nil
	}

	if code, ok := d.detectTrigram(sample); ok {
		return code, nil
	}
	return d.detectShort(truncate(sample, maxShortSampleBytes)), nil
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
