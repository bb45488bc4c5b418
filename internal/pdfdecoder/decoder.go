// Package pdfdecoder adapts third-party PDF libraries to domain.PDFDecoder.
package pdfdecoder

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"pdf-extract-api/internal/domain"
)

const (
	DecoderFitz       = "fitz"
	DecoderLedongthuc = "ledongthuc"
)

// New returns the decoder backend registered under name
func New(name string) (domain.PDFDecoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DecoderFitz, "mupdf", "":
		return NewFitzDecoder(), nil
	case DecoderLedongthuc, "go":
		return NewLedongthucDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDecoder, name)
	}
}

// headerVersion reads the version from the "%PDF-x.y" header.
// Returns 0 when no header is found near the start of the file.
func headerVersion(data []byte) float64 {
	const searchWindow = 1024
	head := data
	if len(head) > searchWindow {
		head = head[:searchWindow]
	}
	idx := bytes.Index(head, []byte("%PDF-"))
	if idx < 0 {
		return 0
	}
	rest := head[idx+len("%PDF-"):]
	end := 0
	for end < len(rest) && (rest[end] == '.' || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	v, err := strconv.ParseFloat(string(rest[:end]), 64)
	if err != nil {
		return 0
	}
	return v
}

func checkRange(first, last, pages int) error {
	if first < 1 || last > pages || first > last {
		return fmt.Errorf("%w: %d-%d of %d", domain.ErrPageOutOfRange, first, last, pages)
	}
	return nil
}

// recoverError converts a panic raised inside a decoder library into an error
func recoverError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

func stringPtr(s string) *string {
	return &s
}
