package pdfdecoder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pdf-extract-api/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzDecoder decodes documents with MuPDF through go-fitz
type FitzDecoder struct{}

// NewFitzDecoder creates a MuPDF-backed decoder
func NewFitzDecoder() *FitzDecoder {
	return &FitzDecoder{}
}

// Name returns the backend name
func (d *FitzDecoder) Name() string {
	return DecoderFitz
}

// Open decodes data in memory. MuPDF's typed open failures are mapped to
// domain.ErrDocumentEncrypted and domain.ErrDocumentMalformed.
func (d *FitzDecoder) Open(ctx context.Context, data []byte) (doc domain.OpenDocument, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("fitz: open: %w", recoverError(r))
		}
	}()

	fd, err := fitz.NewFromMemory(data)
	if err != nil {
		if fd != nil {
			_ = fd.Close()
		}
		switch {
		case errors.Is(err, fitz.ErrNeedsPassword):
			return nil, fmt.Errorf("fitz: %w: %v", domain.ErrDocumentEncrypted, err)
		case errors.Is(err, fitz.ErrOpenDocument), errors.Is(err, fitz.ErrOpenMemory):
			return nil, fmt.Errorf("fitz: %w: %v", domain.ErrDocumentMalformed, err)
		}
		return nil, fmt.Errorf("fitz: %w", err)
	}

	return &fitzDocument{
		doc:      fd,
		pages:    fd.NumPage(),
		meta:     fd.Metadata(),
		fallback: headerVersion(data),
	}, nil
}

type fitzDocument struct {
	doc      *fitz.Document
	pages    int
	meta     map[string]string
	fallback float64
}

func (f *fitzDocument) PageCount() int {
	return f.pages
}

// Encrypted reports MuPDF's encryption descriptor. Documents protected only by
// an owner password open without a prompt but still report a handler here.
func (f *fitzDocument) Encrypted() bool {
	enc := metaValue(f.meta, "encryption")
	return enc != "" && !strings.EqualFold(enc, "none")
}

func (f *fitzDocument) Version() float64 {
	// format looks like "PDF 1.7"
	format := metaValue(f.meta, "format")
	if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(format, "PDF")), 64); err == nil {
		return v
	}
	return f.fallback
}

func (f *fitzDocument) Text(ctx context.Context, first, last int) (text string, err error) {
	if err := checkRange(first, last, f.pages); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("fitz: text: %w", recoverError(r))
		}
	}()

	var sb strings.Builder
	for page := first; page <= last; page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pageText, err := f.doc.Text(page - 1)
		if err != nil {
			return "", fmt.Errorf("fitz: page %d: %w", page, err)
		}
		if page > first {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

func (f *fitzDocument) Info() (*domain.DocumentInfo, bool) {
	info := &domain.DocumentInfo{
		Title:            metaString(f.meta, "title"),
		Author:           metaString(f.meta, "author"),
		Subject:          metaString(f.meta, "subject"),
		Keywords:         metaString(f.meta, "keywords"),
		Creator:          metaString(f.meta, "creator"),
		Producer:         metaString(f.meta, "producer"),
		CreationDate:     datePtr(metaValue(f.meta, "creationDate")),
		// go-fitz queries "info:modDate" while MuPDF stores "info:ModDate",
		// so this is normally empty.
		ModificationDate: datePtr(metaValue(f.meta, "modDate")),
	}
	// MuPDF reports missing keys as empty strings, so an info dictionary
	// with no populated entries is indistinguishable from no dictionary.
	if info.Title == nil && info.Author == nil && info.Subject == nil && info.Keywords == nil &&
		info.Creator == nil && info.Producer == nil && info.CreationDate == nil && info.ModificationDate == nil {
		return nil, false
	}
	return info, true
}

func (f *fitzDocument) Close() error {
	if f.doc == nil {
		return nil
	}
	err := f.doc.Close()
	f.doc = nil
	return err
}

// metaValue returns a go-fitz metadata entry. go-fitz copies each value out
// of a fixed 256-byte buffer, so the string is cut at the first NUL.
func metaValue(meta map[string]string, key string) string {
	v := meta[key]
	if i := strings.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

func metaString(meta map[string]string, key string) *string {
	if v := metaValue(meta, key); v != "" {
		return stringPtr(v)
	}
	return nil
}
