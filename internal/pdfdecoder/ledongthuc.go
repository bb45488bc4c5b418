package pdfdecoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pdf-extract-api/internal/domain"

	"github.com/ledongthuc/pdf"
)

// LedongthucDecoder decodes documents with the pure-Go ledongthuc/pdf reader
type LedongthucDecoder struct{}

// NewLedongthucDecoder creates a pure-Go decoder
func NewLedongthucDecoder() *LedongthucDecoder {
	return &LedongthucDecoder{}
}

// Name returns the backend name
func (d *LedongthucDecoder) Name() string {
	return DecoderLedongthuc
}

// Open parses the cross-reference table of data. The library panics on some
// malformed input; panics are returned as errors carrying the panic text.
func (d *LedongthucDecoder) Open(ctx context.Context, data []byte) (doc domain.OpenDocument, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("ledongthuc: open: %w", recoverError(r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, fmt.Errorf("ledongthuc: %w: %v", domain.ErrDocumentEncrypted, err)
		}
		return nil, fmt.Errorf("ledongthuc: %w", err)
	}

	return &ledongthucDocument{
		reader:  r,
		pages:   r.NumPage(),
		version: headerVersion(data),
	}, nil
}

type ledongthucDocument struct {
	reader  *pdf.Reader
	pages   int
	version float64
}

func (l *ledongthucDocument) PageCount() int {
	return l.pages
}

func (l *ledongthucDocument) Encrypted() bool {
	return !l.reader.Trailer().Key("Encrypt").IsNull()
}

func (l *ledongthucDocument) Version() float64 {
	return l.version
}

// Text extracts pages first..last, sharing one font cache across pages.
func (l *ledongthucDocument) Text(ctx context.Context, first, last int) (text string, err error) {
	if err := checkRange(first, last, l.pages); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("ledongthuc: text: %w", recoverError(r))
		}
	}()

	fonts := make(map[string]*pdf.Font)
	var sb strings.Builder
	for i := first; i <= last; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if i > first {
			sb.WriteString("\n")
		}
		page := l.reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("ledongthuc: page %d: %w", i, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

func (l *ledongthucDocument) Info() (*domain.DocumentInfo, bool) {
	info := l.reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return nil, false
	}
	return &domain.DocumentInfo{
		Title:            infoText(info, "Title"),
		Author:           infoText(info, "Author"),
		Subject:          infoText(info, "Subject"),
		Keywords:         infoText(info, "Keywords"),
		Creator:          infoText(info, "Creator"),
		Producer:         infoText(info, "Producer"),
		CreationDate:     infoDate(info, "CreationDate"),
		ModificationDate: infoDate(info, "ModDate"),
	}, true
}

func (l *ledongthucDocument) Close() error {
	l.reader = nil
	return nil
}

func infoText(info pdf.Value, key string) *string {
	v := info.Key(key)
	if v.Kind() != pdf.String {
		return nil
	}
	return stringPtr(v.Text())
}

func infoDate(info pdf.Value, key string) *time.Time {
	v := info.Key(key)
	if v.Kind() != pdf.String {
		return nil
	}
	return datePtr(v.RawString())
}
