package service

import (
	"strings"
	"unicode/utf8"
)

// sanitizeText drops NUL and other control characters that decoders emit
// for unmapped glyphs, keeping tab and newline. Carriage returns become
// newlines, form feed, vertical tab and NEL become spaces so they still
// separate words, and invalid UTF-8 sequences are removed.
func sanitizeText(text string) string {
	if text == "" {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size

		switch {
		case r == utf8.RuneError && size == 1:
			// invalid byte
		case r == '\t' || r == '\n':
			sb.WriteRune(r)
		case r == '\r':
			sb.WriteByte('\n')
		case r == '\f' || r == '\v' || r == 0x85:
			sb.WriteByte(' ')
		case r < 0x20 || r == 0x7F:
			// control character
		case r >= 0x80 && r < 0xA0:
			// C1 control character
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
