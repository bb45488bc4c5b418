package domain

import "errors"

// Decoder signals. Backends wrap library-specific failures with these so the
// document loader can classify them without looking at error text.
var (
	ErrDocumentEncrypted = errors.New("document is encrypted")
	ErrDocumentMalformed = errors.New("document is malformed")
	ErrPageOutOfRange    = errors.New("page out of range")
	ErrUnknownDecoder    = errors.New("unknown pdf decoder")
)
