package domain

import "time"

// UploadedFile is the raw upload handed to the pipeline. A nil *UploadedFile
// means the request carried no file at all.
type UploadedFile struct {
	Name    string
	Size    int64
	Content []byte
}

// DocumentInfo mirrors the PDF document-information dictionary.
// Nil fields are absent in the source document.
type DocumentInfo struct {
	Title            *string
	Author           *string
	Subject          *string
	Keywords         *string
	Creator          *string
	Producer         *string
	CreationDate     *time.Time
	ModificationDate *time.Time
}

// PageResult holds the text extracted from exactly one page
type PageResult struct {
	PageNumber int    `json:"pageNumber"`
	Text       string `json:"text"`
	WordCount  int    `json:"wordCount"`
}

// ExtractionResult is the response of the extract-text operation.
// WordCount is counted on FullText, not summed over Pages.
type ExtractionResult struct {
	FullText  string       `json:"fullText"`
	Pages     []PageResult `json:"pages"`
	PageCount int          `json:"pageCount"`
	WordCount int          `json:"wordCount"`
	Language  string       `json:"language"`
}

// MetadataResult is the document metadata returned by the metadata operation.
// Optional fields are omitted from JSON when the document does not supply them.
type MetadataResult struct {
	Pages            int        `json:"pages"`
	Encrypted        bool       `json:"encrypted"`
	Version          float64    `json:"version"`
	Title            *string    `json:"title,omitempty"`
	Author           *string    `json:"author,omitempty"`
	Subject          *string    `json:"subject,omitempty"`
	Keywords         *string    `json:"keywords,omitempty"`
	Creator          *string    `json:"creator,omitempty"`
	Producer         *string    `json:"producer,omitempty"`
	CreationDate     *time.Time `json:"creationDate,omitempty"`
	ModificationDate *time.Time `json:"modificationDate,omitempty"`
}

// MetadataResponse wraps MetadataResult for the wire
type MetadataResponse struct {
	Metadata *MetadataResult `json:"metadata"`
}

// FilePayload is the JSON envelope carrying a Base64-encoded file
type FilePayload struct {
	FileContent string `json:"fileContent"`
	FileName    string `json:"fileName,omitempty"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}
