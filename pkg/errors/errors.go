package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents the classified reason a request did not succeed
type ErrorType string

const (
	ErrorTypeInvalidFile       ErrorType = "invalid_file"
	ErrorTypePasswordProtected ErrorType = "password_protected"
	ErrorTypeMalformedRequest  ErrorType = "malformed_request"
	ErrorTypeTooLarge          ErrorType = "too_large"
	ErrorTypeUnauthorized      ErrorType = "unauthorized"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeMethodNotAllowed  ErrorType = "method_not_allowed"
	ErrorTypeInternal          ErrorType = "internal"
)

// Canned client messages
const (
	MsgEmptyFile         = "No file uploaded or file is empty."
	MsgWrongType         = "Invalid file type. Only PDF files are allowed."
	MsgCorruptDocument   = "The uploaded PDF document appears to be corrupt or malformed."
	MsgEncrypted         = "PDF is password-protected/encrypted and not supported."
	MsgEncryptedMetadata = "PDF is password-protected/encrypted. Metadata cannot be extracted."
	MsgMissingFilePart   = "Missing required file part 'file'."
	MsgEmptyPayload      = "fileContent in JSON payload cannot be null or empty."
	MsgInvalidBase64     = "fileContent in JSON payload is not valid Base64."
	MsgInvalidJSON       = "Request body is not a valid JSON payload."
	MsgInvalidMultipart  = "Request body is not valid multipart form data."
	MsgInternal          = "Internal error"
	MsgInvalidAPIKey     = "Invalid API Key"
	MsgRouteNotFound     = "Resource not found"
	MsgMethodNotAllowed  = "Method not allowed"
	msgTooLargeWithLimit = "File size exceeds the maximum limit of %d bytes."
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewInvalidFileError creates an error for an upload rejected before decode
func NewInvalidFileError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidFile,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewCorruptDocumentError creates an invalid-file error for a document the decoder could not parse
func NewCorruptDocumentError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidFile,
		Message:    MsgCorruptDocument,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewPasswordProtectedError creates an error for an encrypted document
func NewPasswordProtectedError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypePasswordProtected,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewMalformedRequestError creates an error for a request whose framing is broken
func NewMalformedRequestError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeMalformedRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewTooLargeError creates an error for an upload above the configured ceiling
func NewTooLargeError(limit int64) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    fmt.Sprintf(msgTooLargeWithLimit, limit),
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates an error for an unsupported method on a known route
func NewMethodNotAllowedError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeMethodNotAllowed,
		Message:    message,
		StatusCode: http.StatusMethodNotAllowed,
	}
}

// NewInternalError creates a new internal server error.
// The cause is kept for logging; clients only ever see MsgInternal.
func NewInternalError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    MsgInternal,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As returns the *AppError in err's chain, if any
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// ToAppError classifies any error, falling back to an internal error
func ToAppError(err error) *AppError {
	if appErr, ok := As(err); ok {
		return appErr
	}
	return NewInternalError(err)
}
