package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"pdf-extract-api/internal/domain"
	apperrors "pdf-extract-api/pkg/errors"
	"pdf-extract-api/pkg/logger"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError converts err to the error envelope. Only the canned message of an
// AppError reaches the client; causes are logged.
func writeError(w http.ResponseWriter, r *http.Request, fallback domain.Logger, err error) {
	appErr := apperrors.ToAppError(err)
	log := logger.FromContext(r.Context(), fallback)

	if appErr.StatusCode >= http.StatusInternalServerError {
		log.Error("Request failed", err, "method", r.Method, "path", r.URL.Path)
	} else {
		log.Info("Request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"status", appErr.StatusCode,
			"type", string(appErr.Type),
		)
	}

	writeJSON(w, appErr.StatusCode, domain.ErrorResponse{
		RequestID: RequestIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
		Status:    appErr.StatusCode,
		Error:     http.StatusText(appErr.StatusCode),
		Message:   appErr.Message,
	})
}
