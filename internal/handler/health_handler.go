package handler

import (
	"net/http"

	"pdf-extract-api/internal/domain"
)

const serviceName = "pdf-extract-api"

// HealthHandler serves liveness and configuration checks
type HealthHandler struct {
	config domain.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(config domain.Config) *HealthHandler {
	return &HealthHandler{config: config}
}

// Health reports that the process is serving
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "UP",
		"service": serviceName,
	})
}

// DebugLimits reports the effective upload ceilings and pipeline settings
func (h *HealthHandler) DebugLimits(w http.ResponseWriter, r *http.Request) {
	maxFileSize := h.config.GetMaxFileSize()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"maxFileSize":              maxFileSize,
		"maxRequestSize":           maxFileSize + requestOverhead,
		"decoder":                  h.config.GetPDFDecoder(),
		"maxConcurrentExtractions": h.config.GetMaxConcurrentExtractions(),
		"extractionTimeout":        h.config.GetExtractionTimeout().String(),
		"apiKeyRequired":           len(h.config.GetAPIKeys()) > 0,
		"languageDetection":        h.config.IsLanguageDetectionEnabled(),
	})
}
