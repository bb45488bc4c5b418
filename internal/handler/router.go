package handler

import (
	"net/http"

	"pdf-extract-api/internal/domain"
	apperrors "pdf-extract-api/pkg/errors"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	extractHandler *ExtractHandler,
	healthHandler *HealthHandler,
	apiKeyMiddleware func(http.Handler) http.Handler,
	allowedOrigins []string,
	logger domain.Logger,
) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Routes behind the API key check
	protected := api.PathPrefix("").Subrouter()
	protected.Use(apiKeyMiddleware)

	protected.HandleFunc("/debug-limits", healthHandler.DebugLimits).Methods(http.MethodGet)
	protected.HandleFunc("/extract-text", extractHandler.ExtractText).Methods(http.MethodPost)
	protected.HandleFunc("/extract-text-json", extractHandler.ExtractTextJSON).Methods(http.MethodPost)
	protected.HandleFunc("/metadata", extractHandler.Metadata).Methods(http.MethodPost)
	protected.HandleFunc("/metadata-json", extractHandler.MetadataJSON).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, logger, apperrors.NewNotFoundError(apperrors.MsgRouteNotFound))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, logger, apperrors.NewMethodNotAllowedError(apperrors.MsgMethodNotAllowed))
	})

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			APIKeyHeader,
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	var h http.Handler = router
	h = RecoverMiddleware(logger)(h)
	h = RequestIDMiddleware(logger)(h)
	return c.Handler(h)
}
