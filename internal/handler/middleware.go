package handler

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"pdf-extract-api/internal/domain"
	apperrors "pdf-extract-api/pkg/errors"
	"pdf-extract-api/pkg/logger"

	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation id in both directions
	RequestIDHeader = "X-Request-ID"
	// APIKeyHeader carries the client key when API keys are configured
	APIKeyHeader = "X-API-Key"

	maxRequestIDLength = 128
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestIDFromContext returns the correlation id of the current request
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// RequestIDMiddleware echoes a client supplied X-Request-ID or generates one,
// and stores a request-scoped logger carrying it in the context.
func RequestIDMiddleware(base domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDContextKey, id)
			ctx = logger.WithContext(ctx, base.With("request_id", id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RecoverMiddleware turns a handler panic into an internal error envelope
func RecoverMiddleware(base domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					writeError(w, r, base, apperrors.NewInternalError(fmt.Errorf("panic: %v", rec)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// APIKeyMiddleware rejects requests without a known X-API-Key.
// With no keys configured every request passes.
type APIKeyMiddleware struct {
	keys   []string
	logger domain.Logger
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(keys []string, logger domain.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys:   keys,
		logger: logger,
	}
}

// Middleware returns an HTTP middleware that validates the API key
func (m *APIKeyMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(m.keys) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(APIKeyHeader)
		if key == "" || !m.valid(key) {
			logger.FromContext(r.Context(), m.logger).Warn("API key rejected", "path", r.URL.Path, "key_present", key != "")
			writeError(w, r, m.logger, apperrors.NewUnauthorizedError(apperrors.MsgInvalidAPIKey))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *APIKeyMiddleware) valid(key string) bool {
	for _, k := range m.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}
