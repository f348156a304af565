// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/models"
)

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithLogging wraps a handler with request logging
func WithLogging(logger *zap.SugaredLogger, next http.HandlerFunc) http.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger.Debugw("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		logger.Infow("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.S().Errorw("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// RedirectResponse sends a 303 to location with a JSON body carrying the
// message, so API clients that do not follow redirects still see it.
func RedirectResponse(w http.ResponseWriter, location, message string) {
	w.Header().Set("Location", location)
	JSONResponse(w, http.StatusSeeOther, models.VoteErrorResponse{
		Error:    http.StatusText(http.StatusSeeOther),
		Message:  message,
		Redirect: location,
	})
}

// MaxBodyBytes caps every request body read by the handlers.
const MaxBodyBytes = 1 << 20

// LimitBody replaces r.Body with a reader that fails after MaxBodyBytes.
func LimitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
}

// ParseJSONBody parses the request body into the given struct. Bodies over
// MaxBodyBytes fail with *http.MaxBytesError.
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	LimitBody(w, r)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// BodyErrorResponse reports a body that could not be read: 413 when it was
// over the limit, 400 with message otherwise.
func BodyErrorResponse(w http.ResponseWriter, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	ErrorResponse(w, http.StatusBadRequest, message)
}

// CORS middleware allows cross-origin requests from browser clients
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+AdminKeyHeader+", "+VoterTokenHeader)
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClientIP extracts the client IP address
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr
func GetClientIP(r *http.Request) string {
	// First hop of the proxy chain
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexAny(xff, ", "); i >= 0 {
			return xff[:i]
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
