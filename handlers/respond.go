// Package handlers holds the JSON helpers shared by every endpoint plus
// the service-level endpoints that live at the API root.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"portfolio/backend/schemas"
)

// errorResponse is the error envelope every endpoint uses.
type errorResponse struct {
	Detail string               `json:"detail"`
	Errors []schemas.FieldError `json:"errors,omitempty"`
}

// JSON writes v as an application/json response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

// Error writes the error envelope with a human-readable detail string.
func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, errorResponse{Detail: detail})
}

// ValidationError writes a 400 carrying per-field messages when err is a
// schema validation failure, and a bare 400 otherwise.
func ValidationError(w http.ResponseWriter, err error) {
	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		JSON(w, http.StatusBadRequest, errorResponse{Detail: "Validation failed", Errors: verr.Fields})
		return
	}
	Error(w, http.StatusBadRequest, err.Error())
}

// StoreError maps a store failure to a 500. The detail is truncated so
// driver internals never leak wholesale.
func StoreError(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, Truncate(err.Error(), 120))
}

// NotFound is the router's fallback for unknown paths.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusNotFound, "Not Found")
	})
}

// MethodNotAllowed rejects known paths hit with the wrong verb.
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}

// Truncate shortens s to at most max characters.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
