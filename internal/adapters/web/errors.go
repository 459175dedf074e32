package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"inventory-tracker/internal/core"
	"inventory-tracker/internal/identity"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONStatus writes a JSON response with an explicit status code.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps domain errors to their HTTP shape. Validation blocks
// with 400, missing targets are 404, and an unauthenticated mutation is the
// API analogue of the login-modal redirect: 401 AUTH_REQUIRED, no side effect.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *core.ValidationError
	var nfErr *core.NotFoundError
	switch {
	case errors.As(err, &vErr):
		writeError(w, r, vErr.Error(), "VALIDATION", http.StatusBadRequest)
	case errors.As(err, &nfErr):
		writeError(w, r, nfErr.Error(), "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, core.ErrAuthRequired):
		writeError(w, r, "authentication required", "AUTH_REQUIRED", http.StatusUnauthorized)
	case errors.Is(err, core.ErrTokenUnknown):
		writeError(w, r, "unknown or expired confirmation token", "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, identity.ErrInvalidCredentials):
		writeError(w, r, "invalid email or password", "UNAUTHORIZED", http.StatusUnauthorized)
	case errors.Is(err, identity.ErrEmailTaken):
		writeError(w, r, "email already registered", "EMAIL_TAKEN", http.StatusBadRequest)
	default:
		writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}

// decodeJSON decodes the request body into v, replying 400 on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
