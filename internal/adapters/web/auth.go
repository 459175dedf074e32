package web

import (
	"net/http"

	"inventory-tracker/internal/app"
)

const sessionCookie = "session_token"

// RequireAuth rejects requests while no owner session is open. The gate holds
// the binary authentication state; this middleware is its HTTP surface, so an
// unauthenticated mutation is refused before any handler logic runs.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.svc.CurrentSession(r.Context()) == nil {
			writeError(w, r, "authentication required", "AUTH_REQUIRED", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// login handles POST /api/auth/login. Credential errors come back 401 with an
// inline message so the login modal can stay open for retry.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.svc.AuthenticateOwner(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   3600,
	})
	writeJSON(w, session)
}

// logout handles POST /api/auth/logout — closes the session and clears the cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.LogoutOwner(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}

// me handles GET /api/auth/me — reports who is logged in.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session := h.svc.CurrentSession(r.Context())
	if session == nil {
		writeError(w, r, "not authenticated", "AUTH_REQUIRED", http.StatusUnauthorized)
		return
	}
	writeJSON(w, session)
}

// signup handles POST /signup — creates a pre-confirmed owner account.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req app.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.CreateOwner(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"success": true, "user": result})
}
