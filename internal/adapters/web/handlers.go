package web

import (
	"net/http"

	"inventory-tracker/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes. Reads are
// public, the grid and stats render for anonymous visitors; mutations sit
// behind RequireAuth.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	// Health (public)
	r.Get("/api/health", h.health)

	// Owner account creation (public, administrative)
	r.Post("/signup", h.signup)

	// Auth (public)
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/logout", h.logout)

	// Catalog reads (public)
	r.Get("/api/inventory", h.listInventory)
	r.Get("/api/inventory/categories", h.listCategories)
	r.Get("/api/inventory/stats", h.stats)

	// Mutations (401 JSON when unauthenticated)
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Get("/api/auth/me", h.me)
		r.Post("/api/inventory", h.createItem)
		r.Put("/api/inventory/{id}", h.updateItem)
		r.Delete("/api/inventory/{id}", h.requestRemoval)
		r.Post("/api/inventory/removals/{token}", h.confirmRemoval)
	})

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// health handles GET /api/health.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
