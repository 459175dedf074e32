package web

import (
	"net/http"

	"inventory-tracker/internal/app"

	"github.com/go-chi/chi/v5"
)

// listInventory handles GET /api/inventory?search=&category=&stock=.
func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.ListInventory(r.Context(), app.ListInventoryRequest{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Stock:    q.Get("stock"),
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// listCategories handles GET /api/inventory/categories.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// stats handles GET /api/inventory/stats.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetStats(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// createItem handles POST /api/inventory.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var input app.ItemInput
	if !decodeJSON(w, r, &input) {
		return
	}
	result, err := h.svc.AddItem(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, result)
}

// updateItem handles PUT /api/inventory/{id}. The full record is required;
// partial updates are not supported.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var input app.ItemInput
	if !decodeJSON(w, r, &input) {
		return
	}
	result, err := h.svc.UpdateItem(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// requestRemoval handles DELETE /api/inventory/{id}. Nothing is removed yet;
// the response carries the confirmation token for the second step.
func (h *Handler) requestRemoval(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.RequestItemRemoval(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusAccepted, result)
}

// confirmRemoval handles POST /api/inventory/removals/{token}. Confirming a
// removal whose item is already gone still succeeds.
func (h *Handler) confirmRemoval(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ConfirmItemRemoval(r.Context(), chi.URLParam(r, "token")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
