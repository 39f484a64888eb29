package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-gateway/internal/service"
	"github.com/MKhiriev/storefront-gateway/internal/utils"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.CategoryService.List(r.Context(), categoryQuery(r.URL.Query()))
	if err != nil {
		writeListFailure(w, r, err, "Failed to fetch categories")
		return
	}
	writeBackend(w, r, resp)
}

// createCategory checks the session before the body so an anonymous caller
// gets 401 even with a malformed payload.
func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetSessionTokenFromContext(r.Context()); !ok {
		writeVerbatimFailure(w, r, service.ErrAuthenticationRequired, "Failed to create category")
		return
	}

	body, err := readJSONBody(w, r)
	if err != nil {
		writeVerbatimFailure(w, r, err, "Failed to create category")
		return
	}

	resp, err := h.services.CategoryService.Create(r.Context(), body)
	if err != nil {
		writeVerbatimFailure(w, r, err, "Failed to create category")
		return
	}
	writeBackend(w, r, resp)
}
