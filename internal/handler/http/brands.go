package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAdminBrands(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.BrandService.ListAdmin(r.Context(), brandAdminQuery(r.URL.Query()))
	if err != nil {
		writeListFailure(w, r, err, "Failed to fetch brands")
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(w, r)
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to create brand")
		return
	}

	resp, err := h.services.BrandService.Create(r.Context(), body)
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to create brand")
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) updateBrand(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(w, r)
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to update brand")
		return
	}

	resp, err := h.services.BrandService.Update(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to update brand")
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.BrandService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to delete brand")
		return
	}
	writeBackend(w, r, resp)
}
