package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/storefront-gateway/models"
)

func (h *Handler) getMetaCategories(w http.ResponseWriter, r *http.Request) {
	h.writeMetaList(w, r, h.services.MetaService.Categories, "Failed to fetch categories")
}

func (h *Handler) getMetaBrands(w http.ResponseWriter, r *http.Request) {
	h.writeMetaList(w, r, h.services.MetaService.Brands, "Failed to fetch brands")
}

func (h *Handler) getMetaPopularBrands(w http.ResponseWriter, r *http.Request) {
	h.writeMetaList(w, r, h.services.MetaService.PopularBrands, "Failed to fetch popular brands")
}

func (h *Handler) getMetaCategoryTree(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.MetaService.CategoryTree(r.Context())
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to fetch category tree")
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) writeMetaList(w http.ResponseWriter, r *http.Request, fetch func(context.Context) (models.ListResponse, error), message string) {
	resp, err := fetch(r.Context())
	if err != nil {
		writeListFailure(w, r, err, message)
		return
	}
	writeJSON(w, r, resp, http.StatusOK)
}
