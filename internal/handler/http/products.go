// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPublicProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ProductService.ListPublic(r.Context(), r.URL.Query())
	if err != nil {
		writeListFailure(w, r, err, "Failed to fetch products")
		return
	}
	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) listAdminProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ProductService.ListAdmin(r.Context(), productAdminQuery(r.URL.Query()))
	if err != nil {
		writeListFailure(w, r, err, "Failed to fetch admin products")
		return
	}
	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) getPublicProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ProductService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeItemFailure(w, r, err, msgProductNotFound)
		return
	}
	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) getProductStatuses(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ProductService.Statuses(r.Context())
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to fetch product statuses")
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(w, r)
	if err != nil {
		writeVerbatimFailure(w, r, err, "Failed to create product")
		return
	}

	resp, err := h.services.ProductService.Create(r.Context(), body)
	if err != nil {
		writeVerbatimFailure(w, r, err, "Failed to create product")
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(w, r)
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to update product")
		return
	}

	resp, err := h.services.ProductService.Update(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to update product")
		return
	}
	writeBackend(w, r, resp)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ProductService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to delete product")
		return
	}
	writeBackend(w, r, resp)
}
