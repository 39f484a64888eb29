// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-gateway/models"
)

// proxy forwards any /api request without a dedicated route. The path keeps
// its /api prefix; the resolver strips it together with any version segment
// the caller supplied. The query string is passed through verbatim.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeProxyFailure(w, r, err, "Failed to proxy request")
		return
	}

	path := r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}

	resp, err := h.services.ProxyService.Forward(r.Context(), models.BackendRequest{
		Method: r.Method,
		Path:   path,
		Body:   body,
	})
	if err != nil {
		writeVerbatimFailure(w, r, err, "Failed to proxy request")
		return
	}
	writeBackend(w, r, resp)
}
