// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/storefront-gateway/models"
	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod guards a catch-all handler. A path owned by a dedicated
// route is answered with 404 when it reaches next, so an unsupported method
// looks the same as an unknown route and never falls through to the backend.
//
// Usage:
//
//	router.HandleFunc("/api/*", CheckHTTPMethod(h.proxy))
func CheckHTTPMethod(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ownedByRoute(r) {
			notFound(w, r)
			return
		}
		next(w, r)
	}
}

// ownedByRoute reports whether any method of the request path matches a
// route without a wildcard.
func ownedByRoute(r *http.Request) bool {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return false
	}

	for _, method := range routeMethods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, r.URL.Path) && !strings.HasSuffix(tctx.RoutePattern(), "*") {
			return true
		}
	}
	return false
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.MessageResponse{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
