// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"net/url"
)

// BackendRequest describes a single outbound call to the storefront backend.
type BackendRequest struct {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method string

	// Path is the request path handed to the URL resolver. It may be
	// relative ("/products"), prefixed ("/api/v1/products") or absolute.
	Path string

	// Query is encoded and appended to the resolved URL when non-empty.
	Query url.Values

	// Body is sent as-is with Content-Type application/json. Nil means no body.
	Body []byte

	// Anonymous suppresses the Authorization header even when the caller
	// has a session.
	Anonymous bool
}

// BackendResponse is the raw outcome of a backend call. Body is never
// interpreted by the adapter.
type BackendResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsSuccess reports whether the backend answered with a 2xx status.
func (r BackendResponse) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
