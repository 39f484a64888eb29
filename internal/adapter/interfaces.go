// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the gateway and the
// external storefront backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying HTTP client. The package ships a resty-based
// implementation ([NewHTTPBackendAdapter]) that resolves every outbound path
// through a [resolver.Resolver], forwards the caller's session token, and
// issues exactly one request per call.
//
// Non-2xx backend answers are reported as [*BackendStatusError] carrying the
// backend body verbatim; transport failures wrap [ErrBackendUnavailable].
// [Normalize] is the single place where the loosely-shaped backend JSON is
// mapped onto [models.Envelope].
package adapter

import (
	"context"

	"github.com/MKhiriev/storefront-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter issues calls against the storefront backend.
type BackendAdapter interface {
	// Do resolves req.Path, sends the request once and returns the raw
	// response. When the backend answers with a non-2xx status the response
	// is returned together with a [*BackendStatusError]. When no response
	// was received at all the error wraps [ErrBackendUnavailable] and the
	// response is zero.
	Do(ctx context.Context, req models.BackendRequest) (models.BackendResponse, error)

	// Resolve returns the absolute backend URL for path without calling it.
	Resolve(path string) string
}
