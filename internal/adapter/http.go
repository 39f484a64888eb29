// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/resolver"
	"github.com/MKhiriev/storefront-gateway/internal/utils"
	"github.com/MKhiriev/storefront-gateway/models"
)

type httpBackendAdapter struct {
	client   *utils.HTTPClient
	resolver *resolver.Resolver

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs a resty implementation of
// [BackendAdapter]. All URLs come from r; the adapter never reads
// configuration on its own. timeout bounds a single call.
func NewHTTPBackendAdapter(r *resolver.Resolver, timeout time.Duration, logger *logger.Logger) BackendAdapter {
	logger.Info().
		Str("versioned_base", r.VersionedBase()).
		Dur("timeout", timeout).
		Msg("backend adapter created")

	return &httpBackendAdapter{
		client:   utils.NewHTTPClient(timeout),
		resolver: r,
		logger:   logger,
	}
}

// Resolve implements [BackendAdapter].
func (a *httpBackendAdapter) Resolve(path string) string {
	return a.resolver.Resolve(path)
}

// Do implements [BackendAdapter].
func (a *httpBackendAdapter) Do(ctx context.Context, req models.BackendRequest) (models.BackendResponse, error) {
	log := logger.FromContext(ctx)

	target := a.resolver.Resolve(req.Path)
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}

	if version, ok := a.resolver.ForeignVersion(req.Path); ok {
		log.Warn().
			Str("path", req.Path).
			Str("requested_version", version).
			Str("configured_version", a.resolver.Version()).
			Msg("request path names a different API version, rewriting to configured version")
	}
	if a.resolver.HasDuplicatePrefix(target) {
		log.Error().Str("path", req.Path).Str("url", target).Msg("resolved URL contains a duplicated API prefix")
	}

	method := strings.ToUpper(req.Method)
	r := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if !req.Anonymous {
		if token, ok := utils.GetSessionTokenFromContext(ctx); ok {
			r.SetAuthToken(token)
		}
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(method, target)
	if err != nil {
		log.Err(err).Str("method", method).Str("url", target).Msg("backend request failed")
		return models.BackendResponse{}, fmt.Errorf("%w: %s %s: %w", ErrBackendUnavailable, method, target, err)
	}

	out := models.BackendResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}

	log.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", out.StatusCode).
		Dur("duration", time.Since(start)).
		Int("size", len(out.Body)).
		Msg("backend call")

	return out, mapHTTPError(out)
}
