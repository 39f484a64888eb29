// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
)

// forward issues req and, on success, replaces the backend's 2xx code with
// successStatus when it is non-zero.
func forward(ctx context.Context, backend adapter.BackendAdapter, req models.BackendRequest, successStatus int) (models.BackendResponse, error) {
	resp, err := backend.Do(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("backend call failed")
		return resp, err
	}

	if successStatus != 0 {
		resp.StatusCode = successStatus
	}
	return resp, nil
}

// resourcePath joins a collection path and an escaped id.
func resourcePath(collection, id string) (string, error) {
	if id == "" {
		return "", ErrMissingID
	}
	return collection + "/" + url.PathEscape(id), nil
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// positiveOr returns n when it is above zero and def otherwise. Negative
// page and size values are clamped the same way as zero.
func positiveOr(n, def int) int {
	if n > 0 {
		return n
	}
	return def
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
