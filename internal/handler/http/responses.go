// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/service"
	"github.com/MKhiriev/storefront-gateway/internal/utils"
	"github.com/MKhiriev/storefront-gateway/models"
)

var nullJSON = json.RawMessage("null")

// writeBackend writes a successful backend answer unchanged.
func writeBackend(w http.ResponseWriter, r *http.Request, resp models.BackendResponse) {
	if _, err := utils.WriteRaw(w, resp.ContentType, resp.Body, resp.StatusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing backend response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeListFailure answers a failed list call with {"data":[],"message","error"}.
func writeListFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	logFailure(r, err, message)
	writeJSON(w, r, models.ListErrorResponse{
		Data:    make([]json.RawMessage, 0),
		Message: messageFromError(err, message),
		Error:   detailFromError(err),
	}, statusFromError(err))
}

// writeItemFailure answers a failed single-object call with
// {"data":null,"message"}. The backend body becomes the message when present.
func writeItemFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	logFailure(r, err, message)

	msg := messageFromError(err, message)
	if statusErr, ok := adapter.AsBackendStatusError(err); ok && len(statusErr.Body) > 0 {
		msg = string(statusErr.Body)
	}
	writeJSON(w, r, models.ItemErrorResponse{Data: nullJSON, Message: msg}, statusFromError(err))
}

// writeProxyFailure answers a failed mutation with
// {"success":false,"message","error"}.
func writeProxyFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	logFailure(r, err, message)

	resp := models.ProxyErrorResponse{Success: false, Message: messageFromError(err, message)}
	if !isLocalRejection(err) {
		resp.Error = detailFromError(err)
	}
	writeJSON(w, r, resp, statusFromError(err))
}

// writeVerbatimFailure relays a non-2xx backend answer byte for byte.
// Gateway-side failures fall back to {"message": ...}.
func writeVerbatimFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	logFailure(r, err, message)

	if statusErr, ok := adapter.AsBackendStatusError(err); ok {
		if _, werr := utils.WriteRaw(w, statusErr.ContentType, statusErr.Body, statusErr.Status); werr != nil {
			logger.FromRequest(r).Err(werr).Msg("error writing backend response")
		}
		return
	}

	if errors.Is(err, service.ErrAuthenticationRequired) {
		writeJSON(w, r, models.ProxyErrorResponse{Success: false, Message: msgAuthenticationRequired}, http.StatusUnauthorized)
		return
	}
	writeJSON(w, r, models.MessageResponse{Message: messageFromError(err, message)}, statusFromError(err))
}

func logFailure(r *http.Request, err error, message string) {
	log := logger.FromRequest(r)
	if isLocalRejection(err) {
		log.Info().Err(err).Msg(message)
		return
	}
	log.Err(err).Int("status", statusFromError(err)).Msg(message)
}

// isLocalRejection reports a 4xx decided by the gateway itself.
func isLocalRejection(err error) bool {
	if _, ok := adapter.AsBackendStatusError(err); ok {
		return false
	}
	status := statusFromError(err)
	return status >= 400 && status < 500
}

// readBody reads at most MaxRequestBodySize bytes of r's body. An empty body
// yields nil.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrRequestBodyTooLarge
		}
		return nil, errors.Join(ErrReadingRequestBody, err)
	}
	if len(body) == 0 {
		return nil, nil
	}
	return body, nil
}

// readJSONBody is readBody that also rejects malformed JSON.
func readJSONBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, service.ErrInvalidRequestBody
	}
	return body, nil
}
