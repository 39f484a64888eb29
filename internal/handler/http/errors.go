// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// MaxRequestBodySize caps inbound request bodies forwarded to the backend.
const MaxRequestBodySize = 1 << 20

var (
	// ErrRequestBodyTooLarge is returned when an inbound body exceeds
	// [MaxRequestBodySize].
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrReadingRequestBody wraps any other failure while reading a body.
	ErrReadingRequestBody = errors.New("error reading request body")
)

// User-facing messages.
const (
	msgInternalError          = "Internal Error"
	msgAuthenticationRequired = "Authentication required"
	msgMissingCustomerInfo    = "Thiếu thông tin khách hàng"
	msgInvalidRequestBody     = "Invalid JSON was passed"
	msgProductNotFound        = "Product not found"
)
