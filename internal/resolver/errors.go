// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import "errors"

// Configuration errors returned by [New]. Both are fatal at startup.
var (
	// ErrEmptyOrigin is returned when the origin is empty after trimming.
	ErrEmptyOrigin = errors.New("backend origin is empty")

	// ErrInvalidOrigin is returned when the origin is not an absolute
	// http(s) URL or carries a path other than an "/api/<version>" suffix.
	ErrInvalidOrigin = errors.New("backend origin is invalid")
)
