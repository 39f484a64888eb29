// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBackendUnavailable is wrapped by every failure that happened before a
// backend response was received: connection refused, DNS, timeout, or a
// cancelled context.
var ErrBackendUnavailable = errors.New("backend unavailable")

// BackendStatusError reports a non-2xx backend answer. Body is the backend
// response body, unmodified.
type BackendStatusError struct {
	Status      int
	ContentType string
	Body        []byte
}

func (e *BackendStatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("backend responded %d: %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Body)
}

// AsBackendStatusError unwraps err into a *BackendStatusError.
func AsBackendStatusError(err error) (*BackendStatusError, bool) {
	var statusErr *BackendStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
