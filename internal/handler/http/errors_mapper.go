package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrAuthenticationRequired: http.StatusUnauthorized,
	service.ErrInvalidRequestBody:     http.StatusBadRequest,
	service.ErrInvalidOrder:           http.StatusBadRequest,
	service.ErrMissingID:              http.StatusBadRequest,

	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrReadingRequestBody:  http.StatusBadRequest,

	adapter.ErrBackendUnavailable: http.StatusBadGateway,
}

// statusFromError returns the backend's own status for a non-2xx answer and
// the mapped status for gateway-side failures.
func statusFromError(err error) int {
	if statusErr, ok := adapter.AsBackendStatusError(err); ok {
		return statusErr.Status
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing message for err. Gateway-side
// rejections carry a fixed text, unexpected failures "Internal Error", and
// backend failures the route's fallback.
func messageFromError(err error, fallback string) string {
	if _, ok := adapter.AsBackendStatusError(err); ok {
		return fallback
	}

	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		return msgAuthenticationRequired
	case errors.Is(err, service.ErrInvalidOrder):
		return msgMissingCustomerInfo
	case errors.Is(err, service.ErrInvalidRequestBody):
		return msgInvalidRequestBody
	case statusFromError(err) == http.StatusInternalServerError:
		return msgInternalError
	default:
		return fallback
	}
}

// detailFromError returns the backend body for non-2xx answers and the
// error text for everything else.
func detailFromError(err error) string {
	if statusErr, ok := adapter.AsBackendStatusError(err); ok {
		return string(statusErr.Body)
	}
	return err.Error()
}
