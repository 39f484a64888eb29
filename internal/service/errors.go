package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoBackendAdapter      = errors.New("backend adapter is not provided")

	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidRequestBody     = errors.New("invalid request body")
	ErrMissingID              = errors.New("missing resource id")

	// ErrInvalidOrder is returned when a guest order lacks the customer's
	// full name, phone or address.
	ErrInvalidOrder = errors.New("missing customer information")
)
