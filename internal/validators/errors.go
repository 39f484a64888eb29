package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingCustomer = errors.New("customer is required")
	ErrMissingFullName = errors.New("customer full name is required")
	ErrMissingPhone    = errors.New("customer phone is required")
	ErrMissingAddress  = errors.New("customer address is required")
)
