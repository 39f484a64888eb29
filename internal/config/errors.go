package config

import "errors"

// Errors returned by [GetGatewayConfig] and [NewGatewayConfig]. All of them
// are fatal at startup.
var (
	// ErrOriginNotConfigured indicates that no source supplied a backend
	// origin (neither BACKEND_API_ENDPOINT nor BACKEND_URL, nor their flag
	// or JSON equivalents).
	ErrOriginNotConfigured = errors.New("backend origin is not configured")
	// ErrInvalidBackendConfigs indicates an unusable backend location,
	// version segment or timeout.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
