// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// storefront gateway. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string
	// and the logging level.
	App App `envPrefix:"APP_"`

	// Backend describes where the external storefront backend lives.
	Backend Backend `envPrefix:"BACKEND_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Session holds settings for reading the caller's session token.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Backend holds the raw, not yet normalized backend location settings.
//
// Two forms are recognized for APIEndpoint:
//
//	http://localhost:8081          bare origin, version taken from APIVersion
//	http://localhost:8081/api/v1   combined, version split out at load time
type Backend struct {
	// APIEndpoint is the preferred backend location.
	// Env: BACKEND_API_ENDPOINT
	APIEndpoint string `env:"API_ENDPOINT"`

	// URL is the bare backend origin, used when APIEndpoint is empty.
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// APIVersion is the version segment used when the endpoint does not
	// carry one. Defaults to "v1".
	// Env: BACKEND_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// RequestTimeout bounds a single outbound backend call (e.g. "15s").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PublicURL is the public URL of the storefront itself. Informational;
	// reported by the health endpoint.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// Session holds settings for extracting the caller's session token.
type Session struct {
	// CookieName is the cookie that carries the session token.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
