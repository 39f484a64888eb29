// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/storefront-gateway/internal/resolver"
)

// Defaults applied by [GetGatewayConfig] when a source leaves a field empty.
const (
	DefaultHTTPAddress       = ":3001"
	DefaultServerTimeout     = 30 * time.Second
	DefaultBackendTimeout    = 15 * time.Second
	DefaultSessionCookieName = "sessionToken"
	DefaultLogLevel          = "info"
	DefaultAppVersion        = "dev"
)

// GatewayApp holds application-level settings of the gateway.
type GatewayApp struct {
	// Version is reported by the /api/version endpoint.
	Version string `validate:"required"`
	// LogLevel is the zerolog level name.
	LogLevel string `validate:"oneof=trace debug info warn error"`
}

// GatewayBackend is the normalized backend location. Origin never contains a
// path; APIVersion never contains a slash.
type GatewayBackend struct {
	// Origin is scheme + host + optional port of the backend.
	Origin string `validate:"required,http_url"`
	// APIVersion is the version segment, e.g. "v1".
	APIVersion string `validate:"required,excludesall=/?#"`
	// RequestTimeout bounds a single outbound call.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// GatewayServer holds inbound HTTP settings.
type GatewayServer struct {
	// HTTPAddress is the listen address.
	HTTPAddress string `validate:"required"`
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration `validate:"gt=0"`
	// PublicURL is the storefront's own URL, if known.
	PublicURL string `validate:"omitempty,http_url"`
}

// GatewaySession holds session token settings.
type GatewaySession struct {
	// CookieName is the cookie carrying the session token.
	CookieName string `validate:"required"`
}

// GatewayConfig is the immutable runtime configuration of the gateway,
// assembled once from [StructuredConfig] at startup.
type GatewayConfig struct {
	App     GatewayApp
	Backend GatewayBackend
	Server  GatewayServer
	Session GatewaySession
}

// GetGatewayConfig loads the merged structured configuration, normalizes the
// backend location and validates the result.
//
// A backend origin that cannot be determined from any source yields
// [ErrOriginNotConfigured]; callers are expected to treat it as fatal.
func GetGatewayConfig() (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewGatewayConfig(cfg)
}

// NewGatewayConfig maps cfg onto a [GatewayConfig], applying defaults.
//
// The backend location is taken from Backend.APIEndpoint, falling back to
// Backend.URL. An "/api/<version>" suffix embedded in the endpoint is split
// out here, and its version wins over Backend.APIVersion.
func NewGatewayConfig(cfg *StructuredConfig) (*GatewayConfig, error) {
	origin, version, err := resolveBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	gatewayCfg := &GatewayConfig{
		App: GatewayApp{
			Version:  withDefault(cfg.App.Version, DefaultAppVersion),
			LogLevel: strings.ToLower(withDefault(cfg.App.LogLevel, DefaultLogLevel)),
		},
		Backend: GatewayBackend{
			Origin:         origin,
			APIVersion:     version,
			RequestTimeout: durationWithDefault(cfg.Backend.RequestTimeout, DefaultBackendTimeout),
		},
		Server: GatewayServer{
			HTTPAddress:    withDefault(cfg.Server.HTTPAddress, DefaultHTTPAddress),
			RequestTimeout: durationWithDefault(cfg.Server.RequestTimeout, DefaultServerTimeout),
			PublicURL:      strings.TrimRight(strings.TrimSpace(cfg.Server.PublicURL), "/"),
		},
		Session: GatewaySession{
			CookieName: withDefault(cfg.Session.CookieName, DefaultSessionCookieName),
		},
	}

	if err = gatewayCfg.validate(); err != nil {
		return nil, err
	}

	return gatewayCfg, nil
}

func resolveBackend(b Backend) (origin, version string, err error) {
	endpoint := withDefault(b.APIEndpoint, b.URL)
	if endpoint == "" {
		return "", "", ErrOriginNotConfigured
	}

	origin, version, err = resolver.SplitEndpoint(endpoint)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidBackendConfigs, err)
	}

	if version == "" {
		version = strings.Trim(strings.TrimSpace(b.APIVersion), "/")
	}
	if version == "" {
		version = resolver.DefaultVersion
	}

	return origin, version, nil
}

func withDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}

func durationWithDefault(value, def time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return def
}
