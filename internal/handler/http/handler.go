// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	sessionCookie  string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil cfg falls back to the config
// package defaults.
func NewHandler(services *service.Services, cfg *config.GatewayConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		sessionCookie:  config.DefaultSessionCookieName,
		requestTimeout: config.DefaultServerTimeout,
		logger:         logger,
	}

	if cfg != nil {
		if cfg.Session.CookieName != "" {
			h.sessionCookie = cfg.Session.CookieName
		}
		if cfg.Server.RequestTimeout > 0 {
			h.requestTimeout = cfg.Server.RequestTimeout
		}
	}

	logger.Info().Msg("http handler created")
	return h
}
