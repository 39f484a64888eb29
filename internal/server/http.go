// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
)

// readHeaderTimeout bounds slow clients before a handler runs.
const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.GatewayServer, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			// leave room for chi's Timeout middleware to write its 504
			WriteTimeout: cfg.RequestTimeout + 5*time.Second,
			IdleTimeout:  2 * time.Minute,
		},
		logger: logger,
	}
}

// listen binds the configured address. It is split from serve so the bound
// address is known before requests are accepted.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", h.server.Addr, err)
	}

	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()
	return nil
}

func (h *httpServer) serve() error {
	h.mu.Lock()
	ln := h.listener
	h.mu.Unlock()

	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

// addr returns the bound address, or nil before listen.
func (h *httpServer) addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
