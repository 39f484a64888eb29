// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/utils"
	"github.com/rs/zerolog"
)

// withSession puts the caller's session token into the request context so
// the backend adapter can forward it. The token is taken from an
// "Authorization: Bearer" header, falling back to the session cookie.
//
// The gateway never rejects a request here: a missing or malformed token
// just means the backend is called without credentials. The JWT subject, when
// readable, is added to the request logger.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, source := h.sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithSessionToken(r.Context(), token)

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("session_source", source)
			if sub, ok := utils.SubjectFromToken(token); ok {
				c = c.Str("session_subject", sub)
			}
			return c
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

func (h *Handler) sessionToken(r *http.Request) (token, source string) {
	if header := r.Header.Get("Authorization"); header != "" {
		t, err := utils.ParseBearerToken(header)
		if err == nil {
			return t, "header"
		}
		logger.FromRequest(r).Debug().Err(err).Msg("ignoring authorization header")
	}

	if cookie, err := r.Cookie(h.sessionCookie); err == nil {
		if v := strings.TrimSpace(cookie.Value); v != "" {
			return v, "cookie"
		}
	}
	return "", ""
}
