// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the gateway.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, session token parsing and trace IDs.
package utils

import (
	"context"
	"strings"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionTokenCtxKey is the key under which the caller's session token is
// stored in the request context. The backend adapter forwards it as a
// Bearer token.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSessionToken(ctx, "eyJhbGciOi...")
var SessionTokenCtxKey = contextKey("sessionToken")

// WithSessionToken returns a copy of ctx carrying token. A blank token
// leaves ctx unchanged.
func WithSessionToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, SessionTokenCtxKey, token)
}

// GetSessionTokenFromContext retrieves the session token from the context.
//
// Returns the token and an ok flag:
//   - ok == true : a non-empty token string is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok && token != ""
}
