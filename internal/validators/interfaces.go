// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before the gateway forwards them
// to the backend.
//
// A Validator accepts an arbitrary value and optionally a list of field names
// to restrict the check to. Services receive a Validator and call it before
// issuing the outbound request, so the transport layer stays free of
// payload rules.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
