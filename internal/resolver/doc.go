// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver maps request paths onto absolute backend URLs.
//
// A [Resolver] is built once at startup from the backend origin and the API
// version segment and is immutable afterwards. [Resolver.Resolve] is a pure
// function of its input: it never performs I/O, never fails and is safe for
// concurrent use from any number of request handlers.
//
// Every resolved URL lives under the versioned base
// (origin + "/api/" + version). Request paths may arrive in three forms:
//
//	http://other.host/x   absolute, returned unchanged
//	/api/v1/products      already prefixed, prefix is replaced
//	products, /products   relative to the versioned base
//
// The resolver guarantees the "/api/<version>" prefix is never doubled in the
// path part of the result.
package resolver
