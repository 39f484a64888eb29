// Package http implements the HTTP surface of the storefront gateway.
//
// It wires the /api routes, request handlers and middleware. Request tracing,
// access logging, response compression and session extraction happen here
// before a request reaches the service layer. Backend outcomes are written
// back without reinterpretation.
package http
