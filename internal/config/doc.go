// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged values
// and [GetGatewayConfig] for the normalized, validated runtime configuration.
// The backend origin and API version are split and normalized exactly once,
// here, and never re-derived at request time.
package config
