// Package server runs the gateway's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
