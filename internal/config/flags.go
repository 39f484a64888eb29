// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a gateway address in format [host]:[port]
//	-b backend API endpoint, bare origin or origin/api/<version>
//	-backend-url bare backend origin (legacy)
//	-api-version backend API version segment (e.g. "v1")
//	-backend-timeout outbound backend request timeout (e.g. "15s")
//	-request-timeout inbound request timeout (e.g. "30s", "1m")
//	-public-url public URL of the storefront
//	-session-cookie name of the session token cookie
//	-log-level log level (debug, info, warn, error)
//	-app-version application version
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiEndpoint string
	var backendURL string
	var apiVersion string
	var backendTimeout time.Duration
	var requestTimeout time.Duration
	var publicURL string
	var sessionCookie string
	var logLevel string
	var appVersion string
	var jsonConfigPath string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiEndpoint, "b", "", "Backend API endpoint")
	fs.StringVar(&backendURL, "backend-url", "", "Backend origin (legacy)")
	fs.StringVar(&apiVersion, "api-version", "", "Backend API version segment")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&publicURL, "public-url", "", "Public storefront URL")
	fs.StringVar(&sessionCookie, "session-cookie", "", "Session token cookie name")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:  appVersion,
			LogLevel: logLevel,
		},
		Backend: Backend{
			APIEndpoint:    apiEndpoint,
			URL:            backendURL,
			APIVersion:     apiVersion,
			RequestTimeout: backendTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			PublicURL:      publicURL,
		},
		Session: Session{
			CookieName: sessionCookie,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
