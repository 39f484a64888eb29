// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultVersion is the API version segment used when none is configured.
const DefaultVersion = "v1"

const apiPrefix = "/api/"

// Resolver computes outbound backend URLs from request paths.
// The zero value is not usable; construct one with [New].
type Resolver struct {
	origin        string
	version       string
	versionedBase string

	// prefix is "/api/<version>", doubled is the same value twice in a row.
	prefix  string
	doubled string
}

// New builds a Resolver from a backend origin and an API version segment.
//
// The origin is trimmed and stripped of trailing slashes. It may carry an
// embedded "/api/<version>" suffix, in which case the suffix is split out and
// the embedded version takes precedence over version. An empty version falls
// back to [DefaultVersion].
//
// New returns [ErrEmptyOrigin] or [ErrInvalidOrigin] (wrapped) when the origin
// cannot be determined. These errors are meant to stop the process at startup.
func New(origin, version string) (*Resolver, error) {
	base, embedded, err := SplitEndpoint(origin)
	if err != nil {
		return nil, err
	}

	v := normalizeSegment(version)
	if embedded != "" {
		v = embedded
	}
	if v == "" {
		v = DefaultVersion
	}
	if strings.ContainsAny(v, "/?# \t") {
		return nil, fmt.Errorf("%w: bad version segment %q", ErrInvalidOrigin, v)
	}

	prefix := "/api/" + v
	return &Resolver{
		origin:        base,
		version:       v,
		versionedBase: base + prefix,
		prefix:        prefix,
		doubled:       prefix + prefix,
	}, nil
}

// SplitEndpoint separates a configured endpoint into its origin and the
// version segment embedded after "/api/", if any.
//
//	http://localhost:8081         -> http://localhost:8081, ""
//	http://localhost:8081/api/v2/ -> http://localhost:8081, "v2"
//	http://localhost:8081/api     -> http://localhost:8081, ""
func SplitEndpoint(endpoint string) (origin, version string, err error) {
	trimmed := strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if trimmed == "" {
		return "", "", ErrEmptyOrigin
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidOrigin, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrInvalidOrigin, trimmed)
	}
	if u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return "", "", fmt.Errorf("%w: %q must not carry credentials, query or fragment", ErrInvalidOrigin, trimmed)
	}

	switch path := u.EscapedPath(); {
	case path == "":
	case path == "/api":
	case strings.HasPrefix(path, apiPrefix):
		seg, rest, _ := strings.Cut(path[len(apiPrefix):], "/")
		if rest != "" {
			return "", "", fmt.Errorf("%w: unexpected path after version in %q", ErrInvalidOrigin, trimmed)
		}
		version = seg
	default:
		return "", "", fmt.Errorf("%w: origin %q must not contain a path", ErrInvalidOrigin, trimmed)
	}

	return u.Scheme + "://" + u.Host, version, nil
}

// Origin returns the backend origin without any path.
func (r *Resolver) Origin() string {
	return r.origin
}

// Version returns the configured API version segment.
func (r *Resolver) Version() string {
	return r.version
}

// VersionedBase returns origin + "/api/" + version, without a trailing slash.
func (r *Resolver) VersionedBase() string {
	return r.versionedBase
}

// Resolve maps requestPath to exactly one absolute URL under the versioned
// base. Absolute URLs are returned unchanged. A leading "/api/" followed by
// an optional version-like segment ("v", digits, or both) is replaced by the
// configured prefix. Query strings and fragments are kept verbatim.
//
// Resolve is total: every input yields a URL.
func (r *Resolver) Resolve(requestPath string) string {
	if isAbsolute(requestPath) {
		return requestPath
	}

	path, tail := splitTail(requestPath)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = r.collapse(r.stripAPIPrefix(path))
	if path == "/" {
		path = ""
	}

	return r.versionedBase + path + tail
}

// ForeignVersion reports the version segment of a "/api/<version>/" prefixed
// request path when it differs from the configured one. Resolve rewrites such
// paths to the configured version; callers use this to notice it.
func (r *Resolver) ForeignVersion(requestPath string) (string, bool) {
	path, _ := splitTail(requestPath)
	if !strings.HasPrefix(path, apiPrefix) {
		return "", false
	}
	seg, _, _ := strings.Cut(path[len(apiPrefix):], "/")
	if seg == "" || seg == "v" || !isVersionLike(seg) || seg == r.version {
		return "", false
	}
	return seg, true
}

// HasDuplicatePrefix reports whether the path part of a URL contains the
// configured "/api/<version>" prefix twice back-to-back. A resolved URL never
// does; a true result for Resolve output is a logic defect. The query string
// and fragment are excluded: Resolve keeps them verbatim, so they may carry
// the doubled prefix as data.
func (r *Resolver) HasDuplicatePrefix(rawURL string) bool {
	path, _ := splitTail(rawURL)
	return r.duplicateIndex(path) >= 0
}

// collapse drops doubled "/api/<version>" runs that the caller embedded
// deeper in the path.
func (r *Resolver) collapse(path string) string {
	for {
		i := r.duplicateIndex(path)
		if i < 0 {
			return path
		}
		path = path[:i] + path[i+len(r.prefix):]
	}
}

func (r *Resolver) duplicateIndex(s string) int {
	from := 0
	for from < len(s) {
		i := strings.Index(s[from:], r.doubled)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(r.doubled)
		if end == len(s) || s[end] == '/' {
			return i
		}
		from = i + 1
	}
	return -1
}

// stripAPIPrefix removes every leading "/api/" and the version segment that
// follows it, leaving a path that starts with a single "/". The configured
// version counts as a version segment even when it is not "v" + digits.
// Only whole segments are stripped: "/api/v1products" keeps "v1products".
func (r *Resolver) stripAPIPrefix(path string) string {
	for strings.HasPrefix(path, apiPrefix) {
		rest := path[len(apiPrefix):]
		if seg, after, found := strings.Cut(rest, "/"); seg == r.version || isVersionLike(seg) {
			if found {
				rest = after
			} else {
				rest = ""
			}
		}
		path = "/" + rest
	}
	return path
}

// isVersionLike matches an optional "v" followed by zero or more digits.
func isVersionLike(seg string) bool {
	seg = strings.TrimPrefix(seg, "v")
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

// isAbsolute reports whether s starts with "<scheme>://".
func isAbsolute(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for j := 0; j < i; j++ {
		c := s[j]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// splitTail cuts s at the first '?' or '#'.
func splitTail(s string) (path, tail string) {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func normalizeSegment(s string) string {
	return strings.Trim(strings.TrimSpace(s), "/")
}
