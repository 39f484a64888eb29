package models

import "encoding/json"

// Pagination is the canonical pagination block returned to the UI.
type Pagination struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Envelope is the canonical view of a backend payload after shape
// normalization. Exactly one of Items or Item is meaningful for a given
// payload; both are empty when the body carries neither.
type Envelope struct {
	// Items holds list elements, untouched.
	Items []json.RawMessage

	// Item holds a single object payload, untouched.
	Item json.RawMessage

	// Pagination is filled from either a "pagination" block or top-level
	// counters. HasPagination reports whether any counter was present.
	Pagination    Pagination
	HasPagination bool

	// Success mirrors a top-level "success" flag when the backend sent one.
	Success *bool

	// Message mirrors a top-level "message" string.
	Message string
}

// ListResponse is returned for normalized list endpoints.
type ListResponse struct {
	Data       []json.RawMessage `json:"data"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// ItemResponse is returned for normalized single-object endpoints. Data is
// JSON null when the backend payload held no recognizable object.
type ItemResponse struct {
	Data json.RawMessage `json:"data"`
}

// ProxyErrorResponse is the body of a failed mutation or pass-through call.
type ProxyErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ListErrorResponse is the body of a failed list call. Data is always an
// empty array so list consumers can render without special-casing.
type ListErrorResponse struct {
	Data    []json.RawMessage `json:"data"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
}

// ItemErrorResponse is the body of a failed single-object call.
type ItemErrorResponse struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// MessageResponse carries a bare message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the gateway health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Backend   string `json:"backend"`
	PublicURL string `json:"publicUrl,omitempty"`
}

// VersionResponse is returned by the gateway version endpoint.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"buildVersion"`
	BuildDate    string `json:"buildDate"`
	BuildCommit  string `json:"buildCommit"`
}
