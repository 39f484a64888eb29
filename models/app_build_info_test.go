package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "2026-01-02", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestNewAppBuildInfo_EmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestBackendResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{199, false},
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BackendResponse{StatusCode: tt.status}.IsSuccess(), "status %d", tt.status)
	}
}
