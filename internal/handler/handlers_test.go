package handler

import (
	"testing"

	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.GatewayConfig{Server: config.GatewayServer{HTTPAddress: ":3001"}}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.GatewayConfig
	}{
		{"nil config", nil},
		{"empty address", &config.GatewayConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			assert.Nil(t, h)
			assert.ErrorIs(t, err, errNoHandlersAreCreated)
		})
	}
}
