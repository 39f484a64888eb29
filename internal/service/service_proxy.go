package service

import (
	"context"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
)

type proxyService struct {
	backend adapter.BackendAdapter

	logger *logger.Logger
}

func NewProxyService(backend adapter.BackendAdapter, logger *logger.Logger) ProxyService {
	return &proxyService{backend: backend, logger: logger}
}

// Forward sends req as-is. Both the status code and the body of the backend
// answer are returned untouched, including on non-2xx.
func (s *proxyService) Forward(ctx context.Context, req models.BackendRequest) (models.BackendResponse, error) {
	return forward(ctx, s.backend, req, 0)
}
