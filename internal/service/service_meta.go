package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
)

type metaService struct {
	backend adapter.BackendAdapter

	logger *logger.Logger
}

func NewMetaService(backend adapter.BackendAdapter, logger *logger.Logger) MetaService {
	return &metaService{backend: backend, logger: logger}
}

func (s *metaService) Categories(ctx context.Context) (models.ListResponse, error) {
	return s.list(ctx, categoriesPath)
}

// CategoryTree is passed through unchanged; the tree shape is owned by the
// backend.
func (s *metaService) CategoryTree(ctx context.Context) (models.BackendResponse, error) {
	return forward(ctx, s.backend, models.BackendRequest{
		Method:    http.MethodGet,
		Path:      categoriesPath + "/tree",
		Anonymous: true,
	}, http.StatusOK)
}

func (s *metaService) Brands(ctx context.Context) (models.ListResponse, error) {
	return s.list(ctx, brandsPath)
}

func (s *metaService) PopularBrands(ctx context.Context) (models.ListResponse, error) {
	return s.list(ctx, brandsPath+"/popular")
}

func (s *metaService) list(ctx context.Context, path string) (models.ListResponse, error) {
	resp, err := forward(ctx, s.backend, models.BackendRequest{
		Method:    http.MethodGet,
		Path:      path,
		Anonymous: true,
	}, 0)
	if err != nil {
		return models.ListResponse{}, err
	}

	env := adapter.Normalize(resp.Body)
	return models.ListResponse{Data: itemsOrEmpty(env.Items)}, nil
}
