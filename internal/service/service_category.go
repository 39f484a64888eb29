package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/utils"
	"github.com/MKhiriev/storefront-gateway/models"
)

const categoriesPath = "/categories"

type categoryService struct {
	backend adapter.BackendAdapter

	logger *logger.Logger
}

func NewCategoryService(backend adapter.BackendAdapter, logger *logger.Logger) CategoryService {
	return &categoryService{backend: backend, logger: logger}
}

func (s *categoryService) List(ctx context.Context, q models.CategoryQuery) (models.BackendResponse, error) {
	query := url.Values{}
	setIfNotEmpty(query, "includeInactive", q.IncludeInactive)
	setIfNotEmpty(query, "parent", q.Parent)

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodGet,
		Path:   categoriesPath,
		Query:  query,
	}, http.StatusOK)
}

func (s *categoryService) Create(ctx context.Context, body []byte) (models.BackendResponse, error) {
	if _, ok := utils.GetSessionTokenFromContext(ctx); !ok {
		return models.BackendResponse{}, ErrAuthenticationRequired
	}

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodPost,
		Path:   categoriesPath,
		Body:   body,
	}, http.StatusOK)
}
