package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
)

// DefaultBrandLimit is the admin brand page size when none is given.
const DefaultBrandLimit = 50

const brandsPath = "/brands"

type brandService struct {
	backend adapter.BackendAdapter

	logger *logger.Logger
}

func NewBrandService(backend adapter.BackendAdapter, logger *logger.Logger) BrandService {
	return &brandService{backend: backend, logger: logger}
}

// ListAdmin maps the UI's zero-based first page onto the backend's page 1.
// A negative page is treated like zero and also becomes page 1.
func (s *brandService) ListAdmin(ctx context.Context, q models.BrandAdminQuery) (models.BackendResponse, error) {
	query := url.Values{}
	setIfNotEmpty(query, "includeInactive", q.IncludeInactive)
	setIfNotEmpty(query, "search", q.Search)
	query.Set("page", itoa(positiveOr(q.Page, 1)))
	query.Set("limit", itoa(positiveOr(q.Limit, DefaultBrandLimit)))

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodGet,
		Path:   brandsPath,
		Query:  query,
	}, http.StatusOK)
}

func (s *brandService) Create(ctx context.Context, body []byte) (models.BackendResponse, error) {
	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodPost,
		Path:   brandsPath,
		Body:   body,
	}, http.StatusCreated)
}

func (s *brandService) Update(ctx context.Context, id string, body []byte) (models.BackendResponse, error) {
	path, err := resourcePath(brandsPath, id)
	if err != nil {
		return models.BackendResponse{}, err
	}

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	}, http.StatusOK)
}

func (s *brandService) Delete(ctx context.Context, id string) (models.BackendResponse, error) {
	path, err := resourcePath(brandsPath, id)
	if err != nil {
		return models.BackendResponse{}, err
	}

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodDelete,
		Path:   path,
	}, http.StatusOK)
}
