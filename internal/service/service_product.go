// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
)

// Admin product list defaults.
const (
	DefaultProductPage   = 1
	DefaultProductSize   = 12
	DefaultProductStatus = "active"
)

const productsPath = "/products"

type productService struct {
	backend adapter.BackendAdapter

	logger *logger.Logger
}

func NewProductService(backend adapter.BackendAdapter, logger *logger.Logger) ProductService {
	return &productService{backend: backend, logger: logger}
}

func (s *productService) ListPublic(ctx context.Context, query url.Values) (models.ListResponse, error) {
	resp, err := forward(ctx, s.backend, models.BackendRequest{
		Method:    http.MethodGet,
		Path:      productsPath,
		Query:     query,
		Anonymous: true,
	}, 0)
	if err != nil {
		return models.ListResponse{}, err
	}

	env := adapter.Normalize(resp.Body)
	out := models.ListResponse{Data: itemsOrEmpty(env.Items)}
	if env.HasPagination {
		p := env.Pagination
		out.Pagination = &p
	}
	return out, nil
}

// ListAdmin translates q into the backend vocabulary: q becomes search,
// categoryId becomes category and size becomes limit. Missing values
// default to page 1, size 12 and status "active"; isVisible is always true.
// Zero or negative page and size values count as missing, so the echoed
// pagination never carries a negative page.
func (s *productService) ListAdmin(ctx context.Context, q models.ProductAdminQuery) (models.ListResponse, error) {
	page := positiveOr(q.Page, DefaultProductPage)
	size := positiveOr(q.Size, DefaultProductSize)

	query := url.Values{}
	setIfNotEmpty(query, "search", q.Search)
	setIfNotEmpty(query, "category", q.CategoryID)
	query.Set("page", itoa(page))
	query.Set("limit", itoa(size))
	if q.Status != "" {
		query.Set("status", q.Status)
	} else {
		query.Set("status", DefaultProductStatus)
	}
	query.Set("isVisible", "true")

	resp, err := forward(ctx, s.backend, models.BackendRequest{
		Method:    http.MethodGet,
		Path:      productsPath,
		Query:     query,
		Anonymous: true,
	}, 0)
	if err != nil {
		return models.ListResponse{}, err
	}

	env := adapter.Normalize(resp.Body)

	total := env.Pagination.TotalElements
	totalPages := env.Pagination.TotalPages
	if totalPages == 0 && total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}

	return models.ListResponse{
		Data: itemsOrEmpty(env.Items),
		Pagination: &models.Pagination{
			Page:          page,
			Size:          size,
			TotalElements: total,
			TotalPages:    totalPages,
		},
	}, nil
}

func (s *productService) Get(ctx context.Context, id string) (models.ItemResponse, error) {
	path, err := resourcePath(productsPath, id)
	if err != nil {
		return models.ItemResponse{}, err
	}

	resp, err := forward(ctx, s.backend, models.BackendRequest{
		Method:    http.MethodGet,
		Path:      path,
		Anonymous: true,
	}, 0)
	if err != nil {
		return models.ItemResponse{}, err
	}

	env := adapter.Normalize(resp.Body)
	if env.Item == nil {
		logger.FromContext(ctx).Warn().Str("product_id", id).Msg("backend product payload has no recognizable object")
		return models.ItemResponse{Data: json.RawMessage("null")}, nil
	}
	return models.ItemResponse{Data: env.Item}, nil
}

func (s *productService) Create(ctx context.Context, body []byte) (models.BackendResponse, error) {
	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodPost,
		Path:   productsPath,
		Body:   body,
	}, http.StatusOK)
}

func (s *productService) Update(ctx context.Context, id string, body []byte) (models.BackendResponse, error) {
	path, err := resourcePath(productsPath, id)
	if err != nil {
		return models.BackendResponse{}, err
	}

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	}, http.StatusOK)
}

func (s *productService) Delete(ctx context.Context, id string) (models.BackendResponse, error) {
	path, err := resourcePath(productsPath, id)
	if err != nil {
		return models.BackendResponse{}, err
	}

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodDelete,
		Path:   path,
	}, http.StatusOK)
}

func (s *productService) Statuses(ctx context.Context) (models.BackendResponse, error) {
	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodGet,
		Path:   productsPath + "/statuses",
	}, http.StatusOK)
}

func itemsOrEmpty(items []json.RawMessage) []json.RawMessage {
	if items == nil {
		return make([]json.RawMessage, 0)
	}
	return items
}
